package http

import (
	"net/http"

	"dealerorders/internal/core/application/usecases/commands"
	"dealerorders/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddToBasket handles POST /api/v1/basket. A zero quantity on an item not
// yet in the basket creates nothing and answers 204.
func (s *Server) AddToBasket(c echo.Context) error {
	var req AddToBasketRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}

	cmd, err := commands.NewAddToBasketCommand(currentUser(c), itemID, req.Quantity)
	if err != nil {
		return err
	}

	line, err := s.h.AddToBasket.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	if line == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, basketItemResponse(line))
}

// SetBasketItemQuantity handles PUT /api/v1/basket/:id.
func (s *Server) SetBasketItemQuantity(c echo.Context) error {
	basketItemID, err := pathID(c)
	if err != nil {
		return err
	}

	var req SetBasketItemQuantityRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetBasketItemQuantityCommand(currentUser(c), basketItemID, req.Nos)
	if err != nil {
		return err
	}

	line, err := s.h.SetBasketItemQuantity.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, basketItemResponse(line))
}
