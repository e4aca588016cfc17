package http

import (
	"bytes"
	"net/http"

	"dealerorders/internal/adapters/out/xlsx"
	"dealerorders/internal/core/application/usecases/commands"
	"dealerorders/internal/core/application/usecases/queries"
	"dealerorders/internal/core/domain/model/dealer"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/campaigns/:id/orders: the caller's open
// order for the campaign, created on first use.
func (s *Server) CreateOrder(c echo.Context) error {
	campaignID, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(currentUser(c), campaignID)
	if err != nil {
		return err
	}

	o, lines, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderResponse(o, lines))
}

// PlaceOrder handles POST /api/v1/orders/:id/place.
func (s *Server) PlaceOrder(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	var req PlaceOrderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(currentUser(c), orderID,
		commands.Destination{
			ZipCode:   req.ZipCode,
			Address:   req.Address,
			Telephone: req.Telephone,
			Recipient: req.Recipient,
		},
		dealer.DefaultsOptIn{
			ZipAndAddress: req.SaveZipAndAddress,
			Telephone:     req.SaveTelephone,
			Recipient:     req.SaveRecipient,
		},
	)
	if err != nil {
		return err
	}

	o, err := s.h.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderResponse(o, nil))
}

// ApproveOrder handles POST /api/v1/orders/:id/approve.
func (s *Server) ApproveOrder(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveOrderCommand(currentUser(c), orderID)
	if err != nil {
		return err
	}

	o, err := s.h.ApproveOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderResponse(o, nil))
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch.
func (s *Server) DispatchOrder(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	var req DispatchOrderRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, req.TrackingNumber)
	if err != nil {
		return err
	}

	o, err := s.h.DispatchOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderResponse(o, nil))
}

// GetMyOrders handles GET /api/v1/orders.
func (s *Server) GetMyOrders(c echo.Context) error {
	query, err := queries.NewGetMyOrdersQuery(currentUser(c))
	if err != nil {
		return err
	}

	orders, err := s.h.GetMyOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summariesResponse(orders))
}

// GetOrdersAwaitingApproval handles GET /api/v1/orders/approval for the
// calling approver.
func (s *Server) GetOrdersAwaitingApproval(c echo.Context) error {
	query, err := queries.NewGetOrdersAwaitingApprovalQuery(currentUser(c))
	if err != nil {
		return err
	}

	orders, err := s.h.GetOrdersAwaitingApproval.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summariesResponse(orders))
}

// GetOrdersAwaitingDispatch handles GET /api/v1/orders/dispatch.
func (s *Server) GetOrdersAwaitingDispatch(c echo.Context) error {
	orders, err := s.h.GetOrdersAwaitingDispatch.Handle(
		c.Request().Context(),
		queries.NewGetOrdersAwaitingDispatchQuery(),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summariesResponse(orders))
}

// GetOrderDetails handles GET /api/v1/orders/:id.
func (s *Server) GetOrderDetails(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderDetailsQuery(currentUser(c), orderID)
	if err != nil {
		return err
	}

	details, err := s.h.GetOrderDetails.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detailsResponse(details))
}

// GetOrderSheet handles GET /api/v1/orders/:id/sheet and streams the
// workbook as an attachment.
func (s *Server) GetOrderSheet(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderSheetQuery(orderID)
	if err != nil {
		return err
	}

	sheet, err := s.h.GetOrderSheet.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = xlsx.WriteOrderSheet(&buf, sheet); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+sheet.Filename)
	return c.Blob(http.StatusOK, xlsx.ContentType, buf.Bytes())
}
