package commands

import (
	"context"
	"errors"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"
)

// AddToBasketCommandHandler adds to the user's unbound line for the item,
// creating the line on first use. It never decreases a line.
//
// Example:
//
//	cmd, err := NewAddToBasketCommand(userID, itemID, 3)
//	if err != nil {
//	    return err
//	}
//	line, err := handler.Handle(ctx, cmd)
type AddToBasketCommandHandler struct {
	uowFactory BasketUoWFactory
}

func NewAddToBasketCommandHandler(uowFactory BasketUoWFactory) AddToBasketCommandHandler {
	return AddToBasketCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the resulting line. With a zero quantity and no existing
// line nothing is persisted and the returned line is nil.
func (h AddToBasketCommandHandler) Handle(ctx context.Context, cmd AddToBasketCommand) (*basket.BasketItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ItemRepository().Get(ctx, cmd.ItemID()); err != nil {
		return nil, err
	}

	basketRepo := uow.BasketItemRepository()
	line, err := basketRepo.FindUnbound(ctx, cmd.UserID(), cmd.ItemID())
	switch {
	case err == nil:
		if cmd.Quantity() == 0 {
			return line, nil
		}
		if err = line.Increment(cmd.Quantity()); err != nil {
			return nil, err
		}
		err = basketRepo.Update(ctx, line)
	case errors.Is(err, errs.ErrObjectNotFound):
		if cmd.Quantity() == 0 {
			return nil, nil
		}
		line, err = basket.NewBasketItem(kernel.NewUUID(), cmd.UserID(), cmd.ItemID(), cmd.Quantity())
		if err != nil {
			return nil, err
		}
		err = basketRepo.Add(ctx, line)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return line, nil
}
