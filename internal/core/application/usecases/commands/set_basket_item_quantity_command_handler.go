package commands

import (
	"context"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/pkg/errs"
)

// SetBasketItemQuantityCommandHandler edits a basket line. Lines of other
// users are reported as not found; bound lines are rejected with
// basket.ErrBasketItemIsBound.
type SetBasketItemQuantityCommandHandler struct {
	uowFactory BasketUoWFactory
}

func NewSetBasketItemQuantityCommandHandler(uowFactory BasketUoWFactory) SetBasketItemQuantityCommandHandler {
	return SetBasketItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetBasketItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd SetBasketItemQuantityCommand,
) (*basket.BasketItem, error) {
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

	basketRepo := uow.BasketItemRepository()
	line, err := basketRepo.Get(ctx, cmd.BasketItemID())
	if err != nil {
		return nil, err
	}
	if !line.IsOwnedBy(cmd.UserID()) {
		return nil, errs.NewObjectNotFoundError("basket item", cmd.BasketItemID())
	}

	if err = line.SetQuantity(cmd.Nos()); err != nil {
		return nil, err
	}
	if err = basketRepo.Update(ctx, line); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return line, nil
}
