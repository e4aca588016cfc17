package commands

import (
	"context"
	"errors"
	"fmt"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/ports"
	"dealerorders/internal/pkg/errs"
)

// CreateOrderCommandHandler finds or creates the unplaced order keyed by
// (user, campaign) and refreshes its contact snapshot from the dealer
// profile on every call. Calls for the same key are serialized through the
// locker; the store's unique index on unplaced orders backs it up.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.Locker
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, locker ports.Locker) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle returns the order with the basket lines that will become its lines
// on placement. With nothing staged it fails with basket.ErrEmptyBasket and
// creates nothing.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, []*basket.BasketItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, nil, err
	}

	release, err := h.locker.Obtain(ctx, orderLockKey(cmd.UserID(), cmd.CampaignID()))
	if err != nil {
		return nil, nil, err
	}
	defer release(ctx)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.CampaignRepository().Get(ctx, cmd.CampaignID()); err != nil {
		return nil, nil, err
	}

	lines, err := uow.BasketItemRepository().ListUnbound(ctx, cmd.UserID(), cmd.CampaignID())
	if err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, basket.ErrEmptyBasket
	}

	profile, err := uow.DealerRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		return nil, nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetOpen(ctx, cmd.UserID(), cmd.CampaignID())
	isNew := errors.Is(err, errs.ErrObjectNotFound)
	switch {
	case isNew:
		if o, err = order.NewOrder(kernel.NewUUID(), cmd.UserID(), cmd.CampaignID()); err != nil {
			return nil, nil, err
		}
	case err != nil:
		return nil, nil, err
	}

	if err = o.SetContact(profile.Snapshot()); err != nil {
		return nil, nil, err
	}

	if isNew {
		err = orderRepo.Add(ctx, o)
	} else {
		err = orderRepo.Update(ctx, o)
	}
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return o, lines, nil
}

func orderLockKey(userID, campaignID kernel.UUID) string {
	return fmt.Sprintf("order:%s:%s", userID, campaignID)
}
