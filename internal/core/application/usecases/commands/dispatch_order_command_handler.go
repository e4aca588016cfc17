package commands

import (
	"context"
	"time"

	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/domain/services"
	"dealerorders/internal/core/ports"

	"github.com/sirupsen/logrus"
)

// DispatchOrderCommandHandler ships an approved order. The order row and
// the stock rows of its items are locked for the transaction, so stock is
// decremented exactly once and together with the state change.
type DispatchOrderCommandHandler struct {
	uowFactory UoWFactory
	fulfiller  services.OrderFulfiller
	events     eventPublisher
}

func NewDispatchOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	log logrus.FieldLogger,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		fulfiller:  services.NewOrderFulfiller(),
		events:     newEventPublisher(notifier, log),
	}
}

func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	itemRepo := uow.ItemRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	// Reject before locking stock rows.
	if err = o.ValidateDispatch(cmd.TrackingNumber()); err != nil {
		return nil, err
	}

	lines, err := uow.BasketItemRepository().ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	items, err := itemRepo.GetManyForUpdate(ctx, lineItemIDs(lines))
	if err != nil {
		return nil, err
	}

	if err = h.fulfiller.Dispatch(o, lines, indexItems(items), cmd.TrackingNumber(), time.Now().UTC()); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = itemRepo.Update(ctx, item); err != nil {
			return nil, err
		}
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.publish(ctx, o, lines)
	return o, nil
}
