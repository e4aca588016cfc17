package commands

import (
	"context"
	"time"

	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/domain/services"
	"dealerorders/internal/core/ports"

	"github.com/sirupsen/logrus"
)

// ApproveOrderCommandHandler approves a placed order. Only the campaign's
// approver may do so (services.ErrNotApprover); approving twice fails with
// order.ErrAlreadyApproved.
type ApproveOrderCommandHandler struct {
	uowFactory UoWFactory
	approver   services.OrderApprover
	events     eventPublisher
}

func NewApproveOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	log logrus.FieldLogger,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		approver:   services.NewOrderApprover(),
		events:     newEventPublisher(notifier, log),
	}
}

func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (*order.Order, error) {
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
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	campaign, err := uow.CampaignRepository().Get(ctx, o.CampaignID())
	if err != nil {
		return nil, err
	}

	if err = h.approver.Approve(o, campaign, cmd.ApproverID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	lines, err := uow.BasketItemRepository().ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
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
