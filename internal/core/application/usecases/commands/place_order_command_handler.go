package commands

import (
	"context"
	"time"

	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/domain/services"
	"dealerorders/internal/core/ports"
	"dealerorders/internal/pkg/errs"

	"github.com/sirupsen/logrus"
)

// PlaceOrderCommandHandler binds the user's basket lines to the order,
// decides auto-approval and writes opted-in fields back to the dealer
// profile, all in one transaction. Events are published after commit.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifier, log)
//	cmd, _ := NewPlaceOrderCommand(userID, orderID, Destination{
//	    ZipCode: "060-0001", Address: "Sapporo", Telephone: "011-000", Recipient: "Sato",
//	}, dealer.DefaultsOptIn{Telephone: true})
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.IsApproved()) // true when every line was within its threshold
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	placer     services.OrderPlacer
	events     eventPublisher
}

func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	log logrus.FieldLogger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(services.NewAutoApprovalPolicy()),
		events:     newEventPublisher(notifier, log),
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
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
	basketRepo := uow.BasketItemRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.IsOwnedBy(cmd.UserID()) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	dst := cmd.Destination()
	edited := o.Contact().WithDestination(dst.ZipCode, dst.Address, dst.Telephone, dst.Recipient)
	if err = o.SetContact(edited); err != nil {
		return nil, err
	}

	lines, err := basketRepo.ListUnbound(ctx, o.UserID(), o.CampaignID())
	if err != nil {
		return nil, err
	}
	items, err := uow.ItemRepository().GetMany(ctx, lineItemIDs(lines))
	if err != nil {
		return nil, err
	}

	if err = h.placer.Place(o, lines, indexItems(items), time.Now().UTC()); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = basketRepo.Update(ctx, line); err != nil {
			return nil, err
		}
	}

	if optIn := cmd.OptIn(); optIn.Any() {
		dealerRepo := uow.DealerRepository()
		profile, err := dealerRepo.GetByUser(ctx, o.UserID())
		if err != nil {
			return nil, err
		}
		profile.ApplyDefaults(edited, optIn)
		if err = dealerRepo.Update(ctx, profile); err != nil {
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
