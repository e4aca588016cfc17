package commands

import (
	"context"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/ports"

	"github.com/sirupsen/logrus"
)

// eventPublisher hands the events raised by a committed transition to the
// notifier. Delivery failures are logged and dropped.
type eventPublisher struct {
	notifier ports.Notifier
	log      logrus.FieldLogger
}

func newEventPublisher(notifier ports.Notifier, log logrus.FieldLogger) eventPublisher {
	return eventPublisher{notifier: notifier, log: log}
}

// publish must only run after Commit succeeded.
func (p eventPublisher) publish(ctx context.Context, o *order.Order, lines []*basket.BasketItem) {
	for _, event := range o.PullEvents() {
		if err := p.notifier.Notify(ctx, event, o, lines); err != nil {
			p.log.WithError(err).WithFields(logrus.Fields{
				"event":    event.Kind.String(),
				"order_id": o.ID().String(),
			}).Warn("order notification failed")
		}
	}
}

func lineItemIDs(lines []*basket.BasketItem) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ItemID()]; ok {
			continue
		}
		seen[line.ItemID()] = struct{}{}
		ids = append(ids, line.ItemID())
	}
	return ids
}

func indexItems(items []*catalog.Item) map[kernel.UUID]*catalog.Item {
	byID := make(map[kernel.UUID]*catalog.Item, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}
	return byID
}
