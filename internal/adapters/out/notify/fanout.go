package notify

import (
	"context"
	"errors"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/ports"
)

// Fanout delivers to every notifier, even after one fails, and returns the
// joined errors.
type Fanout struct {
	notifiers []ports.Notifier
}

func NewFanout(notifiers ...ports.Notifier) *Fanout {
	return &Fanout{notifiers: notifiers}
}

func (f *Fanout) Notify(ctx context.Context, event order.Event, o *order.Order, lines []*basket.BasketItem) error {
	var err error
	for _, n := range f.notifiers {
		err = errors.Join(err, n.Notify(ctx, event, o, lines))
	}
	return err
}
