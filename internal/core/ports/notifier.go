package ports

import (
	"context"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/order"
)

// Notifier delivers order lifecycle events to interested parties: the
// dealer, the campaign approver and the fulfiller.
//
// Notify is called after the transition has been committed. Its error is
// logged by the caller and never undoes the transition.
type Notifier interface {
	Notify(ctx context.Context, event order.Event, o *order.Order, lines []*basket.BasketItem) error
}
