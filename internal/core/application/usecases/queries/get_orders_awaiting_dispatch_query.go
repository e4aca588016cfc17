package queries

import (
	"errors"

	"dealerorders/internal/pkg/guard"
)

var ErrGetOrdersAwaitingDispatchQueryIsNotConstructed = errors.New(
	"GetOrdersAwaitingDispatchQuery must be created via NewGetOrdersAwaitingDispatchQuery constructor",
)

// GetOrdersAwaitingDispatchQuery lists approved orders not yet dispatched,
// oldest approval first. It is the fulfiller's work queue.
type GetOrdersAwaitingDispatchQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrdersAwaitingDispatchQuery() GetOrdersAwaitingDispatchQuery {
	return GetOrdersAwaitingDispatchQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrdersAwaitingDispatchQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersAwaitingDispatchQueryIsNotConstructed)
}
