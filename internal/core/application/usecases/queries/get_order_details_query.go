package queries

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery reads one order with its lines on behalf of userID.
//
// The order is visible to its owner, to the approver of its campaign, and to
// anyone once it is approved (fulfillers work from approved orders). For
// everyone else it does not exist.
type GetOrderDetailsQuery struct {
	userID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(userID, orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		userID:  userID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) UserID() kernel.UUID {
	return q.userID
}

func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderDetails is an order with its contact block and lines. For an open
// order the lines are the unbound basket items that placing it would bind.
type OrderDetails struct {
	OrderSummary
	Contact kernel.Contact
	Lines   []OrderLineView
}
