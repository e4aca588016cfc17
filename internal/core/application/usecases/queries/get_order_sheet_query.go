package queries

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrGetOrderSheetQueryIsNotConstructed = errors.New(
	"GetOrderSheetQuery must be created via NewGetOrderSheetQuery constructor",
)

// GetOrderSheetQuery builds the shipping sheet of a placed order that has
// not been dispatched yet. Dispatched and open orders are reported as not
// found.
type GetOrderSheetQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderSheetQuery(orderID kernel.UUID) (GetOrderSheetQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSheetQuery{}, err
	}

	return GetOrderSheetQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderSheetQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSheetQueryIsNotConstructed)
}

func (q GetOrderSheetQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderSheet is the tabular export of one order, one row per bound line.
type OrderSheet struct {
	OrderID  kernel.UUID
	Filename string
	Rows     []OrderSheetRow
}

// OrderSheetRow repeats the order's contact block on every line.
type OrderSheetRow struct {
	DealerName   string
	Recipient    string
	ZipCode      string
	Address      string
	Telephone    string
	CampaignName string
	ItemName     string
	Nos          int
}
