package services

import (
	"fmt"
	"time"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/pkg/errs"
)

// OrderFulfiller ships an approved order: it removes each line's quantity
// from stock and records the tracking number. Stock may go negative.
type OrderFulfiller struct{}

func NewOrderFulfiller() OrderFulfiller {
	return OrderFulfiller{}
}

// Dispatch validates the transition first, so a rejected dispatch leaves
// stock untouched. lines are the order's bound lines; items are keyed by
// identifier and must cover every line.
func (OrderFulfiller) Dispatch(
	o *order.Order,
	lines []*basket.BasketItem,
	items map[kernel.UUID]*catalog.Item,
	trackingNumber string,
	now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.ValidateDispatch(trackingNumber); err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := lookupItem(items, line); err != nil {
			return err
		}
		if bound := line.Order(); bound == nil || !bound.IsEqual(o.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("basket item",
				fmt.Errorf("basket item %s is not a line of order %s", line.ID(), o.ID()))
		}
	}

	for _, line := range lines {
		if err := items[line.ItemID()].DecrementStock(line.Nos()); err != nil {
			return err
		}
	}
	return o.Dispatch(trackingNumber, now)
}
