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

// OrderPlacer turns the user's unbound basket lines of a campaign into the
// lines of an order and places it.
//
// Business rules:
//   - an empty basket is rejected before anything changes
//   - every line must belong to the order's owner and campaign
//   - the order is auto-approved when AutoApprovalPolicy is satisfied
//
// Example usage:
//
//	placer := services.NewOrderPlacer(services.NewAutoApprovalPolicy())
//	if err := placer.Place(o, lines, itemsByID, time.Now()); err != nil {
//	    return err
//	}
//	// persist o and every line, then publish o.PullEvents()
type OrderPlacer struct {
	policy AutoApprovalPolicy
}

func NewOrderPlacer(policy AutoApprovalPolicy) OrderPlacer {
	return OrderPlacer{policy: policy}
}

// Place binds lines to o and places it. On error neither o nor the lines
// are modified.
func (p OrderPlacer) Place(
	o *order.Order,
	lines []*basket.BasketItem,
	items map[kernel.UUID]*catalog.Item,
	now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.IsPlaced() {
		return order.ErrAlreadyPlaced
	}
	if len(lines) == 0 {
		return basket.ErrEmptyBasket
	}

	for _, line := range lines {
		item, err := lookupItem(items, line)
		if err != nil {
			return err
		}
		if err = validateLine(o, line, item); err != nil {
			return err
		}
	}

	autoApproved, err := p.policy.IsSatisfiedBy(lines, items)
	if err != nil {
		return err
	}

	for _, line := range lines {
		if err = line.BindTo(o.ID()); err != nil {
			return err
		}
	}
	return o.Place(autoApproved, now)
}

func validateLine(o *order.Order, line *basket.BasketItem, item *catalog.Item) error {
	if line.IsBound() {
		return basket.ErrBasketItemIsBound
	}
	if !line.IsOwnedBy(o.UserID()) {
		return errs.NewValueIsInvalidErrorWithCause("basket item",
			fmt.Errorf("basket item %s is not owned by %s", line.ID(), o.UserID()))
	}
	if !item.BelongsTo(o.CampaignID()) {
		return errs.NewValueIsInvalidErrorWithCause("basket item",
			fmt.Errorf("item %s is not offered by campaign %s", item.ID(), o.CampaignID()))
	}
	return nil
}
