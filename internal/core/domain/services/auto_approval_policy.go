package services

import (
	"fmt"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"
)

// EmptyOrderIsAutoApprovable is what the policy answers for a line set with no
// lines. OrderPlacer never asks: an empty basket is rejected before placement.
const EmptyOrderIsAutoApprovable = false

// AutoApprovalPolicy approves an order without human review when every line
// requests no more than its item's auto-approval threshold.
type AutoApprovalPolicy struct{}

func NewAutoApprovalPolicy() AutoApprovalPolicy {
	return AutoApprovalPolicy{}
}

// IsSatisfiedBy evaluates lines against items, keyed by item identifier.
// A line whose item is missing from items is an error, not a refusal.
func (AutoApprovalPolicy) IsSatisfiedBy(lines []*basket.BasketItem, items map[kernel.UUID]*catalog.Item) (bool, error) {
	if len(lines) == 0 {
		return EmptyOrderIsAutoApprovable, nil
	}

	satisfied := true
	for _, line := range lines {
		item, err := lookupItem(items, line)
		if err != nil {
			return false, err
		}
		if !item.CanAutoApprove(line.Nos()) {
			satisfied = false
		}
	}
	return satisfied, nil
}

func lookupItem(items map[kernel.UUID]*catalog.Item, line *basket.BasketItem) (*catalog.Item, error) {
	if err := line.Validate(); err != nil {
		return nil, err
	}
	item, ok := items[line.ItemID()]
	if !ok {
		return nil, errs.NewObjectNotFoundErrorWithCause("item", line.ItemID(),
			fmt.Errorf("basket item %s refers to an unknown item", line.ID()))
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}
