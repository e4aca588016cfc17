package queries

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
	"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
)

// GetLowStockItemsQuery lists items whose stock is at or below their alert
// level, lowest stock first.
type GetLowStockItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLowStockItemsQuery() GetLowStockItemsQuery {
	return GetLowStockItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

type LowStockItemView struct {
	ID               kernel.UUID
	CampaignID       kernel.UUID
	CampaignName     string
	Name             string
	Stock            int
	ThreshStockAlert int
}
