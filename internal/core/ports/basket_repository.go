package ports

import (
	"context"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/kernel"
)

// BasketItemRepository defines the persistence contract for basket lines,
// both unbound (the basket) and bound (order lines).
type BasketItemRepository interface {
	Add(ctx context.Context, line *basket.BasketItem) error

	// Update persists the quantity and order binding of an existing line.
	Update(ctx context.Context, line *basket.BasketItem) error

	Get(ctx context.Context, id kernel.UUID) (*basket.BasketItem, error)

	// FindUnbound returns the user's unbound line for itemID, or
	// errs.ErrObjectNotFound when the item is not in the basket.
	FindUnbound(ctx context.Context, userID, itemID kernel.UUID) (*basket.BasketItem, error)

	// ListUnbound returns the user's unbound lines whose item belongs to
	// campaignID. An empty basket yields an empty slice, not an error.
	ListUnbound(ctx context.Context, userID, campaignID kernel.UUID) ([]*basket.BasketItem, error)

	// ListByOrder returns the lines bound to orderID.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*basket.BasketItem, error)
}
