package ports

import (
	"context"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. At most one unplaced order may exist per
	// (user, campaign); a second one is rejected by the store.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status, timeline, contact snapshot and tracking
	// number of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction
	// ends. Lifecycle transitions load orders through it so that two
	// concurrent transitions of one order are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOpen retrieves the unplaced order of userID for campaignID, or
	// errs.ErrObjectNotFound when there is none.
	GetOpen(ctx context.Context, userID, campaignID kernel.UUID) (*order.Order, error)
}
