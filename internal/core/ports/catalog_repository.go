// Package ports defines the interfaces the ordering core needs from the
// outside world: persistence of campaigns, items, basket lines, orders and
// dealer profiles, the transaction boundary around them, lifecycle
// notifications and the lock that serializes order creation.
package ports

import (
	"context"

	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
)

// CampaignRepository defines the persistence contract for campaigns.
type CampaignRepository interface {
	// Add persists a new campaign.
	Add(ctx context.Context, campaign *catalog.Campaign) error

	// Get retrieves a campaign by identifier. A missing campaign is reported
	// as errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Campaign, error)
}

// ItemRepository defines the persistence contract for catalog items.
type ItemRepository interface {
	// Add persists a new item. Its campaign must exist.
	Add(ctx context.Context, item *catalog.Item) error

	// Update persists the attributes of an existing item, stock included.
	Update(ctx context.Context, item *catalog.Item) error

	// Get retrieves an item by identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error)

	// GetMany retrieves the given items without locking them. Every
	// identifier must exist.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error)

	// GetManyForUpdate retrieves the given items and locks their rows until
	// the transaction ends. Rows are locked in identifier order so that
	// concurrent dispatches can not deadlock. Every identifier must exist.
	//
	// Example:
	//   items, err := repo.GetManyForUpdate(ctx, itemIDs)
	//   if err != nil {
	//       return err
	//   }
	//   // decrement stock, then repo.Update each item
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error)
}
