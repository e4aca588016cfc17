// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and, for lifecycle transitions, notification after commit.
package commands

import (
	"context"

	"dealerorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work covering the aggregates
// it changes.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CampaignRepoFactory interface {
		CampaignRepository() ports.CampaignRepository
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	BasketItemRepoFactory interface {
		BasketItemRepository() ports.BasketItemRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DealerRepoFactory interface {
		DealerRepository() ports.DealerRepository
	}

	// CatalogUoW manages transactions for campaign and item administration.
	CatalogUoW interface {
		TxManager
		CampaignRepoFactory
		ItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// DealerUoW manages transactions for dealer profile operations.
	DealerUoW interface {
		TxManager
		DealerRepoFactory
	}

	DealerUoWFactory interface {
		Create() DealerUoW
	}

	// BasketUoW manages transactions that edit a user's basket.
	BasketUoW interface {
		TxManager
		ItemRepoFactory
		BasketItemRepoFactory
	}

	BasketUoWFactory interface {
		Create() BasketUoW
	}

	// UoW manages transactions across every aggregate of the ordering
	// workflow. Used by the order lifecycle commands.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   lines, err := uow.BasketItemRepository().ListByOrder(ctx, orderID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CampaignRepoFactory
		ItemRepoFactory
		BasketItemRepoFactory
		OrderRepoFactory
		DealerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
