package ports

import (
	"context"

	"dealerorders/internal/core/domain/model/dealer"
	"dealerorders/internal/core/domain/model/kernel"
)

// DealerRepository defines the persistence contract for dealer profiles.
// Each user has at most one profile.
type DealerRepository interface {
	Add(ctx context.Context, d *dealer.Dealer) error
	Update(ctx context.Context, d *dealer.Dealer) error

	// GetByUser retrieves the profile of userID, or errs.ErrObjectNotFound.
	GetByUser(ctx context.Context, userID kernel.UUID) (*dealer.Dealer, error)
}
