package postgres

import (
	"dealerorders/internal/adapters/out/postgres/basketrepo"
	"dealerorders/internal/adapters/out/postgres/catalogrepo"
	"dealerorders/internal/adapters/out/postgres/dealerrepo"
	"dealerorders/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the record store, in creation order.
func Models() []any {
	return []any{
		&catalogrepo.CampaignDTO{},
		&catalogrepo.ItemDTO{},
		&dealerrepo.DealerDTO{},
		&orderrepo.OrderDTO{},
		&basketrepo.BasketItemDTO{},
	}
}

// Migrate creates or updates the schema. References between tables are
// checked by the command handlers, so no foreign keys are declared.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
