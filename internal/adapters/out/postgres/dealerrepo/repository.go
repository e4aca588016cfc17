package dealerrepo

import (
	"context"
	"errors"

	"dealerorders/internal/core/domain/model/dealer"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDealerRepository implements ports.DealerRepository using GORM.
type GormDealerRepository struct {
	db *gorm.DB
}

func NewGormDealerRepository(db *gorm.DB) *GormDealerRepository {
	return &GormDealerRepository{db: db}
}

func (r *GormDealerRepository) Add(ctx context.Context, d *dealer.Dealer) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes identity and defaults; cleared fields are stored as empty.
func (r *GormDealerRepository) Update(ctx context.Context, d *dealer.Dealer) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	result := r.db.WithContext(ctx).Model(&DealerDTO{}).Where("id = ?", dto.ID).
		Select("name", "abb_name", "dealer_code", "zip_code", "address", "telephone", "recipient").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dealer", d.ID().String())
	}
	return nil
}

func (r *GormDealerRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*dealer.Dealer, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DealerDTO
	if err := r.db.WithContext(ctx).Take(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dealer", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
