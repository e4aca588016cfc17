package catalogrepo

import (
	"context"
	"errors"

	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCampaignRepository implements ports.CampaignRepository using GORM.
type GormCampaignRepository struct {
	db *gorm.DB
}

func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

func (r *GormCampaignRepository) Add(ctx context.Context, c *catalog.Campaign) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := campaignFromDomain(c)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCampaignRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Campaign, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CampaignDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("campaign", id.String())
		}
		return nil, err
	}

	return campaignToDomain(dto)
}
