package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) Add(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes every attribute, zero values included: stock reaching 0 must
// be stored.
func (r *GormItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("id = ?", dto.ID).
		Select("name", "remarks", "incl", "thresh_auto_app", "thresh_stock_alert", "stock").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", item.ID().String())
	}
	return nil
}

func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

func (r *GormItemRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error) {
	return r.getMany(r.db.WithContext(ctx), ids)
}

// GetManyForUpdate locks rows in id order, the order of the SELECT.
func (r *GormItemRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error) {
	return r.getMany(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), ids)
}

func (r *GormItemRepository) getMany(db *gorm.DB, ids []kernel.UUID) ([]*catalog.Item, error) {
	if len(ids) == 0 {
		return []*catalog.Item{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ItemDTO
	if err := db.Where("id IN ?", raw).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*catalog.Item, 0, len(dtos))
	found := make(map[kernel.UUID]struct{}, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		found[item.ID()] = struct{}{}
		items = append(items, item)
	}

	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, errs.NewObjectNotFoundErrorWithCause("item", id.String(),
				fmt.Errorf("%d of %d items found", len(found), len(ids)))
		}
	}
	return items, nil
}
