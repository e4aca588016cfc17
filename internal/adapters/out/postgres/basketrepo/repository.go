package basketrepo

import (
	"context"
	"errors"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUnboundLineExists is returned by Add when the user already has an
// unbound line for the item, usually because a concurrent add won.
var ErrUnboundLineExists = errs.NewTransitionIsRejectedError("add basket item", "item is already in the basket")

// GormBasketItemRepository implements ports.BasketItemRepository using GORM.
type GormBasketItemRepository struct {
	db *gorm.DB
}

func NewGormBasketItemRepository(db *gorm.DB) *GormBasketItemRepository {
	return &GormBasketItemRepository{db: db}
}

func (r *GormBasketItemRepository) Add(ctx context.Context, line *basket.BasketItem) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUnboundLineExists
	}
	return err
}

// Update writes the quantity and the order binding; a quantity of 0 is stored.
func (r *GormBasketItemRepository) Update(ctx context.Context, line *basket.BasketItem) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := fromDomain(line)
	result := r.db.WithContext(ctx).Model(&BasketItemDTO{}).Where("id = ?", dto.ID).
		Select("order_id", "nos").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("basket item", line.ID().String())
	}
	return nil
}

func (r *GormBasketItemRepository) Get(ctx context.Context, id kernel.UUID) (*basket.BasketItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BasketItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("basket item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindUnbound locks the line for the rest of the transaction, so concurrent
// increments of it apply one after the other.
func (r *GormBasketItemRepository) FindUnbound(
	ctx context.Context,
	userID, itemID kernel.UUID,
) (*basket.BasketItem, error) {
	var dto BasketItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND item_id = ? AND order_id IS NULL", userID.Bytes(), itemID.Bytes()).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("basket item", itemID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListUnbound locks the returned lines (not their items) until the
// transaction ends.
func (r *GormBasketItemRepository) ListUnbound(
	ctx context.Context,
	userID, campaignID kernel.UUID,
) ([]*basket.BasketItem, error) {
	var dtos []BasketItemDTO
	err := r.db.WithContext(ctx).
		Select("basket_items.*").
		Joins("JOIN items ON items.id = basket_items.item_id").
		Where("basket_items.user_id = ? AND basket_items.order_id IS NULL AND items.campaign_id = ?",
			userID.Bytes(), campaignID.Bytes()).
		Order("items.name, basket_items.id").
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "basket_items"}}).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormBasketItemRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*basket.BasketItem, error) {
	var dtos []BasketItemDTO
	err := r.db.WithContext(ctx).
		Select("basket_items.*").
		Joins("JOIN items ON items.id = basket_items.item_id").
		Where("basket_items.order_id = ?", orderID.Bytes()).
		Order("items.name, basket_items.id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}
