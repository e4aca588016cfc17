// Package basketrepo persists basket lines, unbound and bound to orders.
package basketrepo

import (
	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BasketItemDTO is the row of the basket_items table. A user holds at most
// one unbound line per item; the partial unique index enforces it.
type BasketItemDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_basket_items_unbound,unique,where:order_id IS NULL"`
	ItemID  uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_basket_items_unbound,unique,where:order_id IS NULL"`
	OrderID *uuid.UUID `gorm:"type:uuid;index"`
	Nos     int        `gorm:"not null"`
}

func (BasketItemDTO) TableName() string {
	return "basket_items"
}

func fromDomain(line *basket.BasketItem) BasketItemDTO {
	var orderID *uuid.UUID
	if id := line.Order(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return BasketItemDTO{
		ID:      line.ID().Bytes(),
		UserID:  line.UserID().Bytes(),
		ItemID:  line.ItemID().Bytes(),
		OrderID: orderID,
		Nos:     line.Nos(),
	}
}

func toDomain(dto BasketItemDTO) (*basket.BasketItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &oID
	}

	return basket.RestoreBasketItem(id, userID, itemID, orderID, dto.Nos)
}

func toDomainAll(dtos []BasketItemDTO) ([]*basket.BasketItem, error) {
	lines := make([]*basket.BasketItem, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
