// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// The lifecycle is stored as the is_placed / is_approved / is_dispatched flags with
// their dates; the dealer contact is stored as copied into the order.
package orderrepo

import (
	"time"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The partial unique index keeps one unplaced order per (user, campaign).
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderUserID uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_orders_open,unique,where:is_placed = false"`
	CampaignID  uuid.UUID  `gorm:"type:uuid;not null;index;index:idx_orders_open,unique,where:is_placed = false"`
	Contact     ContactDTO `gorm:"embedded"`

	TrackingNumber string `gorm:"size:20"`

	IsPlaced     bool `gorm:"not null"`
	IsApproved   bool `gorm:"not null"`
	IsDispatched bool `gorm:"not null"`

	DatePlaced     *time.Time
	DateApproved   *time.Time
	DateDispatched *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ContactDTO is the dealer snapshot embedded in the order row.
type ContactDTO struct {
	DealerName string
	ZipCode    string
	Address    string
	Telephone  string
	Recipient  string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	contact := o.Contact()
	timeline := o.Timeline()

	return OrderDTO{
		ID:          o.ID().Bytes(),
		OrderUserID: o.UserID().Bytes(),
		CampaignID:  o.CampaignID().Bytes(),
		Contact: ContactDTO{
			DealerName: contact.DealerName,
			ZipCode:    contact.ZipCode,
			Address:    contact.Address,
			Telephone:  contact.Telephone,
			Recipient:  contact.Recipient,
		},
		TrackingNumber: o.TrackingNumber(),
		IsPlaced:       o.IsPlaced(),
		IsApproved:     o.IsApproved(),
		IsDispatched:   o.IsDispatched(),
		DatePlaced:     timeline.PlacedAt,
		DateApproved:   timeline.ApprovedAt,
		DateDispatched: timeline.DispatchedAt,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.OrderUserID[:])
	if err != nil {
		return nil, err
	}
	campaignID, err := kernel.UUIDFromBytes(dto.CampaignID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromFlags(dto.IsPlaced, dto.IsApproved, dto.IsDispatched)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, userID, campaignID, status,
		kernel.Contact{
			DealerName: dto.Contact.DealerName,
			ZipCode:    dto.Contact.ZipCode,
			Address:    dto.Contact.Address,
			Telephone:  dto.Contact.Telephone,
			Recipient:  dto.Contact.Recipient,
		},
		dto.TrackingNumber,
		order.Timeline{
			PlacedAt:     utc(dto.DatePlaced),
			ApprovedAt:   utc(dto.DateApproved),
			DispatchedAt: utc(dto.DateDispatched),
		},
	)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
