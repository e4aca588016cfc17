// Package catalogrepo persists campaigns and their items.
package catalogrepo

import (
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CampaignDTO is the row of the campaigns table.
type CampaignDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"not null"`
	ApproverID *uuid.UUID `gorm:"type:uuid;index"`
}

func (CampaignDTO) TableName() string {
	return "campaigns"
}

// ItemDTO is the row of the items table. Stock is signed: dispatch may
// oversell.
type ItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CampaignID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"not null"`
	Remarks          string
	Incl             int `gorm:"not null;default:0"`
	ThreshAutoApp    int `gorm:"not null;default:0"`
	ThreshStockAlert int `gorm:"not null;default:0"`
	Stock            int `gorm:"not null;default:0"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func campaignFromDomain(c *catalog.Campaign) CampaignDTO {
	var approverID *uuid.UUID
	if id := c.Approver(); id != nil {
		raw := id.Bytes()
		approverID = &raw
	}

	return CampaignDTO{
		ID:         c.ID().Bytes(),
		Name:       c.Name(),
		ApproverID: approverID,
	}
}

func campaignToDomain(dto CampaignDTO) (*catalog.Campaign, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var approverID *kernel.UUID
	if dto.ApproverID != nil {
		aID, approverErr := kernel.UUIDFromBytes((*dto.ApproverID)[:])
		if approverErr != nil {
			return nil, approverErr
		}
		approverID = &aID
	}

	return catalog.RestoreCampaign(id, dto.Name, approverID)
}

func itemFromDomain(item *catalog.Item) ItemDTO {
	attrs := item.Attributes()
	return ItemDTO{
		ID:               item.ID().Bytes(),
		CampaignID:       item.CampaignID().Bytes(),
		Name:             attrs.Name,
		Remarks:          attrs.Remarks,
		Incl:             attrs.Incl,
		ThreshAutoApp:    attrs.ThreshAutoApp,
		ThreshStockAlert: attrs.ThreshStockAlert,
		Stock:            attrs.Stock,
	}
}

func itemToDomain(dto ItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	campaignID, err := kernel.UUIDFromBytes(dto.CampaignID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreItem(id, campaignID, catalog.Attributes{
		Name:             dto.Name,
		Remarks:          dto.Remarks,
		Incl:             dto.Incl,
		ThreshAutoApp:    dto.ThreshAutoApp,
		ThreshStockAlert: dto.ThreshStockAlert,
		Stock:            dto.Stock,
	})
}
