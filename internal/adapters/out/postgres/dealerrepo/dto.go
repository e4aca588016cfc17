// Package dealerrepo persists dealer profiles, one per user.
package dealerrepo

import (
	"dealerorders/internal/core/domain/model/dealer"
	"dealerorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DealerDTO is the row of the dealers table.
type DealerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name       string    `gorm:"not null"`
	AbbName    string
	DealerCode string
	ZipCode    string
	Address    string
	Telephone  string
	Recipient  string
}

func (DealerDTO) TableName() string {
	return "dealers"
}

func fromDomain(d *dealer.Dealer) DealerDTO {
	identity := d.Identity()
	defaults := d.Snapshot()

	return DealerDTO{
		ID:         d.ID().Bytes(),
		UserID:     d.UserID().Bytes(),
		Name:       identity.Name,
		AbbName:    identity.AbbName,
		DealerCode: identity.DealerCode,
		ZipCode:    defaults.ZipCode,
		Address:    defaults.Address,
		Telephone:  defaults.Telephone,
		Recipient:  defaults.Recipient,
	}
}

func toDomain(dto DealerDTO) (*dealer.Dealer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return dealer.RestoreDealer(id, userID,
		dealer.Identity{Name: dto.Name, AbbName: dto.AbbName, DealerCode: dto.DealerCode},
		kernel.Contact{
			ZipCode:   dto.ZipCode,
			Address:   dto.Address,
			Telephone: dto.Telephone,
			Recipient: dto.Recipient,
		},
	)
}
