package queries

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrGetCampaignItemsQueryIsNotConstructed = errors.New(
	"GetCampaignItemsQuery must be created via NewGetCampaignItemsQuery constructor",
)

// GetCampaignItemsQuery lists the catalog of one campaign. An unknown
// campaign is reported as not found rather than as an empty catalog.
type GetCampaignItemsQuery struct {
	campaignID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCampaignItemsQuery(campaignID kernel.UUID) (GetCampaignItemsQuery, error) {
	if err := campaignID.Validate(); err != nil {
		return GetCampaignItemsQuery{}, err
	}

	return GetCampaignItemsQuery{campaignID: campaignID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCampaignItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetCampaignItemsQueryIsNotConstructed)
}

func (q GetCampaignItemsQuery) CampaignID() kernel.UUID {
	return q.campaignID
}

// ItemView is one catalog entry as shown to dealers and administrators.
type ItemView struct {
	ID               kernel.UUID
	Name             string
	Remarks          string
	Incl             int
	ThreshAutoApp    int
	ThreshStockAlert int
	Stock            int
}
