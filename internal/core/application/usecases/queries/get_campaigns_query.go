package queries

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrGetCampaignsQueryIsNotConstructed = errors.New(
	"GetCampaignsQuery must be created via NewGetCampaignsQuery constructor",
)

// GetCampaignsQuery lists every campaign by name.
type GetCampaignsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCampaignsQuery() GetCampaignsQuery {
	return GetCampaignsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCampaignsQuery) Validate() error {
	return q.guard.Validate(ErrGetCampaignsQueryIsNotConstructed)
}

// CampaignView is one campaign; ApproverID is nil for campaigns whose orders
// can only be auto-approved.
type CampaignView struct {
	ID         kernel.UUID
	Name       string
	ApproverID *kernel.UUID
}
