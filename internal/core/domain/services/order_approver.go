package services

import (
	"time"

	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/pkg/errs"
)

// ErrNotApprover is returned when the acting user is not the approver of the
// order's campaign. Campaigns without an approver reject every manual approval.
var ErrNotApprover = errs.NewPermissionDeniedError("user", "approve orders of this campaign")

// OrderApprover records a manual approval on behalf of the campaign approver.
type OrderApprover struct{}

func NewOrderApprover() OrderApprover {
	return OrderApprover{}
}

func (OrderApprover) Approve(o *order.Order, c *catalog.Campaign, approverID kernel.UUID, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.ID().IsEqual(o.CampaignID()) || !c.IsApprover(approverID) {
		return ErrNotApprover
	}
	return o.Approve(now)
}
