package catalog

import (
	"errors"
	"strings"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"
)

var (
	// ErrCampaignIsNotConstructed is returned when using a Campaign not built by NewCampaign or RestoreCampaign.
	ErrCampaignIsNotConstructed = errors.New("Campaign must be created via NewCampaign constructor")
	// ErrCampaignNameIsRequired is returned for an empty campaign name.
	ErrCampaignNameIsRequired = errs.NewValueIsRequiredError("campaign name")
)

// Campaign is a procurement round offering a fixed set of Items to dealers.
// An optional approver is the only user allowed to approve its orders by hand.
type Campaign struct {
	id         kernel.UUID
	name       string
	approverID *kernel.UUID

	isConstructed bool
}

// NewCampaign creates a campaign. A nil approverID leaves the campaign without
// a manual approver; its orders can then only be approved automatically.
func NewCampaign(id kernel.UUID, name string, approverID *kernel.UUID) (*Campaign, error) {
	c := &Campaign{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setApprover(approverID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCampaign rebuilds a campaign read back from storage.
func RestoreCampaign(id kernel.UUID, name string, approverID *kernel.UUID) (*Campaign, error) {
	return NewCampaign(id, name, approverID)
}

func (c *Campaign) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCampaignIsNotConstructed
	}
	return nil
}

func (c *Campaign) ID() kernel.UUID {
	return c.id
}

func (c *Campaign) Name() string {
	return c.name
}

// Approver returns the designated approver, or nil when there is none.
func (c *Campaign) Approver() *kernel.UUID {
	return c.approverID
}

// IsApprover reports whether userID is this campaign's designated approver.
func (c *Campaign) IsApprover(userID kernel.UUID) bool {
	return c.approverID != nil && c.approverID.IsEqual(userID)
}

func (c *Campaign) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Campaign) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCampaignNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Campaign) setApprover(approverID *kernel.UUID) error {
	if approverID == nil {
		return nil
	}
	if err := approverID.Validate(); err != nil {
		return err
	}
	id := *approverID
	c.approverID = &id
	return nil
}
