package commands

import (
	"errors"
	"strings"

	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrCreateCampaignCommandIsNotConstructed = errors.New(
	"CreateCampaignCommand must be created via NewCreateCampaignCommand constructor",
)

// CreateCampaignCommand registers a procurement campaign and its optional
// approver.
//
// Example:
//
//	cmd, err := NewCreateCampaignCommand(kernel.NewUUID(), "Spring fair 2024", &approverID)
//	if err != nil {
//	    return fmt.Errorf("invalid campaign data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateCampaignCommand struct { //nolint:recvcheck //using for validation
	campaignID kernel.UUID
	name       string
	approverID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateCampaignCommand(campaignID kernel.UUID, name string, approverID *kernel.UUID) (CreateCampaignCommand, error) {
	cmd := CreateCampaignCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCampaignID(campaignID),
		cmd.setName(name),
		cmd.setApproverID(approverID),
	); err != nil {
		return CreateCampaignCommand{}, err
	}

	return cmd, nil
}

func (c CreateCampaignCommand) Validate() error {
	return c.guard.Validate(ErrCreateCampaignCommandIsNotConstructed)
}

func (c CreateCampaignCommand) CampaignID() kernel.UUID {
	return c.campaignID
}

func (c CreateCampaignCommand) Name() string {
	return c.name
}

// ApproverID returns the designated approver, nil when orders can only be
// auto-approved.
func (c CreateCampaignCommand) ApproverID() *kernel.UUID {
	return c.approverID
}

func (c *CreateCampaignCommand) setCampaignID(campaignID kernel.UUID) error {
	if err := campaignID.Validate(); err != nil {
		return err
	}
	c.campaignID = campaignID
	return nil
}

func (c *CreateCampaignCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return catalog.ErrCampaignNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateCampaignCommand) setApproverID(approverID *kernel.UUID) error {
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
