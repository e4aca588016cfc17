package commands

import (
	"errors"
	"strings"

	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand adds an orderable item to an existing campaign.
// The referenced campaign is never created on the fly.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	campaignID kernel.UUID
	attrs      catalog.Attributes

	guard guard.ConstructorGuard
}

// NewCreateItemCommand validates identifiers and attributes. Thresholds and
// initial stock must not be negative.
func NewCreateItemCommand(itemID, campaignID kernel.UUID, attrs catalog.Attributes) (CreateItemCommand, error) {
	attrs.Name = strings.TrimSpace(attrs.Name)

	if err := errors.Join(
		itemID.Validate(),
		campaignID.Validate(),
	); err != nil {
		return CreateItemCommand{}, err
	}

	// Item construction reports every attribute problem at once.
	if _, err := catalog.NewItem(itemID, campaignID, attrs); err != nil {
		return CreateItemCommand{}, err
	}

	return CreateItemCommand{
		itemID:     itemID,
		campaignID: campaignID,
		attrs:      attrs,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateItemCommand) CampaignID() kernel.UUID {
	return c.campaignID
}

func (c CreateItemCommand) Attributes() catalog.Attributes {
	return c.attrs
}
