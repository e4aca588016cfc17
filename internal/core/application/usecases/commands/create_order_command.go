package commands

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand opens, or resumes, the user's unplaced order for a
// campaign from the items staged in the basket.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(userID, campaignID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, lines, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, basket.ErrEmptyBasket) {
//	    // nothing staged for this campaign
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userID     kernel.UUID
	campaignID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(userID, campaignID kernel.UUID) (CreateOrderCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		campaignID.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		userID:     userID,
		campaignID: campaignID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateOrderCommand) CampaignID() kernel.UUID {
	return c.campaignID
}
