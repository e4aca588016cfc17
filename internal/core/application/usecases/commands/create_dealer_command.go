package commands

import (
	"errors"
	"strings"

	"dealerorders/internal/core/domain/model/dealer"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrCreateDealerCommandIsNotConstructed = errors.New(
	"CreateDealerCommand must be created via NewCreateDealerCommand constructor",
)

// CreateDealerCommand registers the dealer profile of a user together with
// the default contact copied into that user's orders.
type CreateDealerCommand struct { //nolint:recvcheck //using for validation
	dealerID kernel.UUID
	userID   kernel.UUID
	identity dealer.Identity
	defaults kernel.Contact

	guard guard.ConstructorGuard
}

func NewCreateDealerCommand(
	dealerID, userID kernel.UUID,
	identity dealer.Identity,
	defaults kernel.Contact,
) (CreateDealerCommand, error) {
	cmd := CreateDealerCommand{
		defaults: defaults,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDealerID(dealerID),
		cmd.setUserID(userID),
		cmd.setIdentity(identity),
	); err != nil {
		return CreateDealerCommand{}, err
	}

	return cmd, nil
}

func (c CreateDealerCommand) Validate() error {
	return c.guard.Validate(ErrCreateDealerCommandIsNotConstructed)
}

func (c CreateDealerCommand) DealerID() kernel.UUID {
	return c.dealerID
}

func (c CreateDealerCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateDealerCommand) Identity() dealer.Identity {
	return c.identity
}

func (c CreateDealerCommand) Defaults() kernel.Contact {
	return c.defaults
}

func (c *CreateDealerCommand) setDealerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.dealerID = id
	return nil
}

func (c *CreateDealerCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *CreateDealerCommand) setIdentity(identity dealer.Identity) error {
	identity.Name = strings.TrimSpace(identity.Name)
	if identity.Name == "" {
		return dealer.ErrDealerNameIsRequired
	}
	c.identity = identity
	return nil
}
