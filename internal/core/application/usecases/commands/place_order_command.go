package commands

import (
	"errors"
	"strings"

	"dealerorders/internal/core/domain/model/dealer"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// Destination is the shipping block the user reviewed and possibly edited
// before confirming an order.
type Destination struct {
	ZipCode   string
	Address   string
	Telephone string
	Recipient string
}

// PlaceOrderCommand confirms an open order with the reviewed destination.
// OptIn selects which edited fields become the dealer's new defaults.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	orderID     kernel.UUID
	destination Destination
	optIn       dealer.DefaultsOptIn

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	userID, orderID kernel.UUID,
	destination Destination,
	optIn dealer.DefaultsOptIn,
) (PlaceOrderCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		orderID.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		userID:  userID,
		orderID: orderID,
		destination: Destination{
			ZipCode:   strings.TrimSpace(destination.ZipCode),
			Address:   strings.TrimSpace(destination.Address),
			Telephone: strings.TrimSpace(destination.Telephone),
			Recipient: strings.TrimSpace(destination.Recipient),
		},
		optIn: optIn,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) Destination() Destination {
	return c.destination
}

func (c PlaceOrderCommand) OptIn() dealer.DefaultsOptIn {
	return c.optIn
}
