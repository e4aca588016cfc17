package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/pkg/errs"
	"dealerorders/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand ships an approved order under a carrier tracking number.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewDispatchOrderCommand(orderID kernel.UUID, trackingNumber string) (DispatchOrderCommand, error) {
	cmd := DispatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return DispatchOrderCommand{}, err
	}

	return cmd, nil
}

func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

func (c DispatchOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DispatchOrderCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *DispatchOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DispatchOrderCommand) setTrackingNumber(trackingNumber string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return order.ErrTrackingNumberIsRequired
	}
	if n := utf8.RuneCountInString(trackingNumber); n > order.MaxTrackingNumberLength {
		return errs.NewValueIsOutOfRangeError("tracking number length", n, 1, order.MaxTrackingNumberLength)
	}
	c.trackingNumber = trackingNumber
	return nil
}
