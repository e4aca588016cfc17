package commands

import (
	"errors"
	"fmt"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"
	"dealerorders/internal/pkg/guard"
)

var (
	ErrAddToBasketCommandIsNotConstructed = errors.New(
		"AddToBasketCommand must be created via NewAddToBasketCommand constructor",
	)
	ErrQuantityIsNegative = errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("quantity must not be negative"))
)

// AddToBasketCommand stages quantity units of an item in the user's basket.
// A quantity of zero is accepted and changes nothing.
type AddToBasketCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddToBasketCommand rejects negative quantities before they reach the basket.
func NewAddToBasketCommand(userID, itemID kernel.UUID, quantity int) (AddToBasketCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		itemID.Validate(),
		validateQuantity(quantity),
	); err != nil {
		return AddToBasketCommand{}, err
	}

	return AddToBasketCommand{
		userID:   userID,
		itemID:   itemID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AddToBasketCommand) Validate() error {
	return c.guard.Validate(ErrAddToBasketCommandIsNotConstructed)
}

func (c AddToBasketCommand) UserID() kernel.UUID {
	return c.userID
}

func (c AddToBasketCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddToBasketCommand) Quantity() int {
	return c.quantity
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: got %d", ErrQuantityIsNegative, quantity)
	}
	return nil
}
