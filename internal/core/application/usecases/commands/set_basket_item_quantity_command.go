package commands

import (
	"errors"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/guard"
)

var ErrSetBasketItemQuantityCommandIsNotConstructed = errors.New(
	"SetBasketItemQuantityCommand must be created via NewSetBasketItemQuantityCommand constructor",
)

// SetBasketItemQuantityCommand replaces the quantity of a line still in the
// user's basket. Unlike AddToBasketCommand it may lower the quantity.
type SetBasketItemQuantityCommand struct { //nolint:recvcheck //using for validation
	userID       kernel.UUID
	basketItemID kernel.UUID
	nos          int

	guard guard.ConstructorGuard
}

func NewSetBasketItemQuantityCommand(userID, basketItemID kernel.UUID, nos int) (SetBasketItemQuantityCommand, error) {
	if err := errors.Join(
		userID.Validate(),
		basketItemID.Validate(),
		validateQuantity(nos),
	); err != nil {
		return SetBasketItemQuantityCommand{}, err
	}

	return SetBasketItemQuantityCommand{
		userID:       userID,
		basketItemID: basketItemID,
		nos:          nos,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SetBasketItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetBasketItemQuantityCommandIsNotConstructed)
}

func (c SetBasketItemQuantityCommand) UserID() kernel.UUID {
	return c.userID
}

func (c SetBasketItemQuantityCommand) BasketItemID() kernel.UUID {
	return c.basketItemID
}

func (c SetBasketItemQuantityCommand) Nos() int {
	return c.nos
}
