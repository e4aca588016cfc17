// Package basket models a user's staged selection: one BasketItem per
// (user, item) holding the requested quantity until an order binds it.
package basket

import (
	"errors"
	"fmt"

	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"
)

var (
	// ErrBasketItemIsNotConstructed is returned when using a BasketItem not built by its constructors.
	ErrBasketItemIsNotConstructed = errors.New("BasketItem must be created via NewBasketItem constructor")
	// ErrBasketItemIsBound is returned when changing a line that already belongs to an order.
	ErrBasketItemIsBound = errs.NewTransitionIsRejectedError("edit basket item", "basket item is bound to an order")
	// ErrEmptyBasket is returned when an order is requested with nothing staged for the campaign.
	ErrEmptyBasket = fmt.Errorf("basket is empty: %w", errs.ErrObjectNotFound)
)

// BasketItem is a requested quantity of one item by one user.
//
// While orderID is nil the line is part of the user's basket and can be
// changed. Once bound to an order it is an order line and never changes again.
type BasketItem struct {
	id      kernel.UUID
	userID  kernel.UUID
	itemID  kernel.UUID
	orderID *kernel.UUID
	nos     int

	isConstructed bool
}

// NewBasketItem stages nos units of itemID for userID.
func NewBasketItem(id, userID, itemID kernel.UUID, nos int) (*BasketItem, error) {
	return RestoreBasketItem(id, userID, itemID, nil, nos)
}

// RestoreBasketItem rebuilds a persisted line, bound when orderID is not nil.
func RestoreBasketItem(id, userID, itemID kernel.UUID, orderID *kernel.UUID, nos int) (*BasketItem, error) {
	var errOrder error
	if orderID != nil {
		errOrder = orderID.Validate()
	}

	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
		itemID.Validate(),
		errOrder,
		validateQuantity(nos),
	); err != nil {
		return nil, err
	}

	b := &BasketItem{
		id:            id,
		userID:        userID,
		itemID:        itemID,
		nos:           nos,
		isConstructed: true,
	}
	if orderID != nil {
		bound := *orderID
		b.orderID = &bound
	}
	return b, nil
}

func (b *BasketItem) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBasketItemIsNotConstructed
	}
	return nil
}

func (b *BasketItem) ID() kernel.UUID {
	return b.id
}

func (b *BasketItem) UserID() kernel.UUID {
	return b.userID
}

func (b *BasketItem) ItemID() kernel.UUID {
	return b.itemID
}

// Order returns the order this line is bound to, or nil while in the basket.
func (b *BasketItem) Order() *kernel.UUID {
	return b.orderID
}

func (b *BasketItem) Nos() int {
	return b.nos
}

func (b *BasketItem) IsBound() bool {
	return b.orderID != nil
}

// IsOwnedBy reports whether the line was staged by userID.
func (b *BasketItem) IsOwnedBy(userID kernel.UUID) bool {
	return b.userID.IsEqual(userID)
}

// Increment adds quantity to the line. A quantity of zero or less is ignored;
// this path never decreases the line.
func (b *BasketItem) Increment(quantity int) error {
	if b.IsBound() {
		return ErrBasketItemIsBound
	}
	if quantity <= 0 {
		return nil
	}
	b.nos += quantity
	return nil
}

// SetQuantity replaces the requested quantity of an unbound line.
func (b *BasketItem) SetQuantity(nos int) error {
	if b.IsBound() {
		return ErrBasketItemIsBound
	}
	if err := validateQuantity(nos); err != nil {
		return err
	}
	b.nos = nos
	return nil
}

// BindTo attaches the line to an order, freezing it.
func (b *BasketItem) BindTo(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if b.IsBound() {
		return ErrBasketItemIsBound
	}
	b.orderID = &orderID
	return nil
}

func validateQuantity(nos int) error {
	if nos < 0 {
		return errs.NewValueIsInvalidErrorWithCause("nos", fmt.Errorf("%d is negative", nos))
	}
	return nil
}
