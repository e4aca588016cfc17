package basket_test

import (
	"testing"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLine(t *testing.T, nos int) *basket.BasketItem {
	t.Helper()
	b, err := basket.NewBasketItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nos)
	require.NoError(t, err)
	return b
}

func TestNewBasketItem(t *testing.T) {
	t.Run("should create unbound line", func(t *testing.T) {
		userID := kernel.NewUUID()
		itemID := kernel.NewUUID()

		b, err := basket.NewBasketItem(kernel.NewUUID(), userID, itemID, 3)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, 3, b.Nos())
		assert.False(t, b.IsBound())
		assert.Nil(t, b.Order())
		assert.True(t, b.IsOwnedBy(userID))
		assert.True(t, b.ItemID().IsEqual(itemID))
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		b, err := basket.NewBasketItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, b)
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		var none kernel.UUID

		_, err := basket.NewBasketItem(none, none, none, 1)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreBasketItem_Bound(t *testing.T) {
	orderID := kernel.NewUUID()

	b, err := basket.RestoreBasketItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &orderID, 2)

	require.NoError(t, err)
	assert.True(t, b.IsBound())
	assert.True(t, b.Order().IsEqual(orderID))
}

func TestBasketItem_Increment(t *testing.T) {
	t.Run("should add positive quantity", func(t *testing.T) {
		b := newLine(t, 2)

		require.NoError(t, b.Increment(3))

		assert.Equal(t, 5, b.Nos())
	})

	t.Run("should ignore zero and negative quantity", func(t *testing.T) {
		b := newLine(t, 2)

		require.NoError(t, b.Increment(0))
		require.NoError(t, b.Increment(-4))

		assert.Equal(t, 2, b.Nos())
	})

	t.Run("should reject bound line", func(t *testing.T) {
		b := newLine(t, 2)
		require.NoError(t, b.BindTo(kernel.NewUUID()))

		err := b.Increment(1)

		require.ErrorIs(t, err, basket.ErrBasketItemIsBound)
		require.ErrorIs(t, err, errs.ErrTransitionIsRejected)
		assert.Equal(t, 2, b.Nos())
	})
}

func TestBasketItem_SetQuantity(t *testing.T) {
	t.Run("should replace quantity including zero", func(t *testing.T) {
		b := newLine(t, 4)

		require.NoError(t, b.SetQuantity(0))

		assert.Equal(t, 0, b.Nos())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		b := newLine(t, 4)

		require.ErrorIs(t, b.SetQuantity(-1), errs.ErrValueIsInvalid)
		assert.Equal(t, 4, b.Nos())
	})

	t.Run("should reject bound line", func(t *testing.T) {
		b := newLine(t, 4)
		require.NoError(t, b.BindTo(kernel.NewUUID()))

		require.ErrorIs(t, b.SetQuantity(1), basket.ErrBasketItemIsBound)
	})
}

func TestBasketItem_BindTo(t *testing.T) {
	t.Run("should bind once", func(t *testing.T) {
		b := newLine(t, 1)
		orderID := kernel.NewUUID()

		require.NoError(t, b.BindTo(orderID))
		assert.True(t, b.Order().IsEqual(orderID))

		require.ErrorIs(t, b.BindTo(kernel.NewUUID()), basket.ErrBasketItemIsBound)
		assert.True(t, b.Order().IsEqual(orderID))
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		b := newLine(t, 1)
		var none kernel.UUID

		require.Error(t, b.BindTo(none))
		assert.False(t, b.IsBound())
	})
}

func TestErrEmptyBasket_IsNotFound(t *testing.T) {
	require.ErrorIs(t, basket.ErrEmptyBasket, errs.ErrObjectNotFound)
}
