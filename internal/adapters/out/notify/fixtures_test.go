package notify_test

import (
	"testing"
	"time"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// placedOrder returns an auto-approved order, its events and two bound lines.
func placedOrder(t *testing.T) (*order.Order, []order.Event, []*basket.BasketItem) {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, o.SetContact(kernel.Contact{
		DealerName: "Kita Motors",
		ZipCode:    "060-0001",
		Address:    "Sapporo 1-1",
		Telephone:  "011-000-0000",
		Recipient:  "Sato",
	}))

	lines := make([]*basket.BasketItem, 0, 2)
	for _, nos := range []int{3, 1} {
		line, lineErr := basket.NewBasketItem(kernel.NewUUID(), o.UserID(), kernel.NewUUID(), nos)
		require.NoError(t, lineErr)
		require.NoError(t, line.BindTo(o.ID()))
		lines = append(lines, line)
	}

	require.NoError(t, o.Place(true, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))
	return o, o.PullEvents(), lines
}
