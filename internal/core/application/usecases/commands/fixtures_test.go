package commands_test

import (
	"testing"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/dealer"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCampaign(t *testing.T, approverID *kernel.UUID) *catalog.Campaign {
	t.Helper()
	c, err := catalog.NewCampaign(kernel.NewUUID(), "Spring fair", approverID)
	require.NoError(t, err)
	return c
}

func newItem(t *testing.T, campaignID kernel.UUID, threshAutoApp, stock int) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(kernel.NewUUID(), campaignID, catalog.Attributes{
		Name:             "Leaflet",
		Incl:             50,
		ThreshAutoApp:    threshAutoApp,
		ThreshStockAlert: 2,
		Stock:            stock,
	})
	require.NoError(t, err)
	return item
}

func newLine(t *testing.T, userID kernel.UUID, item *catalog.Item, nos int) *basket.BasketItem {
	t.Helper()
	line, err := basket.NewBasketItem(kernel.NewUUID(), userID, item.ID(), nos)
	require.NoError(t, err)
	return line
}

func newDealer(t *testing.T, userID kernel.UUID, telephone string) *dealer.Dealer {
	t.Helper()
	d, err := dealer.NewDealer(kernel.NewUUID(), userID,
		dealer.Identity{Name: "Kita Motors", AbbName: "KM", DealerCode: "D-001"},
		kernel.Contact{ZipCode: "060-0001", Address: "Sapporo 1-1", Telephone: telephone, Recipient: "Sato"})
	require.NoError(t, err)
	return d
}

func newOpenOrder(t *testing.T, userID, campaignID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), userID, campaignID)
	require.NoError(t, err)
	return o
}

func eventOf(kind order.EventKind) any {
	return mock.MatchedBy(func(e order.Event) bool { return e.Kind == kind })
}
