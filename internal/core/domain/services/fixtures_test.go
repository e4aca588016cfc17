package services_test

import (
	"testing"
	"time"

	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newItem(t *testing.T, campaignID kernel.UUID, threshAutoApp, stock int) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(kernel.NewUUID(), campaignID, catalog.Attributes{
		Name:             "Brochure",
		Incl:             10,
		ThreshAutoApp:    threshAutoApp,
		ThreshStockAlert: 5,
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

func newOrder(t *testing.T, userID, campaignID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), userID, campaignID)
	require.NoError(t, err)
	return o
}

func byID(items ...*catalog.Item) map[kernel.UUID]*catalog.Item {
	m := make(map[kernel.UUID]*catalog.Item, len(items))
	for _, item := range items {
		m[item.ID()] = item
	}
	return m
}

func kinds(events []order.Event) []order.EventKind {
	result := make([]order.EventKind, 0, len(events))
	for _, e := range events {
		result = append(result, e.Kind)
	}
	return result
}
