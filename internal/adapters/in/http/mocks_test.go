package http_test

import (
	"context"

	"dealerorders/internal/core/application/usecases/commands"
	"dealerorders/internal/core/application/usecases/queries"
	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockAddToBasket struct{ mock.Mock }

func (m *MockAddToBasket) Handle(ctx context.Context, cmd commands.AddToBasketCommand) (*basket.BasketItem, error) {
	args := m.Called(ctx, cmd)
	line, _ := args.Get(0).(*basket.BasketItem)
	return line, args.Error(1)
}

type MockCreateCampaign struct{ mock.Mock }

func (m *MockCreateCampaign) Handle(ctx context.Context, cmd commands.CreateCampaignCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockPlaceOrder struct{ mock.Mock }

func (m *MockPlaceOrder) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockApproveOrder struct{ mock.Mock }

func (m *MockApproveOrder) Handle(ctx context.Context, cmd commands.ApproveOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockDispatchOrder struct{ mock.Mock }

func (m *MockDispatchOrder) Handle(ctx context.Context, cmd commands.DispatchOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockGetMyOrders struct{ mock.Mock }

func (m *MockGetMyOrders) Handle(ctx context.Context, query queries.GetMyOrdersQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.OrderSummary)
	return orders, args.Error(1)
}

type MockGetOrderSheet struct{ mock.Mock }

func (m *MockGetOrderSheet) Handle(ctx context.Context, query queries.GetOrderSheetQuery) (queries.OrderSheet, error) {
	args := m.Called(ctx, query)
	sheet, _ := args.Get(0).(queries.OrderSheet)
	return sheet, args.Error(1)
}
