package commands_test

import (
	"context"

	"dealerorders/internal/core/application/usecases/commands"
	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/dealer"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCampaignRepository struct{ mock.Mock }

func (m *MockCampaignRepository) Add(ctx context.Context, c *catalog.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Campaign), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Item), args.Error(1)
}

type MockBasketItemRepository struct{ mock.Mock }

func (m *MockBasketItemRepository) Add(ctx context.Context, line *basket.BasketItem) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockBasketItemRepository) Update(ctx context.Context, line *basket.BasketItem) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockBasketItemRepository) Get(ctx context.Context, id kernel.UUID) (*basket.BasketItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*basket.BasketItem), args.Error(1)
}

func (m *MockBasketItemRepository) FindUnbound(ctx context.Context, userID, itemID kernel.UUID) (*basket.BasketItem, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*basket.BasketItem), args.Error(1)
}

func (m *MockBasketItemRepository) ListUnbound(ctx context.Context, userID, campaignID kernel.UUID) ([]*basket.BasketItem, error) {
	args := m.Called(ctx, userID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*basket.BasketItem), args.Error(1)
}

func (m *MockBasketItemRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*basket.BasketItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*basket.BasketItem), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOpen(ctx context.Context, userID, campaignID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, userID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDealerRepository struct{ mock.Mock }

func (m *MockDealerRepository) Add(ctx context.Context, d *dealer.Dealer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDealerRepository) Update(ctx context.Context, d *dealer.Dealer) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDealerRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*dealer.Dealer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dealer.Dealer), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CampaignRepository() ports.CampaignRepository {
	args := m.Called()
	return args.Get(0).(ports.CampaignRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockUoW) BasketItemRepository() ports.BasketItemRepository {
	args := m.Called()
	return args.Get(0).(ports.BasketItemRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DealerRepository() ports.DealerRepository {
	args := m.Called()
	return args.Get(0).(ports.DealerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockBasketUoWFactory struct{ mock.Mock }

func (m *MockBasketUoWFactory) Create() commands.BasketUoW {
	args := m.Called()
	return args.Get(0).(commands.BasketUoW)
}

type MockDealerUoWFactory struct{ mock.Mock }

func (m *MockDealerUoWFactory) Create() commands.DealerUoW {
	args := m.Called()
	return args.Get(0).(commands.DealerUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, event order.Event, o *order.Order, lines []*basket.BasketItem) error {
	args := m.Called(ctx, event, o, lines)
	return args.Error(0)
}

type MockLocker struct{ mock.Mock }

func (m *MockLocker) Obtain(ctx context.Context, key string) (func(context.Context), error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(func(context.Context)), args.Error(1)
}

// repos bundles one mock per repository, all served by uow.
type repos struct {
	uow       *MockUoW
	campaigns *MockCampaignRepository
	items     *MockItemRepository
	lines     *MockBasketItemRepository
	orders    *MockOrderRepository
	dealers   *MockDealerRepository
}

func newRepos() repos {
	r := repos{
		uow:       new(MockUoW),
		campaigns: new(MockCampaignRepository),
		items:     new(MockItemRepository),
		lines:     new(MockBasketItemRepository),
		orders:    new(MockOrderRepository),
		dealers:   new(MockDealerRepository),
	}
	r.uow.On("CampaignRepository").Return(r.campaigns).Maybe()
	r.uow.On("ItemRepository").Return(r.items).Maybe()
	r.uow.On("BasketItemRepository").Return(r.lines).Maybe()
	r.uow.On("OrderRepository").Return(r.orders).Maybe()
	r.uow.On("DealerRepository").Return(r.dealers).Maybe()
	return r
}

func (r repos) assert(t mock.TestingT) {
	r.uow.AssertExpectations(t)
	r.campaigns.AssertExpectations(t)
	r.items.AssertExpectations(t)
	r.lines.AssertExpectations(t)
	r.orders.AssertExpectations(t)
	r.dealers.AssertExpectations(t)
}

func (r repos) factory() *MockUoWFactory {
	f := new(MockUoWFactory)
	f.On("Create").Return(r.uow).Once()
	return f
}
