package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "dealerorders/internal/adapters/out/postgres"
	"dealerorders/internal/adapters/out/postgres/postgrestest"
	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/ports"
	"dealerorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *postgrestest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Close(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.CampaignRepository())
	suite.NotNil(uow1.ItemRepository())
	suite.NotNil(uow1.BasketItemRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DealerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := suite.T().Context()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "nested Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "no active transaction")
	suite.Require().Error(uow.Rollback(ctx), "no active transaction")
}

// Placing an order binds its lines and updates the order in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_SpansRepositories() {
	ctx := suite.T().Context()
	o, lines := suite.seedOpenOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	locked, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	for _, line := range lines {
		suite.Require().NoError(line.BindTo(locked.ID()))
		suite.Require().NoError(uow.BasketItemRepository().Update(ctx, line))
	}
	suite.Require().NoError(locked.Place(false, time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	got, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsPlaced())

	bound, err := fresh.BasketItemRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(bound, len(lines))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllRepositories() {
	ctx := suite.T().Context()
	o, lines := suite.seedOpenOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	for _, line := range lines {
		suite.Require().NoError(line.BindTo(o.ID()))
		suite.Require().NoError(uow.BasketItemRepository().Update(ctx, line))
	}
	suite.Require().NoError(o.Place(true, time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	got, err := fresh.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(got.IsPlaced())

	bound, err := fresh.BasketItemRepository().ListByOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Empty(bound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolation() {
	ctx := suite.T().Context()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	c1 := suite.newCampaign()
	c2 := suite.newCampaign()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))
	suite.Require().NoError(uow1.CampaignRepository().Add(ctx, c1))
	suite.Require().NoError(uow2.CampaignRepository().Add(ctx, c2))

	_, err := uow1.CampaignRepository().Get(ctx, c2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = uow2.CampaignRepository().Get(ctx, c1.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.CampaignRepository().Get(ctx, c1.ID())
	suite.Require().NoError(err)
	_, err = fresh.CampaignRepository().Get(ctx, c2.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// incrementInOwnTransaction adds quantity to the user's unbound line for
// itemID in a fresh unit of work and reports the outcome on the returned
// channel.
func (suite *UnitOfWorkIntegrationTestSuite) incrementInOwnTransaction(
	ctx context.Context,
	userID, itemID kernel.UUID,
	quantity int,
) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- func() error {
			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return err
			}
			defer func() { _ = uow.Rollback(ctx) }()

			repo := uow.BasketItemRepository()
			line, err := repo.FindUnbound(ctx, userID, itemID)
			if errors.Is(err, errs.ErrObjectNotFound) {
				line, err = basket.NewBasketItem(kernel.NewUUID(), userID, itemID, quantity)
				if err != nil {
					return err
				}
				if err = repo.Add(ctx, line); err != nil {
					return err
				}
				return uow.Commit(ctx)
			}
			if err != nil {
				return err
			}
			if err = line.Increment(quantity); err != nil {
				return err
			}
			if err = repo.Update(ctx, line); err != nil {
				return err
			}
			return uow.Commit(ctx)
		}()
	}()
	return done
}

func (suite *UnitOfWorkIntegrationTestSuite) requireBlocked(done <-chan error) {
	select {
	case err := <-done:
		suite.FailNow("concurrent transaction was not blocked", "finished with %v", err)
	case <-time.After(200 * time.Millisecond):
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentIncrements_AreSerialized() {
	ctx := suite.T().Context()
	_, lines := suite.seedOpenOrder()
	seeded := lines[0]

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	line, err := uow.BasketItemRepository().FindUnbound(ctx, seeded.UserID(), seeded.ItemID())
	suite.Require().NoError(err)

	done := suite.incrementInOwnTransaction(ctx, seeded.UserID(), seeded.ItemID(), 2)
	suite.requireBlocked(done)

	suite.Require().NoError(line.Increment(2))
	suite.Require().NoError(uow.BasketItemRepository().Update(ctx, line))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(<-done)

	got, err := suite.factory.Create().BasketItemRepository().Get(ctx, seeded.ID())
	suite.Require().NoError(err)
	suite.Equal(5, got.Nos())
}

// An add that races a placement waits for it, then starts a new unbound
// line instead of changing the quantity that was just bound.
func (suite *UnitOfWorkIntegrationTestSuite) TestIncrementDuringPlacement_StartsNewLine() {
	ctx := suite.T().Context()
	o, _ := suite.seedOpenOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	locked, err := uow.OrderRepository().GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	lines, err := uow.BasketItemRepository().ListUnbound(ctx, o.UserID(), o.CampaignID())
	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	first := lines[0]

	done := suite.incrementInOwnTransaction(ctx, first.UserID(), first.ItemID(), 2)
	suite.requireBlocked(done)

	for _, line := range lines {
		suite.Require().NoError(line.BindTo(locked.ID()))
		suite.Require().NoError(uow.BasketItemRepository().Update(ctx, line))
	}
	suite.Require().NoError(locked.Place(false, time.Now()))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, locked))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().NoError(<-done)

	fresh := suite.factory.Create().BasketItemRepository()
	bound, err := fresh.Get(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Equal(1, bound.Nos())
	suite.True(bound.IsBound())

	next, err := fresh.FindUnbound(ctx, first.UserID(), first.ItemID())
	suite.Require().NoError(err)
	suite.NotEqual(first.ID(), next.ID())
	suite.Equal(2, next.Nos())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction() {
	ctx := suite.T().Context()
	c := suite.newCampaign()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.CampaignRepository().Add(ctx, c))

	_, err := suite.factory.Create().CampaignRepository().Get(ctx, c.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) newCampaign() *catalog.Campaign {
	c, err := catalog.NewCampaign(kernel.NewUUID(), "Spring fair", nil)
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) seedOpenOrder() (*order.Order, []*basket.BasketItem) {
	ctx := suite.T().Context()
	uow := suite.factory.Create()
	userID := kernel.NewUUID()

	c := suite.newCampaign()
	suite.Require().NoError(uow.CampaignRepository().Add(ctx, c))

	var lines []*basket.BasketItem
	for _, name := range []string{"Oil filter", "Wiper blade"} {
		item, err := catalog.NewItem(kernel.NewUUID(), c.ID(), catalog.Attributes{Name: name, Stock: 5})
		suite.Require().NoError(err)
		suite.Require().NoError(uow.ItemRepository().Add(ctx, item))

		line, err := basket.NewBasketItem(kernel.NewUUID(), userID, item.ID(), 1)
		suite.Require().NoError(err)
		suite.Require().NoError(uow.BasketItemRepository().Add(ctx, line))
		lines = append(lines, line)
	}

	o, err := order.NewOrder(kernel.NewUUID(), userID, c.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	return o, lines
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
