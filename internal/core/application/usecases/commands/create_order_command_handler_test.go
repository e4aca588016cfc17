package commands_test

import (
	"context"
	"errors"
	"testing"

	"dealerorders/internal/core/application/usecases/commands"
	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/core/ports"
	"dealerorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	_, err = commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero commands.CreateOrderCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

type createOrderFixture struct {
	userID     kernel.UUID
	campaignID kernel.UUID
	lines      []*basket.BasketItem
	cmd        commands.CreateOrderCommand
	lockKey    string
}

func newCreateOrderFixture(t *testing.T) createOrderFixture {
	userID := kernel.NewUUID()
	campaign := newCampaign(t, nil)
	item := newItem(t, campaign.ID(), 5, 10)
	cmd, err := commands.NewCreateOrderCommand(userID, campaign.ID())
	require.NoError(t, err)

	return createOrderFixture{
		userID:     userID,
		campaignID: campaign.ID(),
		lines:      []*basket.BasketItem{newLine(t, userID, item, 3)},
		cmd:        cmd,
		lockKey:    "order:" + userID.String() + ":" + campaign.ID().String(),
	}
}

func lockerReleasing(ctx context.Context, key string, released *int) *MockLocker {
	locker := new(MockLocker)
	locker.On("Obtain", ctx, key).Return(func(context.Context) { *released++ }, nil).Once()
	return locker
}

func TestCreateOrderCommandHandler_Handle_CreatesOrderWithSnapshot(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	profile := newDealer(t, f.userID, "011-111")
	released := 0
	locker := lockerReleasing(ctx, f.lockKey, &released)

	r := newRepos()
	var added *order.Order
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.campaigns.On("Get", ctx, f.campaignID).Return(newCampaign(t, nil), nil).Once(),
		r.lines.On("ListUnbound", ctx, f.userID, f.campaignID).Return(f.lines, nil).Once(),
		r.dealers.On("GetByUser", ctx, f.userID).Return(profile, nil).Once(),
		r.orders.On("GetOpen", ctx, f.userID, f.campaignID).
			Return(nil, errs.NewObjectNotFoundError("order", f.userID)).Once(),
		r.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	o, lines, err := commands.NewCreateOrderCommandHandler(r.factory(), locker).Handle(ctx, f.cmd)

	require.NoError(t, err)
	require.Same(t, added, o)
	assert.Equal(t, order.Open, o.Status())
	assert.True(t, o.IsOwnedBy(f.userID))
	assert.Equal(t, profile.Snapshot(), o.Contact())
	assert.Equal(t, "Kita Motors", o.Contact().DealerName)
	assert.Equal(t, f.lines, lines)
	assert.Equal(t, 1, released)
	r.assert(t)
	locker.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ResumesOpenOrder(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)

	call := func(existing *order.Order, telephone string) (*order.Order, repos) {
		released := 0
		locker := lockerReleasing(ctx, f.lockKey, &released)
		r := newRepos()
		r.uow.On("Begin", ctx).Return(nil).Once()
		r.campaigns.On("Get", ctx, f.campaignID).Return(newCampaign(t, nil), nil).Once()
		r.lines.On("ListUnbound", ctx, f.userID, f.campaignID).Return(f.lines, nil).Once()
		r.dealers.On("GetByUser", ctx, f.userID).Return(newDealer(t, f.userID, telephone), nil).Once()
		if existing == nil {
			r.orders.On("GetOpen", ctx, f.userID, f.campaignID).
				Return(nil, errs.NewObjectNotFoundError("order", f.userID)).Once()
			r.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
		} else {
			r.orders.On("GetOpen", ctx, f.userID, f.campaignID).Return(existing, nil).Once()
			r.orders.On("Update", ctx, existing).Return(nil).Once()
		}
		r.uow.On("Commit", ctx).Return(nil).Once()
		r.uow.On("Rollback", ctx).Return(nil).Once()

		o, _, err := commands.NewCreateOrderCommandHandler(r.factory(), locker).Handle(ctx, f.cmd)
		require.NoError(t, err)
		assert.Equal(t, 1, released)
		r.assert(t)
		return o, r
	}

	first, r1 := call(nil, "011-111")
	assert.Equal(t, "011-111", first.Contact().Telephone)

	second, r2 := call(first, "011-222")

	assert.True(t, first.ID().IsEqual(second.ID()))
	assert.Equal(t, "011-222", second.Contact().Telephone)
	r1.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	r2.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_EmptyBasketCreatesNothing(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	released := 0
	locker := lockerReleasing(ctx, f.lockKey, &released)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.campaigns.On("Get", ctx, f.campaignID).Return(newCampaign(t, nil), nil).Once(),
		r.lines.On("ListUnbound", ctx, f.userID, f.campaignID).Return([]*basket.BasketItem{}, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	o, _, err := commands.NewCreateOrderCommandHandler(r.factory(), locker).Handle(ctx, f.cmd)

	require.ErrorIs(t, err, basket.ErrEmptyBasket)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, o)
	r.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	assert.Equal(t, 1, released)
	r.assert(t)
}

func TestCreateOrderCommandHandler_Handle_LockNotObtained(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	locker := new(MockLocker)
	locker.On("Obtain", ctx, f.lockKey).Return(nil, ports.ErrLockNotObtained).Once()
	factory := new(MockUoWFactory)

	_, _, err := commands.NewCreateOrderCommandHandler(factory, locker).Handle(ctx, f.cmd)

	require.ErrorIs(t, err, ports.ErrLockNotObtained)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_MissingDealerProfile(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	released := 0
	locker := lockerReleasing(ctx, f.lockKey, &released)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.campaigns.On("Get", ctx, f.campaignID).Return(newCampaign(t, nil), nil).Once(),
		r.lines.On("ListUnbound", ctx, f.userID, f.campaignID).Return(f.lines, nil).Once(),
		r.dealers.On("GetByUser", ctx, f.userID).Return(nil, errs.NewObjectNotFoundError("dealer", f.userID)).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, _, err := commands.NewCreateOrderCommandHandler(r.factory(), locker).Handle(ctx, f.cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.assert(t)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newCreateOrderFixture(t)
	released := 0
	locker := lockerReleasing(ctx, f.lockKey, &released)

	r := newRepos()
	r.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	_, _, err := commands.NewCreateOrderCommandHandler(r.factory(), locker).Handle(ctx, f.cmd)

	require.EqualError(t, err, "begin error")
	assert.Equal(t, 1, released)
}
