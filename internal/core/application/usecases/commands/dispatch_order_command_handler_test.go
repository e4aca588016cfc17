package commands_test

import (
	"strings"
	"testing"
	"time"

	"dealerorders/internal/core/application/usecases/commands"
	"dealerorders/internal/core/domain/model/basket"
	"dealerorders/internal/core/domain/model/catalog"
	"dealerorders/internal/core/domain/model/kernel"
	"dealerorders/internal/core/domain/model/order"
	"dealerorders/internal/pkg/errs"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchOrderCommand(t *testing.T) {
	cmd, err := commands.NewDispatchOrderCommand(kernel.NewUUID(), " JP-0001 ")
	require.NoError(t, err)
	assert.Equal(t, "JP-0001", cmd.TrackingNumber())

	_, err = commands.NewDispatchOrderCommand(kernel.NewUUID(), "  ")
	require.ErrorIs(t, err, order.ErrTrackingNumberIsRequired)

	_, err = commands.NewDispatchOrderCommand(kernel.NewUUID(), strings.Repeat("1", order.MaxTrackingNumberLength+1))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

type dispatchFixture struct {
	order *order.Order
	a, b  *catalog.Item
	lines []*basket.BasketItem
}

// newDispatchFixture builds an order with nos=3 of item A (stock 10) and
// nos=2 of item B (stock 5).
func newDispatchFixture(t *testing.T, approved bool) dispatchFixture {
	userID := kernel.NewUUID()
	campaignID := kernel.NewUUID()
	a := newItem(t, campaignID, 5, 10)
	b := newItem(t, campaignID, 5, 5)
	o := newOpenOrder(t, userID, campaignID)
	lines := []*basket.BasketItem{newLine(t, userID, a, 3), newLine(t, userID, b, 2)}
	for _, line := range lines {
		require.NoError(t, line.BindTo(o.ID()))
	}
	require.NoError(t, o.Place(approved, time.Now()))
	o.PullEvents()
	return dispatchFixture{order: o, a: a, b: b, lines: lines}
}

func TestDispatchOrderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("decrements stock of every line", func(t *testing.T) {
		f := newDispatchFixture(t, true)
		cmd, err := commands.NewDispatchOrderCommand(f.order.ID(), "JP-0001")
		require.NoError(t, err)

		r := newRepos()
		notifier := new(MockNotifier)
		mock.InOrder(
			r.uow.On("Begin", ctx).Return(nil).Once(),
			r.orders.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once(),
			r.lines.On("ListByOrder", ctx, f.order.ID()).Return(f.lines, nil).Once(),
			r.items.On("GetManyForUpdate", ctx, []kernel.UUID{f.a.ID(), f.b.ID()}).
				Return([]*catalog.Item{f.a, f.b}, nil).Once(),
			r.items.On("Update", ctx, f.a).Return(nil).Once(),
			r.items.On("Update", ctx, f.b).Return(nil).Once(),
			r.orders.On("Update", ctx, f.order).Return(nil).Once(),
			r.uow.On("Commit", ctx).Return(nil).Once(),
			notifier.On("Notify", ctx, eventOf(order.EventOrderDispatched), f.order, f.lines).Return(nil).Once(),
			notifier.On("Notify", ctx, eventOf(order.EventCompleted), f.order, f.lines).Return(nil).Once(),
		)
		r.uow.On("Rollback", ctx).Return(nil).Once()

		o, err := commands.NewDispatchOrderCommandHandler(r.factory(), notifier, logrus.New()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 7, f.a.Stock())
		assert.Equal(t, 3, f.b.Stock())
		assert.True(t, o.IsDispatched())
		assert.Equal(t, "JP-0001", o.TrackingNumber())
		r.assert(t)
		notifier.AssertExpectations(t)
	})

	t.Run("second dispatch fails before touching stock", func(t *testing.T) {
		f := newDispatchFixture(t, true)
		require.NoError(t, f.order.Dispatch("JP-0001", time.Now()))
		cmd, _ := commands.NewDispatchOrderCommand(f.order.ID(), "JP-0002")

		r := newRepos()
		r.uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once()
		r.uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewDispatchOrderCommandHandler(r.factory(), new(MockNotifier), logrus.New()).Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrAlreadyDispatched)
		assert.Equal(t, 10, f.a.Stock())
		assert.Equal(t, "JP-0001", f.order.TrackingNumber())
		r.items.AssertNotCalled(t, "GetManyForUpdate", mock.Anything, mock.Anything)
		r.items.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		r.assert(t)
	})

	t.Run("unapproved order is rejected", func(t *testing.T) {
		f := newDispatchFixture(t, false)
		cmd, _ := commands.NewDispatchOrderCommand(f.order.ID(), "JP-0001")

		r := newRepos()
		r.uow.On("Begin", ctx).Return(nil).Once()
		r.orders.On("GetForUpdate", ctx, f.order.ID()).Return(f.order, nil).Once()
		r.uow.On("Rollback", ctx).Return(nil).Once()

		_, err := commands.NewDispatchOrderCommandHandler(r.factory(), new(MockNotifier), logrus.New()).Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrNotApproved)
		assert.Equal(t, 10, f.a.Stock())
		assert.Equal(t, 5, f.b.Stock())
		r.assert(t)
	})
}
