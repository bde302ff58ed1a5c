package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lifecycleFixture struct {
	store     *memStore
	publisher *recordingPublisher
	ownerID   kernel.UUID
	addressID kernel.UUID
}

func newLifecycleFixture(t *testing.T) lifecycleFixture {
	t.Helper()
	store := newMemStore()
	owner := seedUser(t, store, "ABCDEF")
	a := seedAddress(t, store, owner.ID(), "7 Church Street", true, time.Now().UTC())
	return lifecycleFixture{store: store, publisher: &recordingPublisher{}, ownerID: owner.ID(), addressID: a.ID()}
}

func (f lifecycleFixture) cancel(t *testing.T, orderID, userID kernel.UUID) (kernel.Money, error) {
	t.Helper()
	cmd, err := commands.NewCancelOrderCommand(orderID, userID)
	require.NoError(t, err)
	return commands.NewCancelOrderCommandHandler(fakeUoWFactory{f.store}, f.publisher, nil).Handle(t.Context(), cmd)
}

func (f lifecycleFixture) delete(t *testing.T, orderID, actorID kernel.UUID, isAdmin bool) error {
	t.Helper()
	cmd, err := commands.NewDeleteOrderCommand(orderID, actorID, isAdmin)
	require.NoError(t, err)
	return commands.NewDeleteOrderCommandHandler(fakeOrderUoWFactory{f.store}, f.publisher, nil).Handle(t.Context(), cmd)
}

func TestCancelOrderCommandHandler_CancelTwice(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)
	o := seedOrder(t, f.store, f.ownerID, f.addressID, order.Pending, kernel.ZeroMoney(), line(t, dish, 1))

	refund, err := f.cancel(t, o.ID(), f.ownerID)
	require.NoError(t, err)
	assert.True(t, refund.IsZero())

	stored, _ := f.store.order(o.ID())
	assert.Equal(t, order.Cancelled, stored.Status())
	assert.NotNil(t, stored.CancelledAt())

	_, err = f.cancel(t, o.ID(), f.ownerID)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, ports.OrderCancelled, f.publisher.events[0].Change)
}

func TestCancelOrderCommandHandler_RefundsWalletExactlyOnce(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)
	o := seedOrder(t, f.store, f.ownerID, f.addressID, order.Confirmed, kernel.MoneyFromInt(30), line(t, dish, 1))

	refund, err := f.cancel(t, o.ID(), f.ownerID)
	require.NoError(t, err)
	assert.Equal(t, "30.00", refund.String())

	owner, _ := f.store.user(f.ownerID)
	assert.Equal(t, "30.00", owner.WalletBalance().String())

	_, err = f.cancel(t, o.ID(), f.ownerID)
	require.ErrorIs(t, err, order.ErrInvalidTransition)

	owner, _ = f.store.user(f.ownerID)
	assert.Equal(t, "30.00", owner.WalletBalance().String())
}

func TestCancelOrderCommandHandler_OnlyFromPendingOrConfirmed(t *testing.T) {
	for _, status := range []order.Status{order.Preparing, order.OutForDelivery, order.Delivered} {
		t.Run(status.String(), func(t *testing.T) {
			f := newLifecycleFixture(t)
			dish := seedMenuItem(t, f.store, 10)
			o := seedOrder(t, f.store, f.ownerID, f.addressID, status, kernel.MoneyFromInt(5), line(t, dish, 1))

			_, err := f.cancel(t, o.ID(), f.ownerID)

			require.ErrorIs(t, err, order.ErrInvalidTransition)
			stored, _ := f.store.order(o.ID())
			assert.Equal(t, status, stored.Status())
			owner, _ := f.store.user(f.ownerID)
			assert.True(t, owner.WalletBalance().IsZero())
		})
	}
}

func TestCancelOrderCommandHandler_NotOwner(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)
	o := seedOrder(t, f.store, f.ownerID, f.addressID, order.Pending, kernel.ZeroMoney(), line(t, dish, 1))

	_, err := f.cancel(t, o.ID(), kernel.NewUUID())

	require.ErrorIs(t, err, order.ErrNotOrderOwner)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
	stored, _ := f.store.order(o.ID())
	assert.Equal(t, order.Pending, stored.Status())
}

func TestCancelOrderCommandHandler_NotFound(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.cancel(t, kernel.NewUUID(), f.ownerID)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteOrderCommandHandler_OnlyCancelled(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)

	for _, status := range []order.Status{order.Pending, order.Confirmed, order.Preparing, order.OutForDelivery, order.Delivered} {
		o := seedOrder(t, f.store, f.ownerID, f.addressID, status, kernel.ZeroMoney(), line(t, dish, 1))

		err := f.delete(t, o.ID(), f.ownerID, false)

		require.ErrorIs(t, err, order.ErrNotDeletable, status.String())
		_, ok := f.store.order(o.ID())
		assert.True(t, ok)
	}
}

func TestDeleteOrderCommandHandler_CancelledOrderIsGone(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)
	o := seedOrder(t, f.store, f.ownerID, f.addressID, order.Cancelled, kernel.ZeroMoney(), line(t, dish, 1))

	require.NoError(t, f.delete(t, o.ID(), f.ownerID, false))

	_, ok := f.store.order(o.ID())
	assert.False(t, ok)
	err := f.delete(t, o.ID(), f.ownerID, false)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestDeleteOrderCommandHandler_AdminMayDeleteAnyCancelledOrder(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)
	o := seedOrder(t, f.store, f.ownerID, f.addressID, order.Cancelled, kernel.ZeroMoney(), line(t, dish, 1))

	err := f.delete(t, o.ID(), kernel.NewUUID(), false)
	require.ErrorIs(t, err, order.ErrNotOrderOwner)

	require.NoError(t, f.delete(t, o.ID(), kernel.NewUUID(), true))
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, ports.OrderDeleted, f.publisher.events[0].Change)
}

func TestReorderCommandHandler(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)
	source := seedOrder(t, f.store, f.ownerID, f.addressID, order.Delivered, kernel.ZeroMoney(), line(t, dish, 4))
	h := commands.NewReorderCommandHandler(fakeOrderUoWFactory{f.store}, f.publisher, nil)

	newID := kernel.NewUUID()
	cmd, err := commands.NewReorderCommand(newID, source.ID(), f.ownerID)
	require.NoError(t, err)
	require.NoError(t, h.Handle(t.Context(), cmd))

	copied, ok := f.store.order(newID)
	require.True(t, ok)
	assert.Equal(t, order.Pending, copied.Status())
	assert.True(t, copied.TotalPrice().IsEqual(source.TotalPrice()))
	assert.Equal(t, source.DeliveryAddressID(), copied.DeliveryAddressID())
	assert.Equal(t, source.PaymentMethod(), copied.PaymentMethod())
	assert.Equal(t, source.MenuItemIDs(), copied.MenuItemIDs())
	assert.Equal(t, 4, copied.Items()[0].Quantity())

	// the copy is now active, so a second reorder of the same items conflicts
	again, err := commands.NewReorderCommand(kernel.NewUUID(), source.ID(), f.ownerID)
	require.NoError(t, err)
	err = h.Handle(t.Context(), again)
	require.ErrorIs(t, err, commands.ErrDuplicateOrder)
}

func TestReorderCommandHandler_NotOwner(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)
	source := seedOrder(t, f.store, f.ownerID, f.addressID, order.Delivered, kernel.ZeroMoney(), line(t, dish, 1))
	h := commands.NewReorderCommandHandler(fakeOrderUoWFactory{f.store}, f.publisher, nil)

	cmd, err := commands.NewReorderCommand(kernel.NewUUID(), source.ID(), kernel.NewUUID())
	require.NoError(t, err)

	require.ErrorIs(t, h.Handle(t.Context(), cmd), order.ErrNotOrderOwner)
	assert.Equal(t, 1, f.store.orderCount())
}

func TestUpdateOrderStatusCommandHandler_ForcesAnyKnownStatus(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)
	o := seedOrder(t, f.store, f.ownerID, f.addressID, order.Cancelled, kernel.ZeroMoney(), line(t, dish, 1))
	h := commands.NewUpdateOrderStatusCommandHandler(fakeOrderUoWFactory{f.store}, f.publisher, nil)

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), "delivered")
	require.NoError(t, err)
	require.NoError(t, h.Handle(t.Context(), cmd))

	stored, _ := f.store.order(o.ID())
	assert.Equal(t, order.Delivered, stored.Status())
	assert.NotNil(t, stored.DeliveredAt())
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, ports.OrderStatusChanged, f.publisher.events[0].Change)
	assert.Equal(t, "delivered", f.publisher.events[0].Status)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), "shipped")

	require.ErrorIs(t, err, order.ErrInvalidStatus)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPurgeCancelledOrdersCommandHandler(t *testing.T) {
	f := newLifecycleFixture(t)
	dish := seedMenuItem(t, f.store, 10)
	now := time.Now().UTC()

	old := seedOrder(t, f.store, f.ownerID, f.addressID, order.Pending, kernel.ZeroMoney(), line(t, dish, 1))
	_, err := old.Cancel(now.Add(-40 * 24 * time.Hour))
	require.NoError(t, err)
	f.store.seedOrder(old)

	recent := seedOrder(t, f.store, f.ownerID, f.addressID, order.Pending, kernel.ZeroMoney(), line(t, dish, 1))
	_, err = recent.Cancel(now.Add(-time.Hour))
	require.NoError(t, err)
	f.store.seedOrder(recent)

	active := seedOrder(t, f.store, f.ownerID, f.addressID, order.Preparing, kernel.ZeroMoney(), line(t, dish, 1))

	cmd, err := commands.NewPurgeCancelledOrdersCommand(now.Add(-30*24*time.Hour), 0)
	require.NoError(t, err)
	assert.Equal(t, commands.DefaultPurgeBatchSize, cmd.BatchSize())

	deleted, err := commands.NewPurgeCancelledOrdersCommandHandler(fakeOrderUoWFactory{f.store}, f.publisher, nil).
		Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	_, ok := f.store.order(old.ID())
	assert.False(t, ok)
	_, ok = f.store.order(recent.ID())
	assert.True(t, ok)
	_, ok = f.store.order(active.ID())
	assert.True(t, ok)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, old.ID().String(), f.publisher.events[0].OrderID)
}

func TestNewPurgeCancelledOrdersCommand_RequiresCutoff(t *testing.T) {
	_, err := commands.NewPurgeCancelledOrdersCommand(time.Time{}, 10)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
