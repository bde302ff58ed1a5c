package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newItem(t *testing.T, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), qty)
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{newItem(t, 2), newItem(t, 1)},
		kernel.MoneyFromInt(250), order.CashOnDelivery, placedAt,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		userID := kernel.NewUUID()
		addressID := kernel.NewUUID()
		items := []order.Item{newItem(t, 2)}

		o, err := order.NewOrder(kernel.NewUUID(), userID, addressID, items,
			kernel.MoneyFromInt(200), order.Online, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.UserID().IsEqual(userID))
		assert.True(t, o.DeliveryAddressID().IsEqual(addressID))
		assert.True(t, o.TotalPrice().IsEqual(kernel.MoneyFromInt(200)))
		assert.True(t, o.WalletUsed().IsZero())
		assert.Equal(t, order.Online, o.PaymentMethod())
		assert.Equal(t, placedAt.Add(30*time.Minute), o.EstimatedDeliveryAt())
		assert.Nil(t, o.CancelledAt())
		assert.Nil(t, o.DeliveredAt())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			kernel.ZeroMoney(), order.CashOnDelivery, placedAt)

		require.ErrorIs(t, err, order.ErrEmptyOrder)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should reject missing identities", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, kernel.UUID{},
			[]order.Item{newItem(t, 1)}, kernel.ZeroMoney(), order.CashOnDelivery, placedAt)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "userID")
		assert.Contains(t, err.Error(), "deliveryAddressID")
	})

	t.Run("should reject unconstructed item", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{{}}, kernel.ZeroMoney(), order.CashOnDelivery, placedAt)

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should reject unknown payment method", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{newItem(t, 1)}, kernel.ZeroMoney(), order.PaymentMethod("Crypto"), placedAt)

		require.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
	})
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	o := newPendingOrder(t)

	items := o.Items()
	items[0] = newItem(t, 9)

	assert.Equal(t, 2, o.Items()[0].Quantity())
}

func TestOrder_Cancel(t *testing.T) {
	cancelAt := placedAt.Add(5 * time.Minute)

	t.Run("pending order is cancelled once", func(t *testing.T) {
		o := newPendingOrder(t)

		refund, err := o.Cancel(cancelAt)

		require.NoError(t, err)
		assert.True(t, refund.IsZero())
		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, cancelAt, *o.CancelledAt())

		_, err = o.Cancel(cancelAt)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "already cancelled")
	})

	t.Run("confirmed order can be cancelled", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Advance(cancelAt))

		_, err := o.Cancel(cancelAt)

		require.NoError(t, err)
	})

	t.Run("wallet used is returned as refund", func(t *testing.T) {
		o := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{newItem(t, 1)}, kernel.MoneyFromInt(100), order.Online, order.Confirmed,
			kernel.MoneyFromInt(40), placedAt, placedAt, placedAt, nil, nil)

		refund, err := o.Cancel(cancelAt)

		require.NoError(t, err)
		assert.True(t, refund.IsEqual(kernel.MoneyFromInt(40)))
	})

	for _, status := range []order.Status{order.Preparing, order.OutForDelivery, order.Delivered} {
		t.Run("cannot cancel "+status.String(), func(t *testing.T) {
			o := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				[]order.Item{newItem(t, 1)}, kernel.MoneyFromInt(100), order.Online, status,
				kernel.MoneyFromInt(40), placedAt, placedAt, placedAt, nil, nil)

			_, err := o.Cancel(cancelAt)

			require.ErrorIs(t, err, order.ErrInvalidTransition)
			require.ErrorIs(t, err, errs.ErrInvalidState)
			assert.Equal(t, status, o.Status())
			assert.Nil(t, o.CancelledAt())
		})
	}
}

func TestOrder_ForceStatus(t *testing.T) {
	at := placedAt.Add(time.Hour)

	t.Run("delivered stamps deliveredAt", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.ForceStatus(order.Delivered, at))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, at, *o.DeliveredAt())
	})

	t.Run("terminal order can be forced back", func(t *testing.T) {
		o := newPendingOrder(t)
		_, err := o.Cancel(at)
		require.NoError(t, err)

		require.NoError(t, o.ForceStatus(order.Preparing, at))

		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.ForceStatus(order.Unknown, at)

		require.ErrorIs(t, err, order.ErrInvalidStatus)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_EnsureDeletable(t *testing.T) {
	o := newPendingOrder(t)

	err := o.EnsureDeletable()
	require.ErrorIs(t, err, order.ErrNotDeletable)

	_, err = o.Cancel(placedAt)
	require.NoError(t, err)
	require.NoError(t, o.EnsureDeletable())
}

func TestOrder_Ownership(t *testing.T) {
	o := newPendingOrder(t)

	require.NoError(t, o.EnsureOwnedBy(o.UserID()))

	err := o.EnsureOwnedBy(kernel.NewUUID())
	require.ErrorIs(t, err, order.ErrNotOrderOwner)
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestOrder_Reorder(t *testing.T) {
	original := newPendingOrder(t)
	_, err := original.Cancel(placedAt)
	require.NoError(t, err)
	later := placedAt.Add(24 * time.Hour)

	copyOrder, err := original.Reorder(kernel.NewUUID(), later)

	require.NoError(t, err)
	assert.False(t, copyOrder.IsEqual(original))
	assert.Equal(t, order.Pending, copyOrder.Status())
	assert.True(t, copyOrder.TotalPrice().IsEqual(original.TotalPrice()))
	assert.True(t, copyOrder.DeliveryAddressID().IsEqual(original.DeliveryAddressID()))
	assert.Equal(t, original.PaymentMethod(), copyOrder.PaymentMethod())
	assert.Equal(t, original.MenuItemIDs(), copyOrder.MenuItemIDs())
	assert.Equal(t, later, copyOrder.CreatedAt())
	assert.Nil(t, copyOrder.CancelledAt())
}
