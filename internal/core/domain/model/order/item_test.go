package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	id := kernel.NewUUID()

	item, err := order.NewItem(id, 3)
	require.NoError(t, err)
	require.NoError(t, item.Validate())
	assert.True(t, item.MenuItemID().IsEqual(id))
	assert.Equal(t, 3, item.Quantity())

	_, err = order.NewItem(id, 0)
	require.ErrorIs(t, err, order.ErrQuantityIsInvalid)

	_, err = order.NewItem(kernel.UUID{}, 1)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestParsePaymentMethod(t *testing.T) {
	pm, err := order.ParsePaymentMethod("")
	require.NoError(t, err)
	assert.Equal(t, order.CashOnDelivery, pm)

	pm, err = order.ParsePaymentMethod("Online")
	require.NoError(t, err)
	assert.Equal(t, order.Online, pm)

	_, err = order.ParsePaymentMethod("card")
	require.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
}
