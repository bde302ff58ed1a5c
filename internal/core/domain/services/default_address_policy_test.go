package services_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddress(t *testing.T, createdAt time.Time, isDefault bool) *address.Address {
	t.Helper()
	geo, err := kernel.NewGeoPoint(19.07, 72.87)
	require.NoError(t, err)
	a, err := address.NewAddress(kernel.NewUUID(), kernel.NewUUID(), address.Details{
		AddressLine: createdAt.Format(time.RFC3339),
		Landmarks:   []string{"Station"},
		City:        "Mumbai",
		State:       "Maharashtra",
		PinCode:     "400001",
		Geo:         geo,
	}, isDefault, createdAt)
	require.NoError(t, err)
	return a
}

func TestDefaultAddressPolicy(t *testing.T) {
	policy := services.NewDefaultAddressPolicy()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("first address is always default", func(t *testing.T) {
		assert.True(t, policy.ShouldBeDefault(false, 0))
		assert.True(t, policy.ShouldBeDefault(true, 3))
		assert.False(t, policy.ShouldBeDefault(false, 1))
	})

	t.Run("delivery address prefers default", func(t *testing.T) {
		oldest := newAddress(t, base, false)
		def := newAddress(t, base.Add(time.Hour), true)

		assert.Same(t, def, policy.PickDeliveryAddress([]*address.Address{oldest, def}))
	})

	t.Run("delivery address falls back to oldest", func(t *testing.T) {
		newer := newAddress(t, base.Add(time.Hour), false)
		oldest := newAddress(t, base, false)

		assert.Same(t, oldest, policy.PickDeliveryAddress([]*address.Address{newer, oldest}))
		assert.Nil(t, policy.PickDeliveryAddress(nil))
	})

	t.Run("replacement skips the removed address", func(t *testing.T) {
		removed := newAddress(t, base, true)
		second := newAddress(t, base.Add(2*time.Hour), false)
		first := newAddress(t, base.Add(time.Hour), false)

		got := policy.PickReplacementDefault([]*address.Address{removed, second, first}, removed.ID())

		assert.Same(t, first, got)
		assert.Nil(t, policy.PickReplacementDefault([]*address.Address{removed}, removed.ID()))
	})
}
