package menu_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 7, 7, 8, 0, 0, 0, time.UTC)

func validDetails() menu.Details {
	return menu.Details{
		Name:         "Paneer Tikka",
		Description:  "Charcoal grilled cottage cheese",
		Price:        kernel.MoneyFromInt(220),
		Category:     menu.Appetizer,
		ImageURL:     "https://cdn.example.com/paneer.png",
		IsVegetarian: true,
	}
}

func TestNewMenuItem(t *testing.T) {
	t.Run("creates available item", func(t *testing.T) {
		m, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), validDetails(), now)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.IsAvailable())
		assert.True(t, m.IsVegetarian())
		assert.InDelta(t, 0, m.Rating(), 0)
		assert.Zero(t, m.Reviews())
	})

	t.Run("rejects non positive price and unknown category", func(t *testing.T) {
		d := validDetails()
		d.Price = kernel.ZeroMoney()
		d.Category = "Drinks"

		_, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), d, now)

		require.ErrorIs(t, err, menu.ErrPriceIsInvalid)
		require.ErrorIs(t, err, menu.ErrInvalidCategory)
	})

	t.Run("requires image", func(t *testing.T) {
		d := validDetails()
		d.ImageURL = " "

		_, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), d, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "image")
	})
}

func TestMenuItem_ToggleAvailability(t *testing.T) {
	m, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), validDetails(), now)
	require.NoError(t, err)

	assert.False(t, m.ToggleAvailability(now))
	assert.True(t, m.ToggleAvailability(now))
}

func TestMenuItem_ApplyPatch(t *testing.T) {
	t.Run("updates price without touching other fields", func(t *testing.T) {
		m, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), validDetails(), now)
		require.NoError(t, err)
		price := kernel.MoneyFromInt(250)
		rating := 4.5

		require.NoError(t, m.ApplyPatch(menu.Patch{Price: &price, Rating: &rating}, now))

		assert.True(t, m.Price().IsEqual(price))
		assert.InDelta(t, 4.5, m.Rating(), 0)
		assert.Equal(t, "Paneer Tikka", m.Name())
	})

	t.Run("rejects out of range rating", func(t *testing.T) {
		m, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), validDetails(), now)
		require.NoError(t, err)
		rating := 5.5
		reviews := -1

		err = m.ApplyPatch(menu.Patch{Rating: &rating, Reviews: &reviews}, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.InDelta(t, 0, m.Rating(), 0)
	})

	t.Run("keeps old details when merged details are invalid", func(t *testing.T) {
		m, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), validDetails(), now)
		require.NoError(t, err)
		name := ""
		available := false

		err = m.ApplyPatch(menu.Patch{Name: &name, IsAvailable: &available}, now)

		require.Error(t, err)
		assert.Equal(t, "Paneer Tikka", m.Name())
		assert.True(t, m.IsAvailable())
	})
}

func TestParseCategory(t *testing.T) {
	c, err := menu.ParseCategory("Main Course")
	require.NoError(t, err)
	assert.Equal(t, menu.MainCourse, c)

	_, err = menu.ParseCategory("main course")
	require.ErrorIs(t, err, menu.ErrInvalidCategory)
}
