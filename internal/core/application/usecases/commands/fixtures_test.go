package commands_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

var fixtureSeq atomic.Int64

func seedUser(t *testing.T, s *memStore, code user.ReferralCode) *user.User {
	t.Helper()
	n := fixtureSeq.Add(1)
	u, err := user.NewUser(
		kernel.NewUUID(),
		"Test User",
		fmt.Sprintf("user%d@example.com", n),
		fmt.Sprintf("98765%05d", n),
		"$2a$04$notarealhashbutnonempty",
		code,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	s.seedUser(u)
	return u
}

func seedAddress(t *testing.T, s *memStore, userID kernel.UUID, line string, isDefault bool, createdAt time.Time) *address.Address {
	t.Helper()
	geo, err := kernel.NewGeoPoint(12.97, 77.59)
	require.NoError(t, err)
	a, err := address.NewAddress(kernel.NewUUID(), userID, address.Details{
		AddressLine: line,
		Landmarks:   []string{"Near the park"},
		City:        "Bengaluru",
		State:       "Karnataka",
		PinCode:     "560001",
		Geo:         geo,
	}, isDefault, createdAt)
	require.NoError(t, err)
	s.seedAddress(a)
	return a
}

func seedMenuItem(t *testing.T, s *memStore, price int64) *menu.MenuItem {
	t.Helper()
	m, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), menu.Details{
		Name:        fmt.Sprintf("Dish %d", fixtureSeq.Add(1)),
		Description: "Tasty",
		Price:       kernel.MoneyFromInt(price),
		Category:    menu.MainCourse,
		ImageURL:    "https://img.example.com/dish.png",
	}, time.Now().UTC())
	require.NoError(t, err)
	s.seedMenuItem(m)
	return m
}

func line(t *testing.T, m *menu.MenuItem, qty int) order.Item {
	t.Helper()
	item, err := order.NewItem(m.ID(), qty)
	require.NoError(t, err)
	return item
}

// seedOrder stores an order in the given status. A non-zero walletUsed is only
// reachable through RestoreOrder, as placement never debits the wallet.
func seedOrder(
	t *testing.T,
	s *memStore,
	userID, addressID kernel.UUID,
	status order.Status,
	walletUsed kernel.Money,
	items ...order.Item,
) *order.Order {
	t.Helper()
	now := time.Now().UTC().Add(-time.Hour)
	o := order.RestoreOrder(
		kernel.NewUUID(), userID, addressID, items, kernel.MoneyFromInt(100), order.CashOnDelivery,
		status, walletUsed, now.Add(order.EstimatedDeliveryWindow), now, now, nil, nil,
	)
	s.seedOrder(o)
	return o
}

func menuPatchWithPrice(price kernel.Money) menu.Patch {
	return menu.Patch{Price: &price}
}
