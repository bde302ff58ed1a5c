package queries_test

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/adapters/out/postgres/addressrepo"
	"fooddelivery/internal/adapters/out/postgres/menurepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/sqlitetest"
	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// querySuite gives every test a fresh in-memory database and seeds it through
// the same repositories the commands use.
type querySuite struct {
	suite.Suite
	db *gorm.DB

	users     *userrepo.GormUserRepository
	addresses *addressrepo.GormAddressRepository
	menuItems *menurepo.GormMenuItemRepository
	orders    *orderrepo.GormOrderRepository

	seq int
}

func (s *querySuite) SetupTest() {
	s.db = sqlitetest.Open(s.T())
	s.users = userrepo.NewGormUserRepository(s.db)
	s.addresses = addressrepo.NewGormAddressRepository(s.db)
	s.menuItems = menurepo.NewGormMenuItemRepository(s.db)
	s.orders = orderrepo.NewGormOrderRepository(s.db)
}

func (s *querySuite) seedUser(name string, createdAt time.Time) *user.User {
	s.seq++
	code, err := user.ParseReferralCode(fmt.Sprintf("A%05X", s.seq))
	s.Require().NoError(err)
	u, err := user.NewUser(
		kernel.NewUUID(),
		name,
		fmt.Sprintf("user%d@example.com", s.seq),
		fmt.Sprintf("98765%05d", s.seq),
		"$2a$04$notarealhashbutnonempty",
		code,
		createdAt,
	)
	s.Require().NoError(err)
	s.Require().NoError(s.users.Add(context.Background(), u))
	return u
}

func (s *querySuite) seedAdmin(name string) *user.User {
	u := s.seedUser(name, time.Now().UTC())
	s.Require().NoError(u.ChangeRole(user.RoleAdmin, time.Now().UTC()))
	s.Require().NoError(s.users.Update(context.Background(), u))
	return u
}

func (s *querySuite) seedAddress(userID kernel.UUID, line string, isDefault bool, createdAt time.Time) *address.Address {
	geo, err := kernel.NewGeoPoint(19.07, 72.87)
	s.Require().NoError(err)
	a, err := address.NewAddress(kernel.NewUUID(), userID, address.Details{
		AddressLine: line,
		Landmarks:   []string{"Near Gateway"},
		City:        "Mumbai",
		State:       "Maharashtra",
		PinCode:     "400001",
		Geo:         geo,
	}, isDefault, createdAt)
	s.Require().NoError(err)
	s.Require().NoError(s.addresses.Add(context.Background(), a))
	return a
}

type dish struct {
	name       string
	category   menu.Category
	price      int64
	vegan      bool
	vegetarian bool
	rating     float64
	available  bool
	createdAt  time.Time
}

func (s *querySuite) seedDish(d dish) *menu.MenuItem {
	if d.category == "" {
		d.category = menu.MainCourse
	}
	if d.createdAt.IsZero() {
		d.createdAt = time.Now().UTC()
	}
	m, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), menu.Details{
		Name:         d.name,
		Description:  "Chef's pick",
		Price:        kernel.MoneyFromInt(d.price),
		Category:     d.category,
		ImageURL:     "https://img.example.com/dish.png",
		IsVegetarian: d.vegetarian,
		IsVegan:      d.vegan,
	}, d.createdAt)
	s.Require().NoError(err)

	rating := d.rating
	available := d.available
	s.Require().NoError(m.ApplyPatch(menu.Patch{Rating: &rating, IsAvailable: &available}, d.createdAt))
	s.Require().NoError(s.menuItems.Add(context.Background(), m))
	return m
}

func (s *querySuite) seedOrder(
	userID, addressID kernel.UUID,
	status order.Status,
	createdAt time.Time,
	lines map[*menu.MenuItem]int,
) *order.Order {
	items := make([]order.Item, 0, len(lines))
	total := kernel.ZeroMoney()
	for m, qty := range lines {
		item, err := order.NewItem(m.ID(), qty)
		s.Require().NoError(err)
		items = append(items, item)
		total = total.Add(m.Price().Times(qty))
	}

	o, err := order.NewOrder(kernel.NewUUID(), userID, addressID, items, total, order.CashOnDelivery, createdAt)
	s.Require().NoError(err)
	if status != order.Pending {
		s.Require().NoError(o.ForceStatus(status, createdAt))
	}
	s.Require().NoError(s.orders.Add(context.Background(), o))
	return o
}
