package commands_test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// memStore is an in-memory stand-in for the database. Aggregates are stored by
// value so a rolled back unit of work leaves no trace.
type memStore struct {
	mu        sync.Mutex
	orders    map[kernel.UUID]order.Order
	users     map[kernel.UUID]user.User
	addresses map[kernel.UUID]address.Address
	menu      map[kernel.UUID]menu.MenuItem
	commits   int
}

func newMemStore() *memStore {
	return &memStore{
		orders:    map[kernel.UUID]order.Order{},
		users:     map[kernel.UUID]user.User{},
		addresses: map[kernel.UUID]address.Address{},
		menu:      map[kernel.UUID]menu.MenuItem{},
	}
}

func (s *memStore) order(id kernel.UUID) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return &o, ok
}

func (s *memStore) user(id kernel.UUID) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return &u, ok
}

func (s *memStore) address(id kernel.UUID) (*address.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.addresses[id]
	return &a, ok
}

func (s *memStore) menuItem(id kernel.UUID) (*menu.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.menu[id]
	return &m, ok
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *memStore) userCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *memStore) seedOrder(o *order.Order) { s.orders[o.ID()] = *o }
func (s *memStore) seedUser(u *user.User) { s.users[u.ID()] = *u }
func (s *memStore) seedAddress(a *address.Address) { s.addresses[a.ID()] = *a }
func (s *memStore) seedMenuItem(m *menu.MenuItem) { s.menu[m.ID()] = *m }

type snapshot struct {
	orders    map[kernel.UUID]order.Order
	users     map[kernel.UUID]user.User
	addresses map[kernel.UUID]address.Address
	menu      map[kernel.UUID]menu.MenuItem
}

// fakeUoW satisfies every unit of work view used by the handlers.
type fakeUoW struct {
	store *memStore
	snap  *snapshot
}

func (u *fakeUoW) Begin(_ context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.snap = &snapshot{
		orders:    maps.Clone(u.store.orders),
		users:     maps.Clone(u.store.users),
		addresses: maps.Clone(u.store.addresses),
		menu:      maps.Clone(u.store.menu),
	}
	return nil
}

func (u *fakeUoW) Commit(_ context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.snap = nil
	u.store.commits++
	return nil
}

func (u *fakeUoW) Rollback(_ context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	if u.snap == nil {
		return nil
	}
	u.store.orders = u.snap.orders
	u.store.users = u.snap.users
	u.store.addresses = u.snap.addresses
	u.store.menu = u.snap.menu
	u.snap = nil
	return nil
}

func (u *fakeUoW) OrderRepository() ports.OrderRepository { return fakeOrderRepo{u.store} }
func (u *fakeUoW) UserRepository() ports.UserRepository { return fakeUserRepo{u.store} }
func (u *fakeUoW) AddressRepository() ports.AddressRepository { return fakeAddressRepo{u.store} }
func (u *fakeUoW) MenuItemRepository() ports.MenuItemRepository { return fakeMenuRepo{u.store} }

type fakeUoWFactory struct{ store *memStore }

func (f fakeUoWFactory) Create() commands.UoW { return &fakeUoW{store: f.store} }

type fakeOrderUoWFactory struct{ store *memStore }

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return &fakeUoW{store: f.store} }

type fakeUserUoWFactory struct{ store *memStore }

func (f fakeUserUoWFactory) Create() commands.UserUoW { return &fakeUoW{store: f.store} }

type fakeAddressUoWFactory struct{ store *memStore }

func (f fakeAddressUoWFactory) Create() commands.AddressUoW { return &fakeUoW{store: f.store} }

type fakeMenuUoWFactory struct{ store *memStore }

func (f fakeMenuUoWFactory) Create() commands.MenuUoW { return &fakeUoW{store: f.store} }

type fakeOrderRepo struct{ s *memStore }

func (r fakeOrderRepo) Add(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders[o.ID()] = *o
	return nil
}

func (r fakeOrderRepo) Update(ctx context.Context, o *order.Order) error {
	return r.Add(ctx, o)
}

func (r fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return &o, nil
}

func (r fakeOrderRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.orders, id)
	return nil
}

func (r fakeOrderRepo) HasActiveOrderWithAnyItem(_ context.Context, userID kernel.UUID, ids []kernel.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orders {
		if !o.IsOwnedBy(userID) || o.Status().IsTerminal() {
			continue
		}
		for _, id := range o.MenuItemIDs() {
			if slices.ContainsFunc(ids, id.IsEqual) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r fakeOrderRepo) ListCancelledBefore(_ context.Context, before time.Time, limit int) ([]*order.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*order.Order
	for _, o := range r.s.orders {
		if o.Status() == order.Cancelled && o.CancelledAt() != nil && o.CancelledAt().Before(before) {
			cp := o
			out = append(out, &cp)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeUserRepo struct{ s *memStore }

func (r fakeUserRepo) checkUnique(u *user.User) error {
	for id, other := range r.s.users {
		if id.IsEqual(u.ID()) {
			continue
		}
		switch {
		case other.Email() == u.Email():
			return errs.NewConflictError("email", "duplicate email")
		case other.PhoneNumber() == u.PhoneNumber():
			return errs.NewConflictError("phoneNumber", "duplicate phone number")
		case other.ReferralCode() == u.ReferralCode():
			return errs.NewConflictError("referralCode", "duplicate referral code")
		}
	}
	return nil
}

func (r fakeUserRepo) Add(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkUnique(u); err != nil {
		return err
	}
	r.s.users[u.ID()] = *u
	return nil
}

func (r fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	return r.Add(ctx, u)
}

func (r fakeUserRepo) Get(_ context.Context, id kernel.UUID) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("user", id.String())
	}
	return &u, nil
}

func (r fakeUserRepo) find(match func(user.User) bool, param string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, errs.NewObjectNotFoundError(param, nil)
}

func (r fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return r.find(func(u user.User) bool { return u.Email() == email }, "email")
}

func (r fakeUserRepo) GetByReferralCode(_ context.Context, code user.ReferralCode) (*user.User, error) {
	return r.find(func(u user.User) bool { return u.ReferralCode() == code }, "referralCode")
}

func (r fakeUserRepo) ExistsByReferralCode(ctx context.Context, code user.ReferralCode) (bool, error) {
	_, err := r.GetByReferralCode(ctx, code)
	return err == nil, nil
}

func (r fakeUserRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

type fakeAddressRepo struct{ s *memStore }

func (r fakeAddressRepo) Add(_ context.Context, a *address.Address) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.addresses[a.ID()] = *a
	return nil
}

func (r fakeAddressRepo) Update(ctx context.Context, a *address.Address) error {
	return r.Add(ctx, a)
}

func (r fakeAddressRepo) Get(_ context.Context, id kernel.UUID) (*address.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.addresses[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("address", id.String())
	}
	return &a, nil
}

func (r fakeAddressRepo) ListByUser(_ context.Context, userID kernel.UUID) ([]*address.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*address.Address
	for _, a := range r.s.addresses {
		if a.IsOwnedBy(userID) {
			cp := a
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *address.Address) int { return a.CreatedAt().Compare(b.CreatedAt()) })
	return out, nil
}

func (r fakeAddressRepo) ClearDefault(_ context.Context, userID kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.addresses {
		if a.IsOwnedBy(userID) && a.IsDefault() {
			a.UnmarkDefault(time.Now())
			r.s.addresses[id] = a
		}
	}
	return nil
}

func (r fakeAddressRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.addresses, id)
	return nil
}

type fakeMenuRepo struct{ s *memStore }

func (r fakeMenuRepo) Add(_ context.Context, m *menu.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.menu[m.ID()] = *m
	return nil
}

func (r fakeMenuRepo) Update(ctx context.Context, m *menu.MenuItem) error {
	return r.Add(ctx, m)
}

func (r fakeMenuRepo) Get(_ context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.menu[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("menuItem", id.String())
	}
	return &m, nil
}

func (r fakeMenuRepo) GetMany(_ context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*menu.MenuItem
	for _, id := range ids {
		if m, ok := r.s.menu[id]; ok {
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r fakeMenuRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.menu, id)
	return nil
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.OrderChangedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...ports.OrderChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

// sequenceCodes hands out the given referral codes in order.
type sequenceCodes struct {
	codes []user.ReferralCode
	next  int
}

func (g *sequenceCodes) Generate() (user.ReferralCode, error) {
	code := g.codes[g.next%len(g.codes)]
	g.next++
	return code, nil
}
