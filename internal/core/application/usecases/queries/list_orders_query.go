package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListMyOrdersQuery or NewListAllOrdersQuery constructor",
)

// ListOrdersQuery lists orders newest first, either the orders of one user or,
// for admins, every order optionally restricted to one calendar day (UTC).
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	userID *kernel.UUID
	day    *time.Time

	guard guard.ConstructorGuard
}

func NewListMyOrdersQuery(userID kernel.UUID) (ListOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{userID: &userID, guard: guard.NewConstructorGuard()}, nil
}

// NewListAllOrdersQuery lists all orders. A non-nil day keeps only orders
// created on that date.
func NewListAllOrdersQuery(day *time.Time) ListOrdersQuery {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if day != nil {
		d := day.UTC().Truncate(24 * time.Hour)
		q.day = &d
	}
	return q
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) UserID() *kernel.UUID { return q.userID }
func (q ListOrdersQuery) Day() *time.Time      { return q.day }
