package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultStatsWindowDays is used when the caller does not pick a window.
const DefaultStatsWindowDays = 3

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// GetOrderStatsQuery aggregates order count and revenue per status, over all time
// and over the last N days.
type GetOrderStatsQuery struct { //nolint:recvcheck //using for validation
	lastXDays int
	now       time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery builds the query; lastXDays == 0 selects DefaultStatsWindowDays.
func NewGetOrderStatsQuery(lastXDays int, now time.Time) (GetOrderStatsQuery, error) {
	if lastXDays < 0 {
		return GetOrderStatsQuery{}, errs.NewValueIsOutOfRangeError("lastXDays", lastXDays, 0, "unbounded")
	}
	if lastXDays == 0 {
		lastXDays = DefaultStatsWindowDays
	}
	return GetOrderStatsQuery{
		lastXDays: lastXDays,
		now:       now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

func (q GetOrderStatsQuery) LastXDays() int { return q.lastXDays }

// Since is the start of the recent window.
func (q GetOrderStatsQuery) Since() time.Time {
	return q.now.Add(-time.Duration(q.lastXDays) * 24 * time.Hour)
}

type StatusStat struct {
	Status     string          `json:"status"`
	Count      int64           `json:"count"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type GetOrderStatsQueryResponse struct {
	Stats          []StatusStat `json:"stats"`
	LastXDaysStats []StatusStat `json:"lastXDaysStats"`
}
