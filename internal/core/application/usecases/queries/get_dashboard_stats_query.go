package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery collects the admin dashboard figures: totals and monthly
// growth of users, orders and menu items, plus the current month and year.
type GetDashboardStatsQuery struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewGetDashboardStatsQuery(now time.Time) GetDashboardStatsQuery {
	return GetDashboardStatsQuery{now: now.UTC(), guard: guard.NewConstructorGuard()}
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// CurrentMonth is formatted YYYY-MM, the same as MonthCount.Month.
func (q GetDashboardStatsQuery) CurrentMonth() string { return q.now.Format("2006-01") }
func (q GetDashboardStatsQuery) CurrentYear() int     { return q.now.Year() }

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type CurrentMonthUsers struct {
	Month string `json:"month"`
	Users int64  `json:"users"`
}

type CurrentYearUsers struct {
	Year  int   `json:"year"`
	Users int64 `json:"users"`
}

type GetDashboardStatsQueryResponse struct {
	Users              int64             `json:"users"`
	Orders             int64             `json:"orders"`
	Menus              int64             `json:"menus"`
	UserGrowth         []MonthCount      `json:"userGrowth"`
	OrderGrowth        []MonthCount      `json:"orderGrowth"`
	MenuGrowth         []MonthCount      `json:"menuGrowth"`
	CurrentMonth       CurrentMonthUsers `json:"currentMonth"`
	CurrentYear        CurrentYearUsers  `json:"currentYear"`
	CurrentMonthOrders int64             `json:"currentMonthOrders"`
	CurrentYearOrders  int64             `json:"currentYearOrders"`
	CurrentMonthMenus  int64             `json:"currentMonthMenus"`
	CurrentYearMenus   int64             `json:"currentYearMenus"`
}
