package queries

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle returns growth series sorted by month. The user series always contains
// the current month, with a zero count when nobody registered yet.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var resp GetDashboardStatsQueryResponse
	var err error

	if resp.UserGrowth, err = h.monthly(ctx, "users"); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	if resp.OrderGrowth, err = h.monthly(ctx, "orders"); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	if resp.MenuGrowth, err = h.monthly(ctx, "menu_items"); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	month := query.CurrentMonth()
	year := strconv.Itoa(query.CurrentYear())

	if !slices.ContainsFunc(resp.UserGrowth, func(m MonthCount) bool { return m.Month == month }) {
		resp.UserGrowth = append(resp.UserGrowth, MonthCount{Month: month})
		slices.SortFunc(resp.UserGrowth, func(a, b MonthCount) int { return strings.Compare(a.Month, b.Month) })
	}

	resp.Users = total(resp.UserGrowth, "")
	resp.Orders = total(resp.OrderGrowth, "")
	resp.Menus = total(resp.MenuGrowth, "")

	resp.CurrentMonth = CurrentMonthUsers{Month: month, Users: total(resp.UserGrowth, month)}
	resp.CurrentYear = CurrentYearUsers{Year: query.CurrentYear(), Users: total(resp.UserGrowth, year)}
	resp.CurrentMonthOrders = total(resp.OrderGrowth, month)
	resp.CurrentYearOrders = total(resp.OrderGrowth, year)
	resp.CurrentMonthMenus = total(resp.MenuGrowth, month)
	resp.CurrentYearMenus = total(resp.MenuGrowth, year)

	return resp, nil
}

func (h GetDashboardStatsQueryHandler) monthly(ctx context.Context, table string) ([]MonthCount, error) {
	month := monthExpr(h.db)
	series := make([]MonthCount, 0)
	err := h.db.WithContext(ctx).
		Table(table).
		Select(month + " AS month, COUNT(*) AS count").
		Group(month).
		Order("month").
		Scan(&series).Error
	if err != nil {
		return nil, err
	}
	return series, nil
}

// monthExpr formats created_at as YYYY-MM in the connected database's dialect.
// sqlite keeps timestamps as UTC text that starts with the date.
func monthExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "substr(created_at, 1, 7)"
	}
	return "to_char(created_at, 'YYYY-MM')"
}

// total sums the counts of months starting with prefix; an empty prefix sums everything.
func total(series []MonthCount, prefix string) int64 {
	var n int64
	for _, m := range series {
		if strings.HasPrefix(m.Month, prefix) {
			n += m.Count
		}
	}
	return n
}
