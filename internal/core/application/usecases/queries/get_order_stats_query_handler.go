package queries

import (
	"context"
	"slices"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle returns statuses in lifecycle order (pending first, cancelled last).
// Statuses without orders are left out.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	all, err := h.statsByStatus(ctx, func(tx *gorm.DB) *gorm.DB { return tx })
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	recent, err := h.statsByStatus(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("created_at >= ?", query.Since())
	})
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return GetOrderStatsQueryResponse{Stats: all, LastXDaysStats: recent}, nil
}

func (h GetOrderStatsQueryHandler) statsByStatus(
	ctx context.Context,
	scope func(*gorm.DB) *gorm.DB,
) ([]StatusStat, error) {
	stats := make([]StatusStat, 0)
	err := scope(h.db.WithContext(ctx).Table("orders")).
		Select("status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS total_price").
		Group("status").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	slices.SortFunc(stats, func(a, b StatusStat) int {
		return statusRank(a.Status) - statusRank(b.Status)
	})
	return stats, nil
}

func statusRank(s string) int {
	for i, st := range order.Statuses() {
		if st.String() == s {
			return i
		}
	}
	return len(order.Statuses())
}
