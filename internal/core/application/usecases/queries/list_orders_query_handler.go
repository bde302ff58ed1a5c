package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadOrders(ctx, h.db, func(tx *gorm.DB) *gorm.DB {
		if userID := query.UserID(); userID != nil {
			tx = tx.Where("user_id = ?", userID.Bytes())
		}
		if day := query.Day(); day != nil {
			tx = tx.Where("created_at >= ? AND created_at < ?", *day, day.Add(24*time.Hour))
		}
		return tx.Order("created_at DESC, id")
	})
}
