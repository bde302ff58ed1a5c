package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatusQueryHandler(db *gorm.DB) GetOrderStatusQueryHandler {
	return GetOrderStatusQueryHandler{db: db}
}

func (h GetOrderStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusQuery,
) (GetOrderStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	var row struct {
		UserID uuid.UUID
		Status string
	}
	err := h.db.WithContext(ctx).
		Table("orders").
		Select("user_id, status").
		Where("id = ?", query.OrderID().Bytes()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetOrderStatusQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return GetOrderStatusQueryResponse{}, err
	}

	if row.UserID != query.UserID().Bytes() {
		return GetOrderStatusQueryResponse{}, order.ErrNotOrderOwner
	}

	return GetOrderStatusQueryResponse{
		Status:  row.Status,
		Message: "Your order is currently " + row.Status,
	}, nil
}
