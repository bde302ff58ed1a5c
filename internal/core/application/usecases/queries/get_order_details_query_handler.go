package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	orderID := query.OrderID().Bytes()
	orders, err := loadOrders(ctx, h.db, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", orderID)
	})
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if len(orders) == 0 {
		return GetOrderDetailsQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	o := orders[0]
	if !query.AsAdmin() && o.UserID != query.CallerID().Bytes() {
		return GetOrderDetailsQueryResponse{}, order.ErrNotOrderOwner
	}

	resp := GetOrderDetailsQueryResponse{OrderView: o}

	var customer CustomerView
	err = h.db.WithContext(ctx).
		Table("users").
		Select("name, email, phone_number").
		Where("id = ?", o.UserID).
		Take(&customer).Error
	switch {
	case err == nil:
		resp.Customer = &customer
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return GetOrderDetailsQueryResponse{}, err
	}

	var addr addressRow
	err = h.db.WithContext(ctx).Table("addresses").Where("id = ?", o.DeliveryAddressID).Take(&addr).Error
	switch {
	case err == nil:
		view := addr.view()
		resp.DeliveryAddress = &view
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return GetOrderDetailsQueryResponse{}, err
	}

	return resp, nil
}
