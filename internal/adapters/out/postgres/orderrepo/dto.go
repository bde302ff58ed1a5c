// Package orderrepo persists order aggregates. An order is stored as one row in
// orders plus one row per line in order_items; lines are written once at
// placement and never rewritten.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders table.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryAddressID   uuid.UUID       `gorm:"type:uuid;not null"`
	TotalPrice          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod       string          `gorm:"type:varchar(16);not null"`
	Status              string          `gorm:"type:varchar(32);not null;index"`
	WalletUsed          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EstimatedDeliveryAt time.Time       `gorm:"not null"`
	CreatedAt           time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt           time.Time       `gorm:"not null;autoUpdateTime:false"`
	CancelledAt         *time.Time      `gorm:"index"`
	DeliveredAt         *time.Time
	Items               []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order line. Position keeps the line order of the request.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	MenuItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			Position:   i,
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
		})
	}

	return OrderDTO{
		ID:                  orderID,
		UserID:              o.UserID().Bytes(),
		DeliveryAddressID:   o.DeliveryAddressID().Bytes(),
		TotalPrice:          o.TotalPrice().Decimal(),
		PaymentMethod:       o.PaymentMethod().String(),
		Status:              o.Status().String(),
		WalletUsed:          o.WalletUsed().Decimal(),
		EstimatedDeliveryAt: o.EstimatedDeliveryAt(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		CancelledAt:         o.CancelledAt(),
		DeliveredAt:         o.DeliveredAt(),
		Items:               items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromGoogle(dto.UserID)
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromGoogle(dto.DeliveryAddressID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, line := range dto.Items {
		menuItemID, idErr := kernel.UUIDFromGoogle(line.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewItem(menuItemID, line.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}
	walletUsed, err := kernel.NewMoney(dto.WalletUsed)
	if err != nil {
		return nil, err
	}
	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, userID, addressID, items, total, method, status, walletUsed,
		dto.EstimatedDeliveryAt.UTC(), dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(),
		utcPtr(dto.CancelledAt), utcPtr(dto.DeliveredAt),
	), nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
