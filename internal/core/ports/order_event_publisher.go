package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderChangedEvent is the integration event emitted after an order mutation commits.
type OrderChangedEvent struct {
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	Status     string    `json:"status"`
	TotalPrice string    `json:"totalPrice"`
	Change     string    `json:"change"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Change kinds carried by OrderChangedEvent.
const (
	OrderPlaced        = "placed"
	OrderCancelled     = "cancelled"
	OrderStatusChanged = "status_changed"
	OrderDeleted       = "deleted"
)

// NewOrderChangedEvent snapshots o for publishing.
func NewOrderChangedEvent(o *order.Order, change string, at time.Time) OrderChangedEvent {
	return OrderChangedEvent{
		OrderID:    o.ID().String(),
		UserID:     o.UserID().String(),
		Status:     o.Status().String(),
		TotalPrice: o.TotalPrice().String(),
		Change:     change,
		OccurredAt: at,
	}
}

// OrderEventPublisher delivers order events to other services.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...OrderChangedEvent) error
}

