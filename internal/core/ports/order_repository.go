package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, wallet and timestamp changes. Lines are immutable and not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its lines, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes the order and its lines.
	Delete(ctx context.Context, id kernel.UUID) error

	// HasActiveOrderWithAnyItem reports whether the user has a non-terminal order
	// (neither delivered nor cancelled) containing at least one of menuItemIDs.
	HasActiveOrderWithAnyItem(ctx context.Context, userID kernel.UUID, menuItemIDs []kernel.UUID) (bool, error)

	// ListCancelledBefore returns up to limit cancelled orders whose cancellation is older than before.
	ListCancelledBefore(ctx context.Context, before time.Time, limit int) ([]*order.Order, error)
}
