package orderrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the mutable columns. Lines are immutable and left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":       dto.Status,
		"wallet_used":  dto.WalletUsed,
		"updated_at":   dto.UpdatedAt,
		"cancelled_at": dto.CancelledAt,
		"delivered_at": dto.DeliveredAt,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the lines and then the order row.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// HasActiveOrderWithAnyItem reports whether a non-terminal order of the user
// contains one of menuItemIDs.
func (r *GormOrderRepository) HasActiveOrderWithAnyItem(
	ctx context.Context,
	userID kernel.UUID,
	menuItemIDs []kernel.UUID,
) (bool, error) {
	if len(menuItemIDs) == 0 {
		return false, nil
	}

	ids := make([]uuid.UUID, 0, len(menuItemIDs))
	for _, id := range menuItemIDs {
		ids = append(ids, id.Bytes())
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderItemDTO{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", userID.Bytes()).
		Where("orders.status NOT IN ?", []string{order.Delivered.String(), order.Cancelled.String()}).
		Where("order_items.menu_item_id IN ?", ids).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListCancelledBefore returns the oldest cancellations first.
func (r *GormOrderRepository) ListCancelledBefore(ctx context.Context, before time.Time, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withItems(ctx).
		Where("status = ? AND cancelled_at < ?", order.Cancelled.String(), before).
		Order("cancelled_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
