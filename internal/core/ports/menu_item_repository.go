package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for catalog items.
type MenuItemRepository interface {
	Add(ctx context.Context, aggregate *menu.MenuItem) error
	Update(ctx context.Context, aggregate *menu.MenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetMany returns the items that exist among ids. Missing ids are silently skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
