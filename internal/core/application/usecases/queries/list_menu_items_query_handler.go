package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.Filter()
	tx := h.db.WithContext(ctx).Table("menu_items")

	if !f.IncludeUnavailable {
		tx = tx.Where("is_available = ?", true)
	}
	if f.Name != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+f.Name+"%")
	}
	if c := query.Category(); c != "" {
		tx = tx.Where("category = ?", c.String())
	}
	if f.MinPrice != nil {
		tx = tx.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		tx = tx.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinRating != nil {
		tx = tx.Where("rating >= ?", *f.MinRating)
	}
	if f.Vegan != nil {
		tx = tx.Where("is_vegan = ?", *f.Vegan)
	}
	if f.Vegetarian != nil {
		tx = tx.Where("is_vegetarian = ?", *f.Vegetarian)
	}

	switch f.Sort {
	case SortPopular:
		tx = tx.Order("rating DESC, reviews DESC, id")
	case SortByPrice:
		tx = tx.Order("price, id")
	case SortNewest:
		tx = tx.Order("created_at DESC, id")
	}
	if f.Limit > 0 {
		tx = tx.Limit(f.Limit)
	}

	var rows []menuItemRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]MenuItemView, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.view())
	}
	return items, nil
}

// Get returns one catalog item whether or not it is currently available.
func (h ListMenuItemsQueryHandler) Get(ctx context.Context, id kernel.UUID) (MenuItemView, error) {
	if err := id.Validate(); err != nil {
		return MenuItemView{}, err
	}

	var row menuItemRow
	err := h.db.WithContext(ctx).Table("menu_items").Where("id = ?", id.Bytes()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return MenuItemView{}, errs.NewObjectNotFoundError("menuItem", id)
	}
	if err != nil {
		return MenuItemView{}, err
	}
	return row.view(), nil
}
