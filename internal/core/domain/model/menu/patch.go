package menu

import "fooddelivery/internal/core/domain/model/kernel"

// Patch lists the editable menu item fields. Nil fields are left untouched.
type Patch struct {
	Name         *string
	Description  *string
	Price        *kernel.Money
	Category     *Category
	ImageURL     *string
	IsVegetarian *bool
	IsVegan      *bool
	Rating       *float64
	Reviews      *int
	IsAvailable  *bool
}
