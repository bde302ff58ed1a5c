package services

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// ErrInvalidItem is returned when an order line references a menu item that is not in the catalog.
var ErrInvalidItem = errs.NewObjectNotFoundError("menuItem", "invalid menu item in your order")

// PricingCalculator prices order lines against the current catalog.
//
// Business rules:
//   - every line must resolve to a catalog item, otherwise the whole calculation fails
//   - total = Σ(price × quantity)
//   - availability is not checked; an unavailable item is still priced
//
// Example:
//
//	catalog, _ := menuRepo.GetMany(ctx, ids)
//	total, err := services.NewPricingCalculator().Calculate(items, catalog)
//	if errors.Is(err, services.ErrInvalidItem) {
//	    // reject the order, nothing was persisted
//	}
type PricingCalculator struct{}

func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate returns the order total. catalog must contain every referenced item;
// items missing from it yield ErrInvalidItem.
func (PricingCalculator) Calculate(items []order.Item, catalog []*menu.MenuItem) (kernel.Money, error) {
	if len(items) == 0 {
		return kernel.Money{}, order.ErrEmptyOrder
	}

	prices := make(map[kernel.UUID]kernel.Money, len(catalog))
	for _, m := range catalog {
		if m.Validate() != nil {
			continue
		}
		prices[m.ID()] = m.Price()
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return kernel.Money{}, err
		}
		price, ok := prices[item.MenuItemID()]
		if !ok {
			return kernel.Money{}, fmt.Errorf("%w: %s", ErrInvalidItem, item.MenuItemID())
		}
		total = total.Add(price.Times(item.Quantity()))
	}
	return total, nil
}
