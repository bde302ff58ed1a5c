package order

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// DefaultQuantity is used when a line arrives without a quantity.
const DefaultQuantity = 1

var (
	ErrItemIsNotConstructed = errs.NewValueIsRequiredError("order item must be created via NewItem")
	ErrQuantityIsInvalid    = errs.NewValueIsInvalidError("quantity")
)

// Item is one order line: a menu item reference and how many of it.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	guard      guard.ConstructorGuard
}

// NewItem builds a line for quantity units of a menu item. The quantity must
// be positive; callers substitute DefaultQuantity when none was given.
func NewItem(menuItemID kernel.UUID, quantity int) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, fmt.Errorf("%w: %d is not greater than 0", ErrQuantityIsInvalid, quantity)
	}
	return Item{menuItemID: menuItemID, quantity: quantity, guard: guard.NewConstructorGuard()}, nil
}

// MenuItemID is the catalog entry the line refers to.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i Item) Quantity() int {
	return i.quantity
}

// Validate fails for a zero Item that did not come from NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
