package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrToggleMenuItemCommandIsNotConstructed = errors.New(
	"ToggleMenuItemCommand must be created via NewToggleMenuItemCommand constructor",
)

// ToggleMenuItemCommand flips the availability of a menu item.
type ToggleMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleMenuItemCommand(menuItemID kernel.UUID) (ToggleMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return ToggleMenuItemCommand{}, err
	}
	return ToggleMenuItemCommand{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrToggleMenuItemCommandIsNotConstructed)
}

func (c ToggleMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}
