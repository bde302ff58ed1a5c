package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	patch      menu.Patch

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(menuItemID kernel.UUID, patch menu.Patch) (UpdateMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return UpdateMenuItemCommand{}, err
	}
	return UpdateMenuItemCommand{menuItemID: menuItemID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c UpdateMenuItemCommand) Patch() menu.Patch {
	return c.patch
}
