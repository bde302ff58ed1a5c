package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(menuItemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}
