package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds a dish to the catalog on behalf of an admin.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	adminID    kernel.UUID
	details    menu.Details

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(menuItemID, adminID kernel.UUID, details menu.Details) (CreateMenuItemCommand, error) {
	if err := errors.Join(menuItemID.Validate(), adminID.Validate()); err != nil {
		return CreateMenuItemCommand{}, err
	}
	return CreateMenuItemCommand{
		menuItemID: menuItemID,
		adminID:    adminID,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c CreateMenuItemCommand) AdminID() kernel.UUID {
	return c.adminID
}

func (c CreateMenuItemCommand) Details() menu.Details {
	return c.details
}
