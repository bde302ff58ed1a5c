package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler requires the admin to have a saved address,
// which serves as the kitchen location.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	kitchens, err := uow.AddressRepository().ListByUser(ctx, cmd.AdminID())
	if err != nil {
		return err
	}
	if len(kitchens) == 0 {
		return menu.ErrKitchenAddressRequired
	}

	item, err := menu.NewMenuItem(cmd.MenuItemID(), cmd.AdminID(), cmd.Details(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
