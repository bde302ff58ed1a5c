package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler removes a dish from the catalog. Orders that
// reference it keep their lines and read the item back as missing.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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

	menuRepo := uow.MenuItemRepository()
	if _, err := menuRepo.Get(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	if err := menuRepo.Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
