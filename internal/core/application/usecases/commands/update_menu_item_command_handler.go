package commands

import (
	"context"
	"time"
)

// UpdateMenuItemCommandHandler edits catalog fields. Placed orders keep their stored totals.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if err = item.ApplyPatch(cmd.Patch(), time.Now().UTC()); err != nil {
		return err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
