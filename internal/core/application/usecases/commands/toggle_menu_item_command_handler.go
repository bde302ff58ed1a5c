package commands

import (
	"context"
	"time"
)

// ToggleMenuItemCommandHandler flips a dish between available and unavailable.
type ToggleMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewToggleMenuItemCommandHandler(uowFactory MenuUoWFactory) ToggleMenuItemCommandHandler {
	return ToggleMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle returns the new availability.
func (h ToggleMenuItemCommandHandler) Handle(ctx context.Context, cmd ToggleMenuItemCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return false, err
	}

	available := item.ToggleAvailability(time.Now().UTC())
	if err = menuRepo.Update(ctx, item); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return available, nil
}
