package commands

import (
	"context"
	"time"
)

// SetDefaultAddressCommandHandler clears every default flag of the user, then sets one.
type SetDefaultAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewSetDefaultAddressCommandHandler(uowFactory AddressUoWFactory) SetDefaultAddressCommandHandler {
	return SetDefaultAddressCommandHandler{uowFactory: uowFactory}
}

func (h SetDefaultAddressCommandHandler) Handle(ctx context.Context, cmd SetDefaultAddressCommand) error {
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

	addressRepo := uow.AddressRepository()
	a, err := addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}
	if err = a.EnsureOwnedBy(cmd.UserID()); err != nil {
		return err
	}

	if err = addressRepo.ClearDefault(ctx, cmd.UserID()); err != nil {
		return err
	}

	a.MarkDefault(time.Now().UTC())
	if err = addressRepo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
