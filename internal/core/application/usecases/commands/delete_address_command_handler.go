package commands

import (
	"context"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/services"
)

// DeleteAddressCommandHandler removes an address. The last address of a user
// cannot be removed. A removed default is replaced by the oldest remaining address.
type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	policy     services.DefaultAddressPolicy
}

func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewDefaultAddressPolicy(),
	}
}

func (h DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
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

	addresses, err := addressRepo.ListByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if len(addresses) <= 1 {
		return fmt.Errorf("%w: cannot delete the only address", address.ErrLastAddress)
	}

	if err = addressRepo.Delete(ctx, a.ID()); err != nil {
		return err
	}

	if a.IsDefault() {
		if replacement := h.policy.PickReplacementDefault(addresses, a.ID()); replacement != nil {
			replacement.MarkDefault(time.Now().UTC())
			if err = addressRepo.Update(ctx, replacement); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}
