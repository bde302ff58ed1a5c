package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/address"
)

// UpdateAddressCommandHandler applies partial edits to a saved address.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{uowFactory: uowFactory}
}

// Handle applies the patch to an address the user owns. Moving it onto another
// saved address of the same user is a conflict.
func (h UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
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

	if err = a.ApplyPatch(cmd.Patch(), time.Now().UTC()); err != nil {
		return err
	}

	others, err := addressRepo.ListByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	updated := address.Details{
		AddressLine: a.AddressLine(),
		City:        a.City(),
		State:       a.State(),
		PinCode:     a.PinCode(),
	}
	for _, other := range others {
		if !other.ID().IsEqual(a.ID()) && other.IsSameLocation(updated) {
			return address.ErrDuplicateAddress
		}
	}

	if err = addressRepo.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
