package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/services"
)

// CreateAddressCommandHandler stores a new address. The first address of a user
// is always the default. When the new address becomes the default, the old
// flags are cleared before it is written, so a failure in between leaves no
// default rather than two.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
	policy     services.DefaultAddressPolicy
}

func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewDefaultAddressPolicy(),
	}
}

func (h CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) error {
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
	existing, err := addressRepo.ListByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	for _, a := range existing {
		if a.IsSameLocation(cmd.Details()) {
			return address.ErrDuplicateAddress
		}
	}

	isDefault := h.policy.ShouldBeDefault(cmd.IsDefault(), len(existing))
	created, err := address.NewAddress(cmd.AddressID(), cmd.UserID(), cmd.Details(), isDefault, time.Now().UTC())
	if err != nil {
		return err
	}

	if isDefault && len(existing) > 0 {
		if err = addressRepo.ClearDefault(ctx, cmd.UserID()); err != nil {
			return err
		}
	}

	if err = addressRepo.Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
