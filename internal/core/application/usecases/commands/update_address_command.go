package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateAddressCommandIsNotConstructed = errors.New(
	"UpdateAddressCommand must be created via NewUpdateAddressCommand constructor",
)

type UpdateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    kernel.UUID
	patch     address.Patch

	guard guard.ConstructorGuard
}

func NewUpdateAddressCommand(addressID, userID kernel.UUID, patch address.Patch) (UpdateAddressCommand, error) {
	if err := errors.Join(addressID.Validate(), userID.Validate()); err != nil {
		return UpdateAddressCommand{}, err
	}
	return UpdateAddressCommand{
		addressID: addressID,
		userID:    userID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressCommandIsNotConstructed)
}

func (c UpdateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c UpdateAddressCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateAddressCommand) Patch() address.Patch {
	return c.patch
}
