package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteAddressCommandIsNotConstructed = errors.New(
	"DeleteAddressCommand must be created via NewDeleteAddressCommand constructor",
)

type DeleteAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteAddressCommand(addressID, userID kernel.UUID) (DeleteAddressCommand, error) {
	if err := errors.Join(addressID.Validate(), userID.Validate()); err != nil {
		return DeleteAddressCommand{}, err
	}
	return DeleteAddressCommand{addressID: addressID, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteAddressCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAddressCommandIsNotConstructed)
}

func (c DeleteAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c DeleteAddressCommand) UserID() kernel.UUID {
	return c.userID
}
