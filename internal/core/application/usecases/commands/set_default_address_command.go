package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetDefaultAddressCommandIsNotConstructed = errors.New(
	"SetDefaultAddressCommand must be created via NewSetDefaultAddressCommand constructor",
)

type SetDefaultAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewSetDefaultAddressCommand(addressID, userID kernel.UUID) (SetDefaultAddressCommand, error) {
	if err := errors.Join(addressID.Validate(), userID.Validate()); err != nil {
		return SetDefaultAddressCommand{}, err
	}
	return SetDefaultAddressCommand{addressID: addressID, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c SetDefaultAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetDefaultAddressCommandIsNotConstructed)
}

func (c SetDefaultAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c SetDefaultAddressCommand) UserID() kernel.UUID {
	return c.userID
}
