package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateAddressCommandIsNotConstructed = errors.New(
	"CreateAddressCommand must be created via NewCreateAddressCommand constructor",
)

// CreateAddressCommand saves a delivery address for a user. Field rules live in the address aggregate.
type CreateAddressCommand struct { //nolint:recvcheck //using for validation
	addressID kernel.UUID
	userID    kernel.UUID
	details   address.Details
	isDefault bool

	guard guard.ConstructorGuard
}

func NewCreateAddressCommand(
	addressID, userID kernel.UUID,
	details address.Details,
	isDefault bool,
) (CreateAddressCommand, error) {
	if err := errors.Join(addressID.Validate(), userID.Validate()); err != nil {
		return CreateAddressCommand{}, err
	}
	return CreateAddressCommand{
		addressID: addressID,
		userID:    userID,
		details:   details,
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAddressCommand) Validate() error {
	return c.guard.Validate(ErrCreateAddressCommandIsNotConstructed)
}

func (c CreateAddressCommand) AddressID() kernel.UUID {
	return c.addressID
}

func (c CreateAddressCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateAddressCommand) Details() address.Details {
	return c.details
}

func (c CreateAddressCommand) IsDefault() bool {
	return c.isDefault
}
