package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListAddressesQueryIsNotConstructed = errors.New(
	"ListAddressesQuery must be created via NewListAddressesQuery or NewGetDefaultAddressQuery constructor",
)

// ListAddressesQuery reads the caller's saved addresses, oldest first.
// Built with NewGetDefaultAddressQuery it is answered by GetDefault instead.
type ListAddressesQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListAddressesQuery(userID kernel.UUID) (ListAddressesQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListAddressesQuery{}, err
	}
	return ListAddressesQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func NewGetDefaultAddressQuery(userID kernel.UUID) (ListAddressesQuery, error) {
	return NewListAddressesQuery(userID)
}

func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

func (q ListAddressesQuery) UserID() kernel.UUID { return q.userID }
