package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AddressRepository defines the persistence contract for address aggregates.
type AddressRepository interface {
	Add(ctx context.Context, aggregate *address.Address) error
	Update(ctx context.Context, aggregate *address.Address) error
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)

	// ListByUser returns the user's addresses, oldest first.
	ListByUser(ctx context.Context, userID kernel.UUID) ([]*address.Address, error)

	// ClearDefault unsets the default flag on every address of the user.
	ClearDefault(ctx context.Context, userID kernel.UUID) error

	Delete(ctx context.Context, id kernel.UUID) error
}
