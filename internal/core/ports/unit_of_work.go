package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it
// use the transaction opened by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	// Rollback is a no-op after a successful Commit, so it can always be deferred.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	UserRepository() UserRepository
	AddressRepository() AddressRepository
	MenuItemRepository() MenuItemRepository
}
