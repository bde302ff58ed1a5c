// Package commands contains the write use cases: order placement and lifecycle,
// registration and the referral ledger, sign-in, profile, address and catalog changes.
// Every handler validates its command, runs inside one unit of work and commits once.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of work views. Each handler depends on the narrowest one it needs;
// the gorm unit of work satisfies all of them.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW is used by maintenance work that only touches orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UserUoW covers account changes. Addresses are included because a deleted
	// profile takes its addresses with it.
	UserUoW interface {
		TxManager
		UserRepoFactory
		AddressRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// MenuUoW needs addresses to check the kitchen location of the creating admin.
	MenuUoW interface {
		TxManager
		MenuItemRepoFactory
		AddressRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// UoW spans every aggregate. The order lifecycle reads addresses and the
	// catalog and credits wallets in the same transaction.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//	// ... uow.OrderRepository(), uow.UserRepository()
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		AddressRepoFactory
		MenuItemRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
