package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ErrDuplicateOrder is returned when the user already has an undelivered order
// sharing a menu item with the new one.
var ErrDuplicateOrder = errs.NewConflictError("items", "you already have an active order with one of these items")

// PlaceOrderCommandHandler places orders. The total is always computed from
// current catalog prices; nothing is stored when any step fails.
//
// Placement steps:
//  1. the command rejects an empty item list
//  2. the delivery address is the requested one or the user's default/oldest one
//  3. an active order sharing a menu item is a conflict
//  4. every item must resolve in the catalog
//  5. the order is stored as pending and an event is published after commit
type PlaceOrderCommandHandler struct {
	uowFactory    UoWFactory
	publisher     ports.OrderEventPublisher
	logger        *slog.Logger
	pricing       services.PricingCalculator
	addressPolicy services.DefaultAddressPolicy
}

func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:    uowFactory,
		publisher:     publisher,
		logger:        nopLogger(logger),
		pricing:       services.NewPricingCalculator(),
		addressPolicy: services.NewDefaultAddressPolicy(),
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	deliveryAddress, err := h.resolveDeliveryAddress(ctx, uow.AddressRepository(), cmd)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	duplicate, err := orderRepo.HasActiveOrderWithAnyItem(ctx, cmd.UserID(), cmd.MenuItemIDs())
	if err != nil {
		return err
	}
	if duplicate {
		return ErrDuplicateOrder
	}

	catalog, err := uow.MenuItemRepository().GetMany(ctx, cmd.MenuItemIDs())
	if err != nil {
		return err
	}

	total, err := h.pricing.Calculate(cmd.Items(), catalog)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		deliveryAddress.ID(),
		cmd.Items(),
		total,
		cmd.PaymentMethod(),
		now,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishCommitted(ctx, h.logger, h.publisher, ports.NewOrderChangedEvent(placed, ports.OrderPlaced, now))
	return nil
}

func (h PlaceOrderCommandHandler) resolveDeliveryAddress(
	ctx context.Context,
	repo ports.AddressRepository,
	cmd PlaceOrderCommand,
) (*address.Address, error) {
	if id := cmd.AddressID(); id != nil {
		a, err := repo.Get(ctx, *id)
		if err != nil {
			return nil, err
		}
		if err = a.EnsureOwnedBy(cmd.UserID()); err != nil {
			return nil, err
		}
		return a, nil
	}

	addresses, err := repo.ListByUser(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	chosen := h.addressPolicy.PickDeliveryAddress(addresses)
	if chosen == nil {
		return nil, address.ErrNoAddress
	}
	return chosen, nil
}
