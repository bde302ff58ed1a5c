package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"
)

// ReorderCommandHandler copies lines, total, delivery address and payment method
// of an order the caller owns into a new pending order. The duplicate-order
// check of placement applies here as well.
type ReorderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewReorderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ReorderCommandHandler {
	return ReorderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     nopLogger(logger),
	}
}

func (h ReorderCommandHandler) Handle(ctx context.Context, cmd ReorderCommand) error {
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

	orderRepo := uow.OrderRepository()
	source, err := orderRepo.Get(ctx, cmd.SourceOrderID())
	if err != nil {
		return err
	}

	if err = source.EnsureOwnedBy(cmd.UserID()); err != nil {
		return err
	}

	duplicate, err := orderRepo.HasActiveOrderWithAnyItem(ctx, source.UserID(), source.MenuItemIDs())
	if err != nil {
		return err
	}
	if duplicate {
		return ErrDuplicateOrder
	}

	now := time.Now().UTC()
	copied, err := source.Reorder(cmd.NewOrderID(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, copied); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishCommitted(ctx, h.logger, h.publisher, ports.NewOrderChangedEvent(copied, ports.OrderPlaced, now))
	return nil
}
