package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"
)

// DeleteOrderCommandHandler removes cancelled orders. Customers may only delete
// their own; admins may delete any. Deletions are published as OrderDeleted events.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     nopLogger(logger),
	}
}

// Handle deletes the order if it is cancelled. Other statuses fail with order.ErrNotDeletable.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cmd.IsAdmin() {
		if err = o.EnsureOwnedBy(cmd.ActorID()); err != nil {
			return err
		}
	}

	if err = o.EnsureDeletable(); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishCommitted(ctx, h.logger, h.publisher, ports.NewOrderChangedEvent(o, ports.OrderDeleted, time.Now().UTC()))
	return nil
}
