package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"
)

// UpdateOrderStatusCommandHandler is the admin override for an order's status.
// Unlike cancellation it refunds nothing; each change is published as an
// OrderStatusChanged event after commit.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     nopLogger(logger),
	}
}

// Handle forces the requested status, bypassing the forward-only path.
// Delivered and cancelled stamp their timestamps.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	now := time.Now().UTC()
	if err = o.ForceStatus(cmd.Status(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order status forced", "order_id", o.ID().String(), "status", o.Status().String())
	publishCommitted(ctx, h.logger, h.publisher, ports.NewOrderChangedEvent(o, ports.OrderStatusChanged, now))
	return nil
}
