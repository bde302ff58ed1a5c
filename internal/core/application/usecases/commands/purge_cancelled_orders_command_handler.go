package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"
)

// PurgeCancelledOrdersCommandHandler deletes one batch of old cancelled orders.
// The same deletability rule as the user facing delete applies to every order.
type PurgeCancelledOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewPurgeCancelledOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) PurgeCancelledOrdersCommandHandler {
	return PurgeCancelledOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     nopLogger(logger),
	}
}

// Handle returns the number of deleted orders.
func (h PurgeCancelledOrdersCommandHandler) Handle(ctx context.Context, cmd PurgeCancelledOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	expired, err := orderRepo.ListCancelledBefore(ctx, cmd.CancelledBefore(), cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	events := make([]ports.OrderChangedEvent, 0, len(expired))
	for _, o := range expired {
		if err = o.EnsureDeletable(); err != nil {
			return 0, err
		}
		if err = orderRepo.Delete(ctx, o.ID()); err != nil {
			return 0, err
		}
		events = append(events, ports.NewOrderChangedEvent(o, ports.OrderDeleted, now))
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	publishCommitted(ctx, h.logger, h.publisher, events...)
	return len(expired), nil
}
