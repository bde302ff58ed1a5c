package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/ports"
)

// publishCommitted sends events for a change that is already committed.
// A failed publish is logged and otherwise ignored.
func publishCommitted(ctx context.Context, logger *slog.Logger, publisher ports.OrderEventPublisher, events ...ports.OrderChangedEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.ErrorContext(ctx, "failed to publish order events",
			"error", err,
			"order_id", events[0].OrderID,
			"change", events[0].Change,
		)
	}
}

func nopLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
