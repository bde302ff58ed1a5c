package commands

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

// CancelOrderCommandHandler cancels pending or confirmed orders and refunds any
// wallet credit the order used back to its owner in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	logger     *slog.Logger
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     nopLogger(logger),
	}
}

// Handle returns the refunded amount, zero when the order used no wallet credit.
// A second cancellation fails with order.ErrInvalidTransition before anything is credited.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (kernel.Money, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Money{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Money{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.Money{}, err
	}

	if err = o.EnsureOwnedBy(cmd.UserID()); err != nil {
		return kernel.Money{}, err
	}

	now := time.Now().UTC()
	refund, err := o.Cancel(now)
	if err != nil {
		return kernel.Money{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.Money{}, err
	}

	if refund.IsPositive() {
		userRepo := uow.UserRepository()
		owner, err := userRepo.Get(ctx, o.UserID())
		if err != nil {
			return kernel.Money{}, err
		}
		owner.CreditWallet(refund, now)
		if err = userRepo.Update(ctx, owner); err != nil {
			return kernel.Money{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Money{}, err
	}

	publishCommitted(ctx, h.logger, h.publisher, ports.NewOrderChangedEvent(o, ports.OrderCancelled, now))
	return refund, nil
}
