package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// DefaultPurgeBatchSize bounds how many orders one purge run removes.
const DefaultPurgeBatchSize = 500

var ErrPurgeCancelledOrdersCommandIsNotConstructed = errors.New(
	"PurgeCancelledOrdersCommand must be created via NewPurgeCancelledOrdersCommand constructor",
)

// PurgeCancelledOrdersCommand removes cancelled orders older than a cutoff.
type PurgeCancelledOrdersCommand struct { //nolint:recvcheck //using for validation
	cancelledBefore time.Time
	batchSize       int

	guard guard.ConstructorGuard
}

// NewPurgeCancelledOrdersCommand uses DefaultPurgeBatchSize when batchSize is not positive.
func NewPurgeCancelledOrdersCommand(cancelledBefore time.Time, batchSize int) (PurgeCancelledOrdersCommand, error) {
	if cancelledBefore.IsZero() {
		return PurgeCancelledOrdersCommand{}, errs.NewValueIsRequiredError("cancelledBefore")
	}
	if batchSize <= 0 {
		batchSize = DefaultPurgeBatchSize
	}
	return PurgeCancelledOrdersCommand{
		cancelledBefore: cancelledBefore,
		batchSize:       batchSize,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeCancelledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeCancelledOrdersCommandIsNotConstructed)
}

func (c PurgeCancelledOrdersCommand) CancelledBefore() time.Time {
	return c.cancelledBefore
}

func (c PurgeCancelledOrdersCommand) BatchSize() int {
	return c.batchSize
}
