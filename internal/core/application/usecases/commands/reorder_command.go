package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrReorderCommandIsNotConstructed = errors.New(
	"ReorderCommand must be created via NewReorderCommand constructor",
)

// ReorderCommand places a copy of an earlier order under a new identity.
type ReorderCommand struct { //nolint:recvcheck //using for validation
	newOrderID    kernel.UUID
	sourceOrderID kernel.UUID
	userID        kernel.UUID

	guard guard.ConstructorGuard
}

func NewReorderCommand(newOrderID, sourceOrderID, userID kernel.UUID) (ReorderCommand, error) {
	if err := errors.Join(newOrderID.Validate(), sourceOrderID.Validate(), userID.Validate()); err != nil {
		return ReorderCommand{}, err
	}
	return ReorderCommand{
		newOrderID:    newOrderID,
		sourceOrderID: sourceOrderID,
		userID:        userID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ReorderCommand) Validate() error {
	return c.guard.Validate(ErrReorderCommandIsNotConstructed)
}

func (c ReorderCommand) NewOrderID() kernel.UUID {
	return c.newOrderID
}

func (c ReorderCommand) SourceOrderID() kernel.UUID {
	return c.sourceOrderID
}

func (c ReorderCommand) UserID() kernel.UUID {
	return c.userID
}
