package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes a cancelled order. The owner may delete their own
// orders; an admin may delete any.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	isAdmin bool

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID, actorID kernel.UUID, isAdmin bool) (DeleteOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actorID.Validate()); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{
		orderID: orderID,
		actorID: actorID,
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeleteOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c DeleteOrderCommand) IsAdmin() bool {
	return c.isAdmin
}
