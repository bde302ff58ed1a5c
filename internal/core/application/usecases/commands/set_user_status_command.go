package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrSetUserStatusCommandIsNotConstructed = errors.New(
	"SetUserStatusCommand must be created via NewSetUserStatusCommand constructor",
)

// SetUserStatusCommand blocks or unblocks an account.
type SetUserStatusCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	blocked bool

	guard guard.ConstructorGuard
}

func NewSetUserStatusCommand(userID kernel.UUID, blocked bool) (SetUserStatusCommand, error) {
	if err := userID.Validate(); err != nil {
		return SetUserStatusCommand{}, err
	}
	return SetUserStatusCommand{userID: userID, blocked: blocked, guard: guard.NewConstructorGuard()}, nil
}

func (c SetUserStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetUserStatusCommandIsNotConstructed)
}

func (c SetUserStatusCommand) UserID() kernel.UUID {
	return c.userID
}

func (c SetUserStatusCommand) Blocked() bool {
	return c.blocked
}
