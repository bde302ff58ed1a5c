package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   user.Role

	guard guard.ConstructorGuard
}

// NewChangeUserRoleCommand fails with user.ErrInvalidRole unless role is User or Admin.
func NewChangeUserRoleCommand(userID kernel.UUID, role string) (ChangeUserRoleCommand, error) {
	parsed, roleErr := user.ParseRole(role)
	if err := errors.Join(userID.Validate(), roleErr); err != nil {
		return ChangeUserRoleCommand{}, err
	}
	return ChangeUserRoleCommand{userID: userID, role: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

func (c ChangeUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ChangeUserRoleCommand) Role() user.Role {
	return c.role
}
