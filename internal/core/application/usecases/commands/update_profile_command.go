package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand changes name, email or phone number. At least one field must be present.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	patch  user.Patch

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(userID kernel.UUID, patch user.Patch) (UpdateProfileCommand, error) {
	err := userID.Validate()
	if patch.IsEmpty() {
		err = errors.Join(err, errs.NewValueIsRequiredError("at least one of name, email, phoneNumber"))
	}
	if err != nil {
		return UpdateProfileCommand{}, err
	}
	return UpdateProfileCommand{userID: userID, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateProfileCommand) Patch() user.Patch {
	return c.patch
}
