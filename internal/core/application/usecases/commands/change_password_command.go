package commands

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrChangePasswordCommandIsNotConstructed = errors.New(
		"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
	)

	ErrSamePassword = errs.NewValueIsInvalidError("newPassword")
)

type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	userID          kernel.UUID
	currentPassword string
	newPassword     string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand requires the new password to differ from the current one
// and to be at least user.PasswordMinLength characters.
func NewChangePasswordCommand(userID kernel.UUID, currentPassword, newPassword string) (ChangePasswordCommand, error) {
	err := userID.Validate()
	if currentPassword == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("currentPassword"))
	}
	switch {
	case newPassword == "":
		err = errors.Join(err, errs.NewValueIsRequiredError("newPassword"))
	case len(newPassword) < user.PasswordMinLength:
		err = errors.Join(err, fmt.Errorf("%w: must be at least %d characters", ErrPasswordIsTooShort, user.PasswordMinLength))
	case newPassword == currentPassword:
		err = errors.Join(err, fmt.Errorf("%w: new password must be different from the current one", ErrSamePassword))
	}
	if err != nil {
		return ChangePasswordCommand{}, err
	}

	return ChangePasswordCommand{
		userID:          userID,
		currentPassword: currentPassword,
		newPassword:     newPassword,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

func (c ChangePasswordCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ChangePasswordCommand) CurrentPassword() string {
	return c.currentPassword
}

func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}
