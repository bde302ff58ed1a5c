package commands

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)

	ErrPasswordIsTooShort = errs.NewValueIsInvalidError("password")
)

// RegisterUserCommand signs up a new user, optionally with a referral code.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(kernel.NewUUID(), "Asha", "asha@example.com", "9876543210", "secret1", "A1B2C3")
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	name        string
	email       string
	phoneNumber string
	password    string
	referredBy  *user.ReferralCode

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand checks the fields that cannot be checked after hashing.
// Name, email and phone number are validated by the user aggregate.
// A malformed referredBy fails with user.ErrInvalidReferralCode; an empty one means no referral.
func NewRegisterUserCommand(
	userID kernel.UUID,
	name, email, phoneNumber, password, referredBy string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		name:        strings.TrimSpace(name),
		email:       strings.ToLower(strings.TrimSpace(email)),
		phoneNumber: strings.TrimSpace(phoneNumber),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPassword(password),
		cmd.setReferredBy(referredBy),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterUserCommand) Name() string {
	return c.name
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

// ReferredBy returns the referral code the user signed up with, or nil.
func (c RegisterUserCommand) ReferredBy() *user.ReferralCode {
	return c.referredBy
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return user.ErrPasswordIsRequired
	}
	if len(password) < user.PasswordMinLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordIsTooShort, user.PasswordMinLength)
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setReferredBy(referredBy string) error {
	if strings.TrimSpace(referredBy) == "" {
		return nil
	}
	code, err := user.ParseReferralCode(referredBy)
	if err != nil {
		return err
	}
	c.referredBy = &code
	return nil
}
