package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New("LoginCommand must be created via NewLoginCommand constructor")

var ErrAdminLoginCommandIsNotConstructed = errors.New(
	"AdminLoginCommand must be created via NewAdminLoginCommand constructor",
)

// LoginCommand carries user credentials.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(email, password string) (LoginCommand, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var err error
	if email == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("email"))
	}
	if password == "" {
		err = errors.Join(err, user.ErrPasswordIsRequired)
	}
	if err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Email() string {
	return c.email
}

func (c LoginCommand) Password() string {
	return c.password
}

// AdminLoginCommand adds the shared admin secret to the credentials.
type AdminLoginCommand struct { //nolint:recvcheck //using for validation
	credentials LoginCommand
	secretKey   string

	guard guard.ConstructorGuard
}

func NewAdminLoginCommand(email, password, secretKey string) (AdminLoginCommand, error) {
	credentials, err := NewLoginCommand(email, password)
	if secretKey == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("secretKey"))
	}
	if err != nil {
		return AdminLoginCommand{}, err
	}
	return AdminLoginCommand{credentials: credentials, secretKey: secretKey, guard: guard.NewConstructorGuard()}, nil
}

func (c AdminLoginCommand) Validate() error {
	return c.guard.Validate(ErrAdminLoginCommandIsNotConstructed)
}

func (c AdminLoginCommand) Credentials() LoginCommand {
	return c.credentials
}

func (c AdminLoginCommand) SecretKey() string {
	return c.secretKey
}
