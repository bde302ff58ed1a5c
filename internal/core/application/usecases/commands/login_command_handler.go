package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errs.NewUnauthenticatedError("invalid email or password")

	ErrAdminAccessRequired = errs.NewAccessDeniedError("admin access required")
	ErrInvalidSecretKey    = errs.NewAccessDeniedError("invalid secret key")
)

// LoginCommandHandler verifies credentials and records the sign-in time.
// Blocked users are rejected with user.ErrUserIsBlocked.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewLoginCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return signIn(ctx, h.uowFactory, h.hasher, cmd, nil)
}

// AdminLoginCommandHandler signs in users with role Admin who also present the configured secret key.
type AdminLoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	secretKey  string
}

func NewAdminLoginCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher, secretKey string) AdminLoginCommandHandler {
	return AdminLoginCommandHandler{uowFactory: uowFactory, hasher: hasher, secretKey: secretKey}
}

func (h AdminLoginCommandHandler) Handle(ctx context.Context, cmd AdminLoginCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return signIn(ctx, h.uowFactory, h.hasher, cmd.Credentials(), func(u *user.User) error {
		if !u.IsAdmin() {
			return ErrAdminAccessRequired
		}
		if h.secretKey == "" || subtle.ConstantTimeCompare([]byte(h.secretKey), []byte(cmd.SecretKey())) != 1 {
			return ErrInvalidSecretKey
		}
		return nil
	})
}

func signIn(
	ctx context.Context,
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	cmd LoginCommand,
	authorize func(*user.User) error,
) (*user.User, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err = hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		if errors.Is(err, errs.ErrUnauthenticated) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err = u.EnsureCanSignIn(); err != nil {
		return nil, err
	}

	if authorize != nil {
		if err = authorize(u); err != nil {
			return nil, err
		}
	}

	u.RecordLogin(time.Now().UTC())
	if err = userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return u, nil
}
