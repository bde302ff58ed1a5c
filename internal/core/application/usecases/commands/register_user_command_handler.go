package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

const (
	// referralCodeGenerationAttempts bounds the check-then-generate loop inside one transaction.
	referralCodeGenerationAttempts = 10
	// registrationAttempts bounds whole-transaction retries after the storage
	// layer rejected a referral code another registration took concurrently.
	registrationAttempts = 3
)

var (
	ErrEmailAlreadyRegistered = errs.NewConflictError("email", "user already exists with this email")
	ErrReferralCodeExhausted  = errors.New("could not allocate a unique referral code")
)

// RegisterUserCommandHandler creates users and settles referral bonuses.
// Registration is atomic: an unknown referral code creates nothing and leaves
// the referrer untouched.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	codes      services.ReferralCodeGenerator
	logger     *slog.Logger
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	codes services.ReferralCodeGenerator,
	logger *slog.Logger,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		codes:      codes,
		logger:     nopLogger(logger),
	}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		err = h.register(ctx, cmd, hash)
		if !isReferralCodeConflict(err) || attempt == registrationAttempts {
			return err
		}
		h.logger.WarnContext(ctx, "referral code taken concurrently, retrying registration", "attempt", attempt)
	}
}

func (h RegisterUserCommandHandler) register(ctx context.Context, cmd RegisterUserCommand, hash string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return ErrEmailAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	var referrer *user.User
	if code := cmd.ReferredBy(); code != nil {
		found, err := userRepo.GetByReferralCode(ctx, *code)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: no user holds code %s", user.ErrInvalidReferralCode, code)
		}
		if err != nil {
			return err
		}
		referrer = found
	}

	code, err := h.uniqueReferralCode(ctx, userRepo)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	registered, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), cmd.PhoneNumber(), hash, code, now)
	if err != nil {
		return err
	}

	if referrer != nil {
		if err = registered.RedeemReferral(referrer, now); err != nil {
			return err
		}
		if err = userRepo.Update(ctx, referrer); err != nil {
			return err
		}
	}

	if err = userRepo.Add(ctx, registered); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// uniqueReferralCode draws codes until one is free. The unique index on the
// column still guards against a concurrent registration taking the same code.
func (h RegisterUserCommandHandler) uniqueReferralCode(ctx context.Context, repo ports.UserRepository) (user.ReferralCode, error) {
	for range referralCodeGenerationAttempts {
		code, err := h.codes.Generate()
		if err != nil {
			return "", err
		}
		taken, err := repo.ExistsByReferralCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrReferralCodeExhausted
}

func isReferralCodeConflict(err error) bool {
	var conflict *errs.ConflictError
	return errors.As(err, &conflict) && conflict.ParamName == "referralCode"
}
