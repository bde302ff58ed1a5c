package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var ErrIncorrectCurrentPassword = errs.NewValueIsInvalidError("currentPassword")

// ChangePasswordCommandHandler replaces a user's password after checking the
// current one. A wrong current password fails with ErrIncorrectCurrentPassword.
type ChangePasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

func NewChangePasswordCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	u, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.CurrentPassword()); err != nil {
		if errors.Is(err, errs.ErrUnauthenticated) {
			return ErrIncorrectCurrentPassword
		}
		return err
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = u.ChangePasswordHash(hash, time.Now().UTC()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
