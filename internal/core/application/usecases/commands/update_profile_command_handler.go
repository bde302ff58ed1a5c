package commands

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
)

// UpdateProfileCommandHandler applies a partial profile edit to the signed-in user.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{uowFactory: uowFactory}
}

// Handle applies the patch. An email already used by another account is a conflict;
// a duplicate phone number surfaces as a conflict from the storage layer.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
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

	if err = u.ApplyPatch(cmd.Patch(), time.Now().UTC()); err != nil {
		return err
	}

	if cmd.Patch().Email != nil {
		other, err := userRepo.GetByEmail(ctx, u.Email())
		switch {
		case err == nil && !other.ID().IsEqual(u.ID()):
			return ErrEmailAlreadyRegistered
		case err != nil && !errors.Is(err, errs.ErrObjectNotFound):
			return err
		}
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
