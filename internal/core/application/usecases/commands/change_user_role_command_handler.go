package commands

import (
	"context"
	"time"
)

// ChangeUserRoleCommandHandler switches a user between the Customer and Admin roles.
type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewChangeUserRoleCommandHandler(uowFactory UserUoWFactory) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{uowFactory: uowFactory}
}

func (h ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) error {
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

	if err = u.ChangeRole(cmd.Role(), time.Now().UTC()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
