package commands

import (
	"context"
	"time"
)

// SetUserStatusCommandHandler blocks or unblocks an account.
type SetUserStatusCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewSetUserStatusCommandHandler(uowFactory UserUoWFactory) SetUserStatusCommandHandler {
	return SetUserStatusCommandHandler{uowFactory: uowFactory}
}

func (h SetUserStatusCommandHandler) Handle(ctx context.Context, cmd SetUserStatusCommand) error {
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

	now := time.Now().UTC()
	if cmd.Blocked() {
		u.Block(now)
	} else {
		u.Unblock(now)
	}

	if err = userRepo.Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
