package commands

import (
	"context"
)

// DeleteUserCommandHandler removes an account together with its saved addresses.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{uowFactory: uowFactory}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
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

	addressRepo := uow.AddressRepository()
	addresses, err := addressRepo.ListByUser(ctx, u.ID())
	if err != nil {
		return err
	}
	for _, a := range addresses {
		if err = addressRepo.Delete(ctx, a.ID()); err != nil {
			return err
		}
	}

	if err = userRepo.Delete(ctx, u.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
