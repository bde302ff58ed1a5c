package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetUserProfileQueryIsNotConstructed = errors.New(
	"GetUserProfileQuery must be created via NewGetUserProfileQuery constructor",
)

// GetUserProfileQuery loads a user together with their saved addresses.
// It backs both the signed-in user's own profile and the admin user page.
type GetUserProfileQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetUserProfileQuery(userID kernel.UUID) (GetUserProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserProfileQuery{}, err
	}
	return GetUserProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetUserProfileQueryIsNotConstructed)
}

func (q GetUserProfileQuery) UserID() kernel.UUID { return q.userID }

type GetUserProfileQueryResponse struct {
	UserView

	Addresses []AddressView `json:"addresses"`
}
