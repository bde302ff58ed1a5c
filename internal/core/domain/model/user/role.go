package user

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

var ErrInvalidRole = errs.NewValueIsInvalidError("role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q is not one of User, Admin", ErrInvalidRole, s)
	}
}

func (r Role) String() string {
	return string(r)
}

// AccountStatus tells whether a user may sign in.
type AccountStatus string

const (
	StatusActive  AccountStatus = "active"
	StatusBlocked AccountStatus = "blocked"
)

func (s AccountStatus) String() string {
	return string(s)
}
