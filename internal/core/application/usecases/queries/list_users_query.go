package queries

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery is the admin user listing. Search matches name, email or phone
// number case-insensitively; customersOnly keeps accounts with the User role.
type ListUsersQuery struct { //nolint:recvcheck //using for validation
	search        string
	customersOnly bool

	guard guard.ConstructorGuard
}

func NewListUsersQuery(search string, customersOnly bool) ListUsersQuery {
	return ListUsersQuery{
		search:        strings.ToLower(strings.TrimSpace(search)),
		customersOnly: customersOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Search() string { return q.search }

// Role returns the role filter, empty when every role is listed.
func (q ListUsersQuery) Role() user.Role {
	if q.customersOnly {
		return user.RoleUser
	}
	return ""
}
