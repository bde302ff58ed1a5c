package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListUsersQueryHandler struct {
	db *gorm.DB
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db}
}

// Handle returns matching users, newest registration first.
func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("users")
	if role := query.Role(); role != "" {
		tx = tx.Where("role = ?", role.String())
	}
	if s := query.Search(); s != "" {
		pattern := "%" + s + "%"
		tx = tx.Where("(LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone_number LIKE ?)", pattern, pattern, pattern)
	}

	var rows []userRow
	if err := tx.Order("created_at DESC, id").Find(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]UserView, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.view())
	}
	return users, nil
}
