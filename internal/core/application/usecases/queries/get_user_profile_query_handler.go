package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetUserProfileQueryHandler(db *gorm.DB) GetUserProfileQueryHandler {
	return GetUserProfileQueryHandler{db: db}
}

func (h GetUserProfileQueryHandler) Handle(
	ctx context.Context,
	query GetUserProfileQuery,
) (GetUserProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserProfileQueryResponse{}, err
	}

	var row userRow
	err := h.db.WithContext(ctx).Table("users").Where("id = ?", query.UserID().Bytes()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetUserProfileQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID())
	}
	if err != nil {
		return GetUserProfileQueryResponse{}, err
	}

	addresses, err := loadAddresses(ctx, h.db, row.ID)
	if err != nil {
		return GetUserProfileQueryResponse{}, err
	}

	return GetUserProfileQueryResponse{UserView: row.view(), Addresses: addresses}, nil
}
