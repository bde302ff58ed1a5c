package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListAddressesQueryHandler struct {
	db *gorm.DB
}

func NewListAddressesQueryHandler(db *gorm.DB) ListAddressesQueryHandler {
	return ListAddressesQueryHandler{db: db}
}

func (h ListAddressesQueryHandler) Handle(ctx context.Context, query ListAddressesQuery) ([]AddressView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return loadAddresses(ctx, h.db, query.UserID().Bytes())
}

// GetDefault returns the caller's default address or errs.ErrObjectNotFound.
func (h ListAddressesQueryHandler) GetDefault(ctx context.Context, query ListAddressesQuery) (AddressView, error) {
	if err := query.Validate(); err != nil {
		return AddressView{}, err
	}

	var row addressRow
	err := h.db.WithContext(ctx).
		Table("addresses").
		Where("user_id = ? AND is_default = ?", query.UserID().Bytes(), true).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return AddressView{}, errs.NewObjectNotFoundError("address", "default")
	}
	if err != nil {
		return AddressView{}, err
	}
	return row.view(), nil
}
