package addressrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements ports.AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) Add(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormAddressRepository) Update(ctx context.Context, aggregate *address.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", aggregate.ID().String())
	}

	return nil
}

func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByUser returns the user's addresses, oldest first.
func (r *GormAddressRepository) ListByUser(ctx context.Context, userID kernel.UUID) ([]*address.Address, error) {
	var dtos []AddressDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	addresses := make([]*address.Address, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}

	return addresses, nil
}

// ClearDefault unsets the default flag on every address of the user.
func (r *GormAddressRepository) ClearDefault(ctx context.Context, userID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("user_id = ? AND is_default = ?", userID.Bytes(), true).
		Update("is_default", false).Error
}

func (r *GormAddressRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&AddressDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", id.String())
	}
	return nil
}
