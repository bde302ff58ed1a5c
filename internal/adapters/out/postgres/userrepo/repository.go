package userrepo

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/adapters/out/postgres/dberr"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// uniqueColumns maps index or column fragments to the request field they guard.
var uniqueColumns = []dberr.Column{
	{Fragment: "email", Field: "email"},
	{Fragment: "phone_number", Field: "phoneNumber"},
	{Fragment: "referral_code", Field: "referralCode"},
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Update rewrites every column of the user row.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "user", id.String(), "id = ?", id.Bytes())
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "user", email, "email = ?", email)
}

func (r *GormUserRepository) GetByReferralCode(ctx context.Context, code user.ReferralCode) (*user.User, error) {
	return r.first(ctx, "user", code.String(), "referral_code = ?", code.String())
}

func (r *GormUserRepository) ExistsByReferralCode(ctx context.Context, code user.ReferralCode) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("referral_code = ?", code.String()).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&UserDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}
	return nil
}

func (r *GormUserRepository) first(ctx context.Context, name, key string, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(name, key)
		}
		return nil, err
	}
	return toDomain(dto)
}

func translate(err error) error {
	param, ok := dberr.ViolatedColumn(err, uniqueColumns)
	if !ok {
		return err
	}
	if param == "" {
		param = "user"
	}
	return errs.NewConflictErrorWithCause(param, fmt.Sprintf("%s is already in use", param), err)
}
