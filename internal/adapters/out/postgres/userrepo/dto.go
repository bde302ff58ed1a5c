// Package userrepo persists user aggregates. Email, phone number and referral
// code carry unique indexes; a violation surfaces as errs.ErrConflict naming the field.
package userrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserDTO represents the users table.
type UserDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Email         string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PhoneNumber   string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_users_phone_number"`
	PasswordHash  string          `gorm:"type:varchar(255);not null"`
	WalletBalance decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ReferralCode  string          `gorm:"type:varchar(16);not null;uniqueIndex:idx_users_referral_code"`
	ReferredBy    *string         `gorm:"type:varchar(16)"`
	Role          string          `gorm:"type:varchar(16);not null;index"`
	Status        string          `gorm:"type:varchar(16);not null"`
	LastLoginAt   *time.Time
	CreatedAt     time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	var referredBy *string
	if code := u.ReferredBy(); code != nil {
		s := code.String()
		referredBy = &s
	}

	return UserDTO{
		ID:            u.ID().Bytes(),
		Name:          u.Name(),
		Email:         u.Email(),
		PhoneNumber:   u.PhoneNumber(),
		PasswordHash:  u.PasswordHash(),
		WalletBalance: u.WalletBalance().Decimal(),
		ReferralCode:  u.ReferralCode().String(),
		ReferredBy:    referredBy,
		Role:          u.Role().String(),
		Status:        u.Status().String(),
		LastLoginAt:   u.LastLoginAt(),
		CreatedAt:     u.CreatedAt(),
		UpdatedAt:     u.UpdatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	wallet, err := kernel.NewMoney(dto.WalletBalance)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var referredBy *user.ReferralCode
	if dto.ReferredBy != nil {
		code := user.ReferralCode(*dto.ReferredBy)
		referredBy = &code
	}

	var lastLogin *time.Time
	if dto.LastLoginAt != nil {
		t := dto.LastLoginAt.UTC()
		lastLogin = &t
	}

	return user.RestoreUser(
		id, dto.Name, dto.Email, dto.PhoneNumber, dto.PasswordHash, wallet,
		user.ReferralCode(dto.ReferralCode), referredBy, role, user.AccountStatus(dto.Status),
		lastLogin, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(),
	), nil
}
