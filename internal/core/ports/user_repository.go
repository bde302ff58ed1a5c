package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Add and Update report unique violations on email, phone number and
// referral code as errs.ErrConflict.
type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByReferralCode(ctx context.Context, code user.ReferralCode) (*user.User, error)
	ExistsByReferralCode(ctx context.Context, code user.ReferralCode) (bool, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
