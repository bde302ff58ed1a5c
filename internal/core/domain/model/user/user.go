package user

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

const (
	NameMinLength     = 3
	PasswordMinLength = 6
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	ErrNameIsInvalid        = errs.NewValueIsInvalidError("name")
	ErrEmailIsInvalid       = errs.NewValueIsInvalidError("email")
	ErrPhoneNumberIsInvalid = errs.NewValueIsInvalidError("phoneNumber")
	ErrPasswordIsRequired   = errs.NewValueIsRequiredError("password")

	ErrUserIsBlocked = errs.NewAccessDeniedError("user is blocked")

	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// User is an account holder. It owns addresses and orders, carries a wallet
// credited by referral bonuses and cancellation refunds, and a unique referral code.
type User struct {
	id            kernel.UUID
	name          string
	email         string
	phoneNumber   string
	passwordHash  string
	walletBalance kernel.Money
	referralCode  ReferralCode
	referredBy    *ReferralCode
	role          Role
	status        AccountStatus
	lastLoginAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time

	isConstructed bool
}

// NewUser creates an active user with role User and an empty wallet.
// passwordHash must already be hashed.
func NewUser(
	id kernel.UUID,
	name, email, phoneNumber, passwordHash string,
	referralCode ReferralCode,
	now time.Time,
) (*User, error) {
	u := &User{
		walletBalance: kernel.ZeroMoney(),
		role:          RoleUser,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setPhoneNumber(phoneNumber),
		u.setPasswordHash(passwordHash),
		u.setReferralCode(referralCode),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a user from persisted state.
func RestoreUser(
	id kernel.UUID,
	name, email, phoneNumber, passwordHash string,
	walletBalance kernel.Money,
	referralCode ReferralCode,
	referredBy *ReferralCode,
	role Role,
	status AccountStatus,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		phoneNumber:   phoneNumber,
		passwordHash:  passwordHash,
		walletBalance: walletBalance,
		referralCode:  referralCode,
		referredBy:    referredBy,
		role:          role,
		status:        status,
		lastLoginAt:   lastLoginAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) PhoneNumber() string { return u.phoneNumber }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) WalletBalance() kernel.Money { return u.walletBalance }
func (u *User) ReferralCode() ReferralCode { return u.referralCode }
func (u *User) ReferredBy() *ReferralCode { return u.referredBy }
func (u *User) Role() Role { return u.role }
func (u *User) Status() AccountStatus { return u.status }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }
func (u *User) IsBlocked() bool { return u.status == StatusBlocked }

// RedeemReferral records that u registered with referrer's code: the referrer
// is credited ReferrerBonus and u starts with WelcomeBonus.
func (u *User) RedeemReferral(referrer *User, now time.Time) error {
	if referrer == nil || referrer.id.IsEqual(u.id) {
		return ErrInvalidReferralCode
	}
	code := referrer.referralCode
	u.referredBy = &code
	u.walletBalance = WelcomeBonus
	u.updatedAt = now
	referrer.CreditWallet(ReferrerBonus, now)
	return nil
}

// CreditWallet adds amount to the wallet balance. The balance never decreases.
func (u *User) CreditWallet(amount kernel.Money, now time.Time) {
	if amount.IsZero() {
		return
	}
	u.walletBalance = u.walletBalance.Add(amount)
	u.updatedAt = now
}

// EnsureCanSignIn rejects blocked accounts.
func (u *User) EnsureCanSignIn() error {
	if u.IsBlocked() {
		return ErrUserIsBlocked
	}
	return nil
}

func (u *User) RecordLogin(now time.Time) {
	u.lastLoginAt = &now
}

func (u *User) ChangePasswordHash(hash string, now time.Time) error {
	if err := u.setPasswordHash(hash); err != nil {
		return err
	}
	u.updatedAt = now
	return nil
}

func (u *User) Block(now time.Time) {
	u.status = StatusBlocked
	u.updatedAt = now
}

func (u *User) Unblock(now time.Time) {
	u.status = StatusActive
	u.updatedAt = now
}

func (u *User) ChangeRole(role Role, now time.Time) error {
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}
	u.role = role
	u.updatedAt = now
	return nil
}

// ApplyPatch validates every present field before changing any of them.
func (u *User) ApplyPatch(p Patch, now time.Time) error {
	next := *u
	var err error
	if p.Name != nil {
		err = errors.Join(err, next.setName(*p.Name))
	}
	if p.Email != nil {
		err = errors.Join(err, next.setEmail(*p.Email))
	}
	if p.PhoneNumber != nil {
		err = errors.Join(err, next.setPhoneNumber(*p.PhoneNumber))
	}
	if err != nil {
		return err
	}
	next.updatedAt = now
	*u = next
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < NameMinLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrNameIsInvalid, NameMinLength)
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrEmailIsInvalid, email)
	}
	u.email = email
	return nil
}

func (u *User) setPhoneNumber(phone string) error {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: %q", ErrPhoneNumberIsInvalid, phone)
	}
	u.phoneNumber = phone
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setReferralCode(code ReferralCode) error {
	parsed, err := ParseReferralCode(string(code))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("referralCode", err)
	}
	u.referralCode = parsed
	return nil
}
