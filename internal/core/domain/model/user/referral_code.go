package user

import (
	"fmt"
	"regexp"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ReferralCodeLength is the number of hex characters in a generated code.
const ReferralCodeLength = 6

var (
	// ReferrerBonus is credited to the owner of a redeemed referral code.
	ReferrerBonus = kernel.MoneyFromInt(50)
	// WelcomeBonus is the starting balance of a user who registered with a valid code.
	WelcomeBonus = kernel.MoneyFromInt(25)

	// ErrInvalidReferralCode is returned for malformed codes and codes no user holds.
	ErrInvalidReferralCode = errs.NewValueIsInvalidError("referredBy")

	referralCodePattern = regexp.MustCompile(`^[0-9A-F]{6}$`)
)

// ReferralCode is the shareable token that credits both parties on registration.
type ReferralCode string

// ParseReferralCode normalises user input (trim, upper case) and checks the format.
func ParseReferralCode(s string) (ReferralCode, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if !referralCodePattern.MatchString(code) {
		return "", fmt.Errorf("%w: %q", ErrInvalidReferralCode, s)
	}
	return ReferralCode(code), nil
}

func (c ReferralCode) String() string {
	return string(c)
}
