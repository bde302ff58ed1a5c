package services

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"fooddelivery/internal/core/domain/model/user"
)

// ReferralCodeGenerator produces candidate referral codes. Uniqueness is not
// its concern: callers check the store and retry on collision.
type ReferralCodeGenerator interface {
	Generate() (user.ReferralCode, error)
}

// RandomReferralCodeGenerator draws 3 random bytes and renders them as 6 upper-case hex characters.
type RandomReferralCodeGenerator struct{}

func NewRandomReferralCodeGenerator() RandomReferralCodeGenerator {
	return RandomReferralCodeGenerator{}
}

func (RandomReferralCodeGenerator) Generate() (user.ReferralCode, error) {
	b := make([]byte, user.ReferralCodeLength/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return user.ReferralCode(strings.ToUpper(hex.EncodeToString(b))), nil
}
