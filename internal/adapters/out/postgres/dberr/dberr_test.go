package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"fooddelivery/internal/adapters/out/postgres/dberr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantOK     bool
		wantSubstr string
	}{
		{name: "nil", err: nil},
		{name: "unrelated", err: errors.New("connection refused")},
		{
			name:       "postgres unique",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}),
			wantOK:     true,
			wantSubstr: "idx_users_email",
		},
		{name: "postgres other", err: &pgconn.PgError{Code: "23503", ConstraintName: "fk_orders_user"}},
		{
			name:       "sqlite unique",
			err:        errors.New("constraint failed: UNIQUE constraint failed: users.phone_number (2067)"),
			wantOK:     true,
			wantSubstr: "users.phone_number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := dberr.UniqueViolation(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Contains(t, got, tt.wantSubstr)
		})
	}
}

func TestViolatedColumn(t *testing.T) {
	columns := []dberr.Column{
		{Fragment: "email", Field: "email"},
		{Fragment: "referral_code", Field: "referralCode"},
	}

	param, ok := dberr.ViolatedColumn(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_referral_code"}, columns)
	assert.True(t, ok)
	assert.Equal(t, "referralCode", param)

	param, ok = dberr.ViolatedColumn(errors.New("UNIQUE constraint failed: users.name"), columns)
	assert.True(t, ok)
	assert.Empty(t, param)

	_, ok = dberr.ViolatedColumn(errors.New("boom"), columns)
	assert.False(t, ok)
}

func TestViolatedColumn_IgnoresValuesInPostgresDetail(t *testing.T) {
	columns := []dberr.Column{
		{Fragment: "email", Field: "email"},
		{Fragment: "phone_number", Field: "phoneNumber"},
		{Fragment: "referral_code", Field: "referralCode"},
	}
	err := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_users_phone_number",
		Detail:         "Key (phone_number)=(referral_code-email) already exists.",
	}

	for range 50 {
		param, ok := dberr.ViolatedColumn(err, columns)
		assert.True(t, ok)
		assert.Equal(t, "phoneNumber", param)
	}
}

func TestViolatedColumn_FirstMatchWins(t *testing.T) {
	columns := []dberr.Column{
		{Fragment: "referral_code", Field: "referralCode"},
		{Fragment: "code", Field: "code"},
	}

	param, ok := dberr.ViolatedColumn(errors.New("UNIQUE constraint failed: users.referral_code"), columns)
	assert.True(t, ok)
	assert.Equal(t, "referralCode", param)
}
