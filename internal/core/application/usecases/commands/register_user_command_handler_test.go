package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newRegisterHandler(store *memStore, codes ...user.ReferralCode) commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(
		fakeUserUoWFactory{store},
		password.NewBcryptHasher(bcrypt.MinCost),
		&sequenceCodes{codes: codes},
		nil,
	)
}

func register(t *testing.T, h commands.RegisterUserCommandHandler, email, phone, referredBy string) (kernel.UUID, error) {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(id, "Priya Sharma", email, phone, "secret123", referredBy)
	require.NoError(t, err)
	return id, h.Handle(t.Context(), cmd)
}

func TestRegisterUserCommandHandler_WithoutReferral(t *testing.T) {
	store := newMemStore()
	h := newRegisterHandler(store, "0A1B2C")

	id, err := register(t, h, "Priya@Example.com", "9123456780", "")

	require.NoError(t, err)
	u, ok := store.user(id)
	require.True(t, ok)
	assert.Equal(t, "priya@example.com", u.Email())
	assert.Equal(t, user.ReferralCode("0A1B2C"), u.ReferralCode())
	assert.True(t, u.WalletBalance().IsZero())
	assert.Nil(t, u.ReferredBy())
	assert.Equal(t, user.RoleUser, u.Role())
	assert.NotEqual(t, "secret123", u.PasswordHash())
}

func TestRegisterUserCommandHandler_ReferralCreditsBothParties(t *testing.T) {
	store := newMemStore()
	referrer := seedUser(t, store, "FEED01")
	h := newRegisterHandler(store, "0A1B2C")

	id, err := register(t, h, "new@example.com", "9123456780", "feed01")

	require.NoError(t, err)
	newcomer, _ := store.user(id)
	assert.Equal(t, "25.00", newcomer.WalletBalance().String())
	require.NotNil(t, newcomer.ReferredBy())
	assert.Equal(t, user.ReferralCode("FEED01"), *newcomer.ReferredBy())

	updated, _ := store.user(referrer.ID())
	assert.Equal(t, "50.00", updated.WalletBalance().String())
}

func TestRegisterUserCommandHandler_UnknownReferralCodeCreatesNothing(t *testing.T) {
	store := newMemStore()
	referrer := seedUser(t, store, "FEED01")
	h := newRegisterHandler(store, "0A1B2C")

	_, err := register(t, h, "new@example.com", "9123456780", "ABC123")

	require.ErrorIs(t, err, user.ErrInvalidReferralCode)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 1, store.userCount())
	unchanged, _ := store.user(referrer.ID())
	assert.True(t, unchanged.WalletBalance().IsZero())
}

func TestRegisterUserCommandHandler_RegeneratesTakenReferralCode(t *testing.T) {
	store := newMemStore()
	seedUser(t, store, "111111")
	h := newRegisterHandler(store, "111111", "111111", "222222")

	id, err := register(t, h, "new@example.com", "9123456780", "")

	require.NoError(t, err)
	u, _ := store.user(id)
	assert.Equal(t, user.ReferralCode("222222"), u.ReferralCode())
}

func TestRegisterUserCommandHandler_GivesUpWhenEveryCodeIsTaken(t *testing.T) {
	store := newMemStore()
	seedUser(t, store, "111111")
	h := newRegisterHandler(store, "111111")

	_, err := register(t, h, "new@example.com", "9123456780", "")

	require.ErrorIs(t, err, commands.ErrReferralCodeExhausted)
	assert.Equal(t, 1, store.userCount())
}

func TestRegisterUserCommandHandler_DuplicateEmailAndPhone(t *testing.T) {
	store := newMemStore()
	h := newRegisterHandler(store, "0A1B2C", "0A1B2D", "0A1B2E")

	_, err := register(t, h, "dup@example.com", "9123456780", "")
	require.NoError(t, err)

	_, err = register(t, h, "DUP@example.com", "9000000000", "")
	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)

	_, err = register(t, h, "other@example.com", "9123456780", "")
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, 1, store.userCount())
}

// racingUserRepo lets ExistsByReferralCode report a code as free while Add
// still hits the unique constraint, like a concurrent registration would.
type racingUserRepo struct {
	ports.UserRepository
	conflicts int
}

func (r *racingUserRepo) Add(ctx context.Context, u *user.User) error {
	if r.conflicts > 0 {
		r.conflicts--
		return errs.NewConflictError("referralCode", "duplicate key value violates unique constraint")
	}
	return r.UserRepository.Add(ctx, u)
}

type racingUoW struct {
	*fakeUoW
	users *racingUserRepo
}

func (u racingUoW) UserRepository() ports.UserRepository { return u.users }

type racingFactory struct {
	store *memStore
	users *racingUserRepo
}

func (f racingFactory) Create() commands.UserUoW {
	return racingUoW{fakeUoW: &fakeUoW{store: f.store}, users: f.users}
}

func TestRegisterUserCommandHandler_RetriesAfterStorageConflictOnReferralCode(t *testing.T) {
	store := newMemStore()
	users := &racingUserRepo{UserRepository: fakeUserRepo{store}, conflicts: 1}
	h := commands.NewRegisterUserCommandHandler(
		racingFactory{store: store, users: users},
		password.NewBcryptHasher(bcrypt.MinCost),
		&sequenceCodes{codes: []user.ReferralCode{"AAAAAA", "BBBBBB"}},
		nil,
	)

	id, err := register(t, h, "race@example.com", "9123456780", "")

	require.NoError(t, err)
	u, _ := store.user(id)
	assert.Equal(t, user.ReferralCode("BBBBBB"), u.ReferralCode())
}

func TestNewRegisterUserCommand_Validation(t *testing.T) {
	_, err := commands.NewRegisterUserCommand(kernel.NewUUID(), "Priya", "p@example.com", "9123456780", "123", "")
	require.ErrorIs(t, err, commands.ErrPasswordIsTooShort)

	_, err = commands.NewRegisterUserCommand(kernel.NewUUID(), "Priya", "p@example.com", "9123456780", "", "")
	require.ErrorIs(t, err, user.ErrPasswordIsRequired)

	_, err = commands.NewRegisterUserCommand(kernel.NewUUID(), "Priya", "p@example.com", "9123456780", "secret123", "not-a-code")
	require.ErrorIs(t, err, user.ErrInvalidReferralCode)

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), " Priya ", " P@Example.com ", "9123456780", "secret123", " ")
	require.NoError(t, err)
	assert.Equal(t, "Priya", cmd.Name())
	assert.Equal(t, "p@example.com", cmd.Email())
	assert.Nil(t, cmd.ReferredBy())
}
