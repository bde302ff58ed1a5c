package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/address"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addressDetails(t *testing.T, line string) address.Details {
	t.Helper()
	geo, err := kernel.NewGeoPoint(19.07, 72.87)
	require.NoError(t, err)
	return address.Details{
		Label:       address.LabelHome,
		AddressLine: line,
		Landmarks:   []string{"Opposite Churchgate"},
		City:        "Mumbai",
		State:       "Maharashtra",
		PinCode:     "400001",
		Geo:         geo,
	}
}

func defaultAddresses(s *memStore, userID kernel.UUID) []kernel.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []kernel.UUID
	for id, a := range s.addresses {
		if a.IsOwnedBy(userID) && a.IsDefault() {
			ids = append(ids, id)
		}
	}
	return ids
}

func createAddress(t *testing.T, s *memStore, userID kernel.UUID, line string, isDefault bool) (kernel.UUID, error) {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateAddressCommand(id, userID, addressDetails(t, line), isDefault)
	require.NoError(t, err)
	return id, commands.NewCreateAddressCommandHandler(fakeAddressUoWFactory{s}).Handle(t.Context(), cmd)
}

func TestCreateAddressCommandHandler_FirstAddressIsDefault(t *testing.T) {
	store := newMemStore()
	userID := kernel.NewUUID()

	first, err := createAddress(t, store, userID, "12 Marine Drive", false)
	require.NoError(t, err)

	stored, ok := store.address(first)
	require.True(t, ok)
	assert.True(t, stored.IsDefault())
	assert.Equal(t, address.DefaultCountry, stored.Country())
}

func TestCreateAddressCommandHandler_NewDefaultReplacesOld(t *testing.T) {
	store := newMemStore()
	userID := kernel.NewUUID()

	_, err := createAddress(t, store, userID, "12 Marine Drive", false)
	require.NoError(t, err)
	second, err := createAddress(t, store, userID, "7 Hill Road", true)
	require.NoError(t, err)
	_, err = createAddress(t, store, userID, "3 Linking Road", false)
	require.NoError(t, err)

	assert.Equal(t, []kernel.UUID{second}, defaultAddresses(store, userID))
}

func TestCreateAddressCommandHandler_Duplicate(t *testing.T) {
	store := newMemStore()
	userID := kernel.NewUUID()

	_, err := createAddress(t, store, userID, "12 Marine Drive", false)
	require.NoError(t, err)
	_, err = createAddress(t, store, userID, "12 MARINE DRIVE ", false)

	require.ErrorIs(t, err, address.ErrDuplicateAddress)
	assert.ErrorIs(t, err, errs.ErrConflict)

	_, err = createAddress(t, store, kernel.NewUUID(), "12 Marine Drive", false)
	require.NoError(t, err)
}

func TestSetDefaultAddressCommandHandler(t *testing.T) {
	store := newMemStore()
	userID := kernel.NewUUID()
	now := time.Now().UTC()
	seedAddress(t, store, userID, "1 First Street", true, now.Add(-time.Hour))
	other := seedAddress(t, store, userID, "2 Second Street", false, now)
	h := commands.NewSetDefaultAddressCommandHandler(fakeAddressUoWFactory{store})

	cmd, err := commands.NewSetDefaultAddressCommand(other.ID(), userID)
	require.NoError(t, err)
	require.NoError(t, h.Handle(t.Context(), cmd))
	assert.Equal(t, []kernel.UUID{other.ID()}, defaultAddresses(store, userID))

	foreign, err := commands.NewSetDefaultAddressCommand(other.ID(), kernel.NewUUID())
	require.NoError(t, err)
	require.ErrorIs(t, h.Handle(t.Context(), foreign), address.ErrNotAddressOwner)
}

func TestUpdateAddressCommandHandler(t *testing.T) {
	store := newMemStore()
	userID := kernel.NewUUID()
	now := time.Now().UTC()
	a := seedAddress(t, store, userID, "1 First Street", true, now.Add(-time.Hour))
	b := seedAddress(t, store, userID, "2 Second Street", false, now)
	h := commands.NewUpdateAddressCommandHandler(fakeAddressUoWFactory{store})

	city := "Pune"
	cmd, err := commands.NewUpdateAddressCommand(a.ID(), userID, address.Patch{City: &city})
	require.NoError(t, err)
	require.NoError(t, h.Handle(t.Context(), cmd))
	stored, _ := store.address(a.ID())
	assert.Equal(t, "Pune", stored.City())
	assert.True(t, stored.IsDefault())

	clash := "1 First Street"
	cmd, err = commands.NewUpdateAddressCommand(b.ID(), userID, address.Patch{AddressLine: &clash, City: &city})
	require.NoError(t, err)
	require.ErrorIs(t, h.Handle(t.Context(), cmd), address.ErrDuplicateAddress)
}

func TestDeleteAddressCommandHandler_LastAddress(t *testing.T) {
	store := newMemStore()
	userID := kernel.NewUUID()
	only := seedAddress(t, store, userID, "1 First Street", true, time.Now().UTC())

	cmd, err := commands.NewDeleteAddressCommand(only.ID(), userID)
	require.NoError(t, err)
	err = commands.NewDeleteAddressCommandHandler(fakeAddressUoWFactory{store}).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, address.ErrLastAddress)
	_, ok := store.address(only.ID())
	assert.True(t, ok)
}

func TestDeleteAddressCommandHandler_DefaultIsReplaced(t *testing.T) {
	store := newMemStore()
	userID := kernel.NewUUID()
	now := time.Now().UTC()
	oldest := seedAddress(t, store, userID, "1 First Street", false, now.Add(-2*time.Hour))
	seedAddress(t, store, userID, "2 Second Street", false, now.Add(-time.Hour))
	def := seedAddress(t, store, userID, "3 Third Street", true, now)

	cmd, err := commands.NewDeleteAddressCommand(def.ID(), userID)
	require.NoError(t, err)
	require.NoError(t, commands.NewDeleteAddressCommandHandler(fakeAddressUoWFactory{store}).Handle(t.Context(), cmd))

	assert.Equal(t, []kernel.UUID{oldest.ID()}, defaultAddresses(store, userID))
}

func TestDeleteAddressCommandHandler_NonDefaultKeepsDefault(t *testing.T) {
	store := newMemStore()
	userID := kernel.NewUUID()
	now := time.Now().UTC()
	def := seedAddress(t, store, userID, "1 First Street", true, now.Add(-time.Hour))
	extra := seedAddress(t, store, userID, "2 Second Street", false, now)

	cmd, err := commands.NewDeleteAddressCommand(extra.ID(), userID)
	require.NoError(t, err)
	require.NoError(t, commands.NewDeleteAddressCommandHandler(fakeAddressUoWFactory{store}).Handle(t.Context(), cmd))

	assert.Equal(t, []kernel.UUID{def.ID()}, defaultAddresses(store, userID))
}
