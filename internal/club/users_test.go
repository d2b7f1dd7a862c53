package club_test

import (
	"context"
	"testing"

	"github.com/jorgebm/padel-partidos/internal/club"
	"github.com/jorgebm/padel-partidos/internal/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers(fake *sheet.Fake) {
	fake.Seed("Usuarios", [][]string{
		{"ana", "ana@club.es", "+34600111222", "3.5", "B", "ES", "🇪🇸", "20"},
		{"beto", "beto@club.es", "", "", "", "", "🏳", ""},
	})
}

func TestRegisterUser(t *testing.T) {
	fake := sheet.NewFake()
	seedUsers(fake)
	store := club.NewUserStore(fake)

	err := store.Register(context.Background(), club.User{Nickname: "carla", Email: "carla@club.es"})
	require.NoError(t, err)

	rows := fake.Rows("Usuarios")
	require.Len(t, rows, 3)
	assert.Equal(t, "carla", rows[2][0])
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	fake := sheet.NewFake()
	seedUsers(fake)
	store := club.NewUserStore(fake)

	err := store.Register(context.Background(), club.User{Nickname: "otra", Email: "ana@club.es"})
	assert.ErrorIs(t, err, club.ErrDuplicateEmail)

	assert.Len(t, fake.Rows("Usuarios"), 2, "no row should be appended on conflict")
	assert.Empty(t, fake.AppendRangeCalls)
}

func TestFindByID(t *testing.T) {
	fake := sheet.NewFake()
	seedUsers(fake)
	store := club.NewUserStore(fake)

	user, err := store.FindByID(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, "ana@club.es", user.Email)
	assert.Equal(t, 20.0, user.Balance)

	_, err = store.FindByID(context.Background(), "nadie")
	assert.ErrorIs(t, err, club.ErrUserNotFound)
}

func TestAddBalance(t *testing.T) {
	fake := sheet.NewFake()
	seedUsers(fake)
	store := club.NewUserStore(fake)

	balance, err := store.AddBalance(context.Background(), "ana", 15)
	require.NoError(t, err)
	assert.Equal(t, 35.0, balance)

	reloaded, err := store.FindByID(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, 35.0, reloaded.Balance)
}

func TestAddBalance_CoercesBlankToZero(t *testing.T) {
	fake := sheet.NewFake()
	seedUsers(fake)
	store := club.NewUserStore(fake)

	balance, err := store.AddBalance(context.Background(), "beto", 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, balance, "a blank stored balance counts as 0")
}

func TestAddBalance_UserNotFound(t *testing.T) {
	fake := sheet.NewFake()
	seedUsers(fake)
	store := club.NewUserStore(fake)

	_, err := store.AddBalance(context.Background(), "nadie", 10)
	assert.ErrorIs(t, err, club.ErrUserNotFound)
	assert.Empty(t, fake.UpdateRangeCalls)
}
