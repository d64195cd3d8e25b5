package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sams-backend/internal/domain"
	"sams-backend/internal/repository"
	"sams-backend/internal/repository/sqlite"
)

func newAuthService(t *testing.T) (AuthService, repository.UserRepository) {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := sqlite.NewUserRepository(db)
	require.NoError(t, users.Init(context.Background()))

	return NewAuthService(users), users
}

func TestRegister(t *testing.T) {
	svc, users := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "a@x.com", "Secret123!")
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	stored, err := users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "  Alice@X.Com ", "Secret123!")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "Secret123!")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "someone-else", "a@x.com", "Other456!")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "Secret123!")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@x.com", "Other456!")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "a@x.com", "Secret123!")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "alice", "", "Secret123!")
	assert.Error(t, err)

	_, err = svc.Register(ctx, "alice", "a@x.com", "")
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "Secret123!")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "a@x.com", "Secret123!")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsActive)
}

func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "Secret123!")
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "a@x.com", "WrongPass!")
	_, unknownUser := svc.Authenticate(ctx, "nobody@x.com", "Secret123!")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthenticateInactiveUserStillSucceeds(t *testing.T) {
	svc, users := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "a@x.com", "Secret123!")
	require.NoError(t, err)
	require.NoError(t, users.SetActive(ctx, registered.ID, false))

	// Login itself is not blocked for disabled accounts; the token is
	// rejected later when presented.
	user, err := svc.Authenticate(ctx, "a@x.com", "Secret123!")
	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestGetByID(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "a@x.com", "Secret123!")
	require.NoError(t, err)

	user, err := svc.GetByID(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = svc.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
