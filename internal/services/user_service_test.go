package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"user-management-api/internal/config"
	"user-management-api/internal/constants"
	"user-management-api/internal/store"
)

func newTestService(t *testing.T) *UserService {
	t.Helper()

	var auth config.AuthConfig
	auth.PasswordStrength.MinLength = 6
	auth.Bcrypt.Cost = bcrypt.MinCost

	return NewUserService(store.NewMemoryStore(), NewJWTService(testSecret, time.Hour), auth)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, token, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
	assert.Equal(t, constants.StatusActive, user.Status)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "secret1", user.Password)

	claims, err := svc.jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Other Ann", "ann@x.com", "different1")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		field    string
	}{
		{"empty name", "", "ann@x.com", "secret1", "name"},
		{"whitespace name", "   ", "ann@x.com", "secret1", "name"},
		{"empty email", "Ann", "", "secret1", "email"},
		{"missing at sign", "Ann", "annx.com", "secret1", "email"},
		{"missing domain dot", "Ann", "ann@localhost", "secret1", "email"},
		{"empty password", "Ann", "ann@x.com", "", "password"},
		{"short password", "Ann", "ann@x.com", "five5", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			_, _, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestRegister_NormalizesInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, _, err := svc.Register(ctx, "  Ann  ", "  Ann@X.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	registered, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	require.Nil(t, registered.LastLogin)

	user, token, err := svc.Login(ctx, "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)

	// last_login is set by a successful login and never moves backwards
	stored, err := svc.store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
	first := *stored.LastLogin

	_, _, err = svc.Login(ctx, "ann@x.com", "secret1")
	require.NoError(t, err)

	stored, err = svc.store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
	assert.False(t, stored.LastLogin.Before(first))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	// Same error for unknown email and wrong password, so login does not
	// reveal whether an email is registered.
	_, _, err = svc.Login(ctx, "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ann@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_BlockedAccount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, svc.SetStatus(ctx, "ann@x.com", constants.StatusBlocked))

	// Password is verified before status: wrong password on a blocked
	// account still reports invalid credentials.
	_, _, err = svc.Login(ctx, "ann@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ann@x.com", "secret1")
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestLogin_Validation(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Login(context.Background(), "", "secret1")
	assert.True(t, IsValidationError(err))

	_, _, err = svc.Login(context.Background(), "ann@x.com", "")
	assert.True(t, IsValidationError(err))
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, "Bob", "bob@x.com", "secret2")
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ann@x.com", users[0].Email)
	assert.Equal(t, "bob@x.com", users[1].Email)
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, "ann@x.com", constants.StatusBlocked))
	stored, err := svc.store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusBlocked, stored.Status)

	require.NoError(t, svc.SetStatus(ctx, "ann@x.com", constants.StatusActive))
	stored, err = svc.store.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusActive, stored.Status)
}

func TestSetStatus_Errors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	err = svc.SetStatus(ctx, "ann@x.com", "suspended")
	assert.True(t, IsValidationError(err))

	err = svc.SetStatus(ctx, "nobody@x.com", constants.StatusBlocked)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBulkAction(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	ann, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	bob, _, err := svc.Register(ctx, "Bob", "bob@x.com", "secret2")
	require.NoError(t, err)

	// Missing ids are no-ops; the matched ids still change.
	missing := uint(9999)
	err = svc.BulkAction(ctx, []uint{ann.ID, bob.ID, missing}, constants.ActionBlock)
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	for _, u := range users {
		assert.Equal(t, constants.StatusBlocked, u.Status)
	}

	err = svc.BulkAction(ctx, []uint{ann.ID}, constants.ActionUnblock)
	require.NoError(t, err)
	stored, err := svc.store.GetByID(ctx, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusActive, stored.Status)

	err = svc.BulkAction(ctx, []uint{ann.ID, bob.ID, missing}, constants.ActionDelete)
	require.NoError(t, err)
	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestBulkAction_Validation(t *testing.T) {
	svc := newTestService(t)

	err := svc.BulkAction(context.Background(), nil, constants.ActionBlock)
	assert.True(t, IsValidationError(err))

	err = svc.BulkAction(context.Background(), []uint{1}, "promote")
	assert.True(t, IsValidationError(err))
}

// Register, fail a login, log in, get blocked, get rejected.
func TestAccountLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	user, token, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(ctx, "ann@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	loggedIn, token, err := svc.Login(ctx, "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	stored, err := svc.store.GetByID(ctx, loggedIn.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)

	require.NoError(t, svc.SetStatus(ctx, "ann@x.com", constants.StatusBlocked))

	_, _, err = svc.Login(ctx, "ann@x.com", "secret1")
	assert.ErrorIs(t, err, ErrAccountBlocked)
}
