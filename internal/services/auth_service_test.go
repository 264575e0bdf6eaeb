package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/styleverse/styleverse-backend/internal/config"
	"github.com/styleverse/styleverse-backend/internal/dto"
	"github.com/styleverse/styleverse-backend/internal/models"
	"github.com/styleverse/styleverse-backend/internal/storage/memstore"
)

func newTestAuthService() (*AuthService, *memstore.Store) {
	store := memstore.New()
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
	return NewAuthService(store, cfg), store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "maria",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "supersecret", user.Password, "password stored in plaintext")
	assert.Equal(t, models.SourceLocal, user.Source)

	got, err := svc.Login(ctx, &dto.LoginRequest{Username: "maria", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Register and login each leave an audit row.
	activities, err := store.GetUserActivities(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, models.ActivityLogin, activities[0].ActivityType)

	// The signup row carries the entity reference and registration metadata.
	signup := activities[1]
	assert.Equal(t, models.ActivitySignup, signup.ActivityType)
	require.NotNil(t, signup.EntityType)
	assert.Equal(t, "auth", *signup.EntityType)
	require.NotNil(t, signup.EntityName)
	assert.Equal(t, "User Registration", *signup.EntityName)
	require.NotNil(t, signup.EntityID)
	assert.Equal(t, user.ID, *signup.EntityID)

	var meta map[string]any
	require.NoError(t, json.Unmarshal(signup.Metadata, &meta))
	assert.Equal(t, models.SourceLocal, meta["method"])
	assert.Equal(t, "maria", meta["username"])
}

func TestLoginByEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	email := "lena@example.com"
	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "lena",
		Password: "supersecret",
		Email:    &email,
	})
	require.NoError(t, err)

	got, err := svc.Login(ctx, &dto.LoginRequest{Email: email, Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "nina", Password: "supersecret"})
	require.NoError(t, err)

	_, wrongPass := svc.Login(ctx, &dto.LoginRequest{Username: "nina", Password: "wrong-password"})
	_, noUser := svc.Login(ctx, &dto.LoginRequest{Username: "ghost", Password: "whatever"})

	// Same error whether the account exists or not.
	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, ErrInvalidCredentials)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "olga", Password: "short"})
	assert.Error(t, err)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "pete", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "pete", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRefreshRotation(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{Username: "quinn", Password: "supersecret"})
	require.NoError(t, err)

	pair, err := svc.TokenPair(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	rotated, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The first token died with its first use.
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Refresh(context.Background(), "not-a-real-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestForgotAndResetPassword(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	email := "rosa@example.com"
	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "rosa",
		Password: "supersecret",
		Email:    &email,
	})
	require.NoError(t, err)

	token, err := svc.ForgotPassword(ctx, email)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = svc.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Email:       email,
		Token:       token,
		NewPassword: "brand-new-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "rosa", Password: "brand-new-pass"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, &dto.LoginRequest{Username: "rosa", Password: "supersecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// The token is single-use.
	err = svc.ResetPassword(ctx, &dto.ResetPasswordRequest{
		Email:       email,
		Token:       token,
		NewPassword: "another-new-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	activities, err := store.GetUserActivitiesByType(ctx, user.ID, models.ActivityPasswordReset, 0)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestForgotPasswordUnknownEmailSilent(t *testing.T) {
	svc, _ := newTestAuthService()

	token, err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Empty(t, token)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{Username: "sam", Password: "supersecret"})
	require.NoError(t, err)

	pair, err := svc.TokenPair(ctx, user)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, user.ID, pair.RefreshToken))

	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
