package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/natnaelw/vendora/internal/infrastructure/jwt"
	passwordservice "github.com/natnaelw/vendora/internal/infrastructure/password_service"
	"github.com/natnaelw/vendora/internal/infrastructure/uuidgen"
	"github.com/natnaelw/vendora/internal/infrastructure/validator"
	"github.com/natnaelw/vendora/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserUsecase(t *testing.T) (*usecase.UserUsecase, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour))
	uc := usecase.NewUserUsecase(
		userRepo,
		passwordservice.NewHasher(),
		jwtService,
		nopLogger{},
		validator.NewValidator(),
		uuidgen.NewGenerator(),
	)
	return uc, userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	uc, _ := newUserUsecase(t)
	ctx := context.Background()

	user, err := uc.Register(ctx, "natnael", "natnael@example.com", "Password123")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "Password123", user.PasswordHash)

	got, accessToken, refreshToken, err := uc.Login(ctx, "Natnael@Example.com", "Password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
}

func TestRegister_Duplicates(t *testing.T) {
	uc, _ := newUserUsecase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "natnael", "natnael@example.com", "Password123")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "someone", "natnael@example.com", "Password123")
	assert.ErrorIs(t, err, usecase.ErrEmailTaken)

	_, err = uc.Register(ctx, "natnael", "other@example.com", "Password123")
	assert.ErrorIs(t, err, usecase.ErrUsernameTaken)
}

func TestRegister_WeakPassword(t *testing.T) {
	uc, _ := newUserUsecase(t)

	_, err := uc.Register(context.Background(), "natnael", "natnael@example.com", "short")
	assert.Error(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newUserUsecase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "natnael", "natnael@example.com", "Password123")
	require.NoError(t, err)

	_, _, _, err = uc.Login(ctx, "natnael@example.com", "WrongPassword1")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	uc, userRepo := newUserUsecase(t)
	ctx := context.Background()

	user, err := uc.Register(ctx, "natnael", "natnael@example.com", "Password123")
	require.NoError(t, err)
	user.IsActive = false
	userRepo.users[user.ID] = user

	_, _, _, err = uc.Login(ctx, "natnael@example.com", "Password123")
	assert.ErrorIs(t, err, usecase.ErrAccountDisabled)
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	uc, _ := newUserUsecase(t)
	ctx := context.Background()

	user, err := uc.Register(ctx, "natnael", "natnael@example.com", "Password123")
	require.NoError(t, err)

	_, accessToken, refreshToken, err := uc.Login(ctx, "natnael@example.com", "Password123")
	require.NoError(t, err)

	got, err := uc.Authenticate(ctx, accessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// A refresh token is not a valid access token.
	_, err = uc.Authenticate(ctx, refreshToken)
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	uc, _ := newUserUsecase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, "natnael", "natnael@example.com", "Password123")
	require.NoError(t, err)
	_, _, refreshToken, err := uc.Login(ctx, "natnael@example.com", "Password123")
	require.NoError(t, err)

	accessToken, newRefresh, err := uc.RefreshToken(ctx, refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, newRefresh)

	_, _, err = uc.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLoginWithOAuth_CreatesOnFirstSight(t *testing.T) {
	uc, userRepo := newUserUsecase(t)
	ctx := context.Background()

	accessToken, _, err := uc.LoginWithOAuth(ctx, "Natnael W", "natnael@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	created, err := userRepo.GetUserByEmail(ctx, "natnael@example.com")
	require.NoError(t, err)
	assert.Equal(t, "natnael.w", created.Username)

	// Second sign-in reuses the account.
	_, _, err = uc.LoginWithOAuth(ctx, "Natnael W", "natnael@example.com")
	require.NoError(t, err)

	got, err := userRepo.GetUserByEmail(ctx, "natnael@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
