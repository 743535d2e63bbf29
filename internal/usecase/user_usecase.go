package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/natnaelw/vendora/internal/domain/contract"
	"github.com/natnaelw/vendora/internal/domain/entity"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
)

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// UserUsecase backs the storefront's auth collaborator: registration, login,
// token refresh and OAuth sign-in. No email verification round-trip; accounts
// are active on creation.
type UserUsecase struct {
	userRepo   contract.IUserRepository
	hasher     contract.IHasher
	jwtService JWTService
	logger     usecasecontract.IAppLogger
	validator  usecasecontract.IValidator
	uuidGen    contract.IUUIDGenerator
}

func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
	uuidGen contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
		validator:  validator,
		uuidGen:    uuidGen,
	}
}

func (u *UserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := u.validator.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if err := u.validator.ValidatePasswordStrength(password); err != nil {
		return nil, err
	}

	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}
	if _, err := u.userRepo.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := u.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		ID:           u.uuidGen.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.DefaultRole(),
		IsActive:     true,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	u.logger.Infof("registered user %s", user.ID)
	return user, nil
}

func (u *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if err := u.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", "", ErrAccountDisabled
	}

	accessToken, refreshToken, err := u.issueTokensPair(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

func (u *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return u.userRepo.GetUserByID(ctx, userID)
}

func (u *UserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := u.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", "", ErrAccountDisabled
	}

	return u.issueTokensPair(user)
}

func (u *UserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := u.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

// LoginWithOAuth signs in a user by verified provider email, creating the
// account on first sight.
func (u *UserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		user = &entity.User{
			ID:       u.uuidGen.NewUUID(),
			Username: oauthUsername(name, email),
			Email:    email,
			Role:     entity.DefaultRole(),
			IsActive: true,
		}
		if err := u.userRepo.CreateUser(ctx, user); err != nil {
			return "", "", fmt.Errorf("failed to create oauth user: %w", err)
		}
		u.logger.Infof("created oauth user %s", user.ID)
	}
	if !user.IsActive {
		return "", "", ErrAccountDisabled
	}

	return u.issueTokensPair(user)
}

func (u *UserUsecase) issueTokensPair(user *entity.User) (string, string, error) {
	accessToken, err := u.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := u.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return accessToken, refreshToken, nil
}

func oauthUsername(name, email string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return strings.ToLower(strings.ReplaceAll(name, " ", "."))
	}
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
