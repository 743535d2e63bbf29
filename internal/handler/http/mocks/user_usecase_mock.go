package mocks

import (
	"context"
	"errors"

	"github.com/natnaelw/vendora/internal/domain/entity"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the user usecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	ShouldFailLogin          bool
	ShouldFailGetByID        bool
	ShouldFailRefreshToken   bool
	ShouldFailAuthenticate   bool
	ShouldFailLoginWithOAuth bool

	// Return values
	MockUser         entity.User
	MockAccessToken  string
	MockRefreshToken string
}

var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleCustomer,
			IsActive: true,
		},
		MockAccessToken:  "mock_access_token",
		MockRefreshToken: "mock_refresh_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, errors.New("user creation failed")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, string, error) {
	if m.ShouldFailLogin {
		return nil, "", "", errors.New("login failed")
	}
	return &m.MockUser, m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("user not found")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	if m.ShouldFailRefreshToken {
		return "", "", errors.New("refresh token invalid")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, errors.New("invalid token")
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, name, email string) (string, string, error) {
	if m.ShouldFailLoginWithOAuth {
		return "", "", errors.New("oauth login failed")
	}
	return m.MockAccessToken, m.MockRefreshToken, nil
}
