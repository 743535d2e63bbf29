package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/natnaelw/vendora/internal/dto"
	handler "github.com/natnaelw/vendora/internal/handler/http"
	"github.com/natnaelw/vendora/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func setupUserRouter(h *handler.UserHandler) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.CreateUser)
	r.POST("/login", h.Login)
	r.POST("/refresh-token", h.RefreshToken)
	r.GET("/users/:id", h.GetUser)
	return r
}

func TestCreateUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)

	payload := dto.CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "Password123!",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestCreateUser_MissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)

	// Password omitted intentionally
	payload := dto.CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Password' failed on the 'required' tag")
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)

	payload := dto.LoginRequest{
		Email:    "test@example.com",
		Password: "Password123!",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mock_access_token", resp.AccessToken)
	assert.Equal(t, "mock-user-id", resp.User.ID)
}

func TestRefreshToken_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailRefreshToken = true
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)

	body, _ := json.Marshal(dto.RefreshTokenRequest{RefreshToken: "expired"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/refresh-token", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	h := handler.NewUserHandler(mockUsecase)
	r := setupUserRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/mock-user-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
}
