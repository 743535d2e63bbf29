package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natnaelw/vendora/internal/domain/contract"
	"github.com/natnaelw/vendora/internal/dto"
	"github.com/natnaelw/vendora/internal/usecase"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
)

type UserHandler struct {
	userUC usecasecontract.IUserUseCase
}

func NewUserHandler(userUC usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUC.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken), errors.Is(err, usecase.ErrUsernameTaken):
			ErrorHandler(c, http.StatusConflict, err.Error())
		default:
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(user))
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			ErrorHandler(c, http.StatusUnauthorized, err.Error())
		case errors.Is(err, usecase.ErrAccountDisabled):
			ErrorHandler(c, http.StatusForbidden, err.Error())
		default:
			ErrorHandler(c, http.StatusInternalServerError, "login failed")
		}
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	accessToken, refreshToken, err := h.userUC.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		ErrorHandler(c, http.StatusBadRequest, "user ID is required")
		return
	}

	user, err := h.userUC.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			ErrorHandler(c, http.StatusNotFound, "user not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "failed to load user")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	user, err := h.userUC.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "failed to load user")
		return
	}

	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(user))
}
