package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natnaelw/vendora/internal/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// viewerFromContext resolves the optional viewer identity of a public read.
// Auth middleware takes precedence; the viewer query parameter covers
// storefront pages rendered before token exchange completes.
func viewerFromContext(c *gin.Context) *string {
	if userID, exists := c.Get("userID"); exists {
		if uid, ok := userID.(string); ok && uid != "" {
			return &uid
		}
	}
	if viewer := c.Query("viewer"); viewer != "" {
		return &viewer
	}
	return nil
}
