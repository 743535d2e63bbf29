package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/natnaelw/vendora/internal/domain/contract"
	"github.com/natnaelw/vendora/internal/dto"
	handler "github.com/natnaelw/vendora/internal/handler/http"
	"github.com/natnaelw/vendora/internal/handler/http/mocks"
	"github.com/natnaelw/vendora/internal/infrastructure/validator"
	"github.com/natnaelw/vendora/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupCommentRouter(h *handler.CommentHandler, authedUserID string) *gin.Engine {
	r := gin.New()

	r.GET("/products/:productID/comments", h.GetProductComments)
	r.GET("/products/:productID/comments/count", h.GetProductCommentsCount)
	r.GET("/comments/:commentID", h.GetComment)

	setUser := func(c *gin.Context) {
		if authedUserID != "" {
			c.Set("userID", authedUserID)
		}
		c.Next()
	}
	r.POST("/comments", setUser, h.CreateComment)
	r.POST("/comments/:commentID/react", setUser, h.ToggleReaction)
	r.DELETE("/comments/:commentID", setUser, h.DeleteComment)
	return r
}

func TestGetProductComments(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products/p1/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var thread dto.ThreadResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &thread))
	assert.Len(t, thread.Comments, 1)
	assert.Equal(t, "Great product!", thread.Comments[0].Body)
	assert.Equal(t, int64(1), thread.TotalCount)
	assert.Nil(t, mockUC.LastViewerID)
}

func TestGetProductComments_ViewerQueryParam(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products/p1/comments?viewer=u2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	if assert.NotNil(t, mockUC.LastViewerID) {
		assert.Equal(t, "u2", *mockUC.LastViewerID)
	}
}

func TestGetProductComments_Fail(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	mockUC.ShouldFailGetThread = true
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products/p1/comments", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetProductCommentsCount(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/products/p1/comments/count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_count":1`)
}

func TestCreateComment(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "u1")

	payload := dto.CreateCommentRequest{ProductID: "p1", Body: "Great product!"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Great product!")
}

func TestCreateComment_Unauthenticated(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "")

	payload := dto.CreateCommentRequest{ProductID: "p1", Body: "Great product!"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateComment_MissingBody(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "u1")

	payload := dto.CreateCommentRequest{ProductID: "p1"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Body")
}

func TestCreateComment_DepthExceeded(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	mockUC.ShouldFailCreate = true
	mockUC.CreateErr = usecase.ErrMaxDepthExceeded
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "u1")

	parent := "c-deep"
	payload := dto.CreateCommentRequest{ProductID: "p1", Body: "too deep", ParentID: &parent}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateComment_ProductNotFound(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	mockUC.ShouldFailCreate = true
	mockUC.CreateErr = contract.ErrProductNotFound
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "u1")

	payload := dto.CreateCommentRequest{ProductID: "missing", Body: "hello"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleReaction(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "u2")

	body, _ := json.Marshal(dto.ReactRequest{Kind: "likes"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments/c1/react", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var state dto.ReactionStateResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, 3, state.Reactions["likes"])
	assert.True(t, state.UserReacted)
}

func TestToggleReaction_InvalidKind(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "u2")

	body, _ := json.Marshal(dto.ReactRequest{Kind: "stars"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/comments/c1/react", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteComment(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "u1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/c1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "comment deleted successfully")
}

func TestDeleteComment_NotOwner(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	mockUC.ShouldFailDelete = true
	mockUC.DeleteErr = usecase.ErrNotOwner
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "u2")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/c1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteComment_NotFound(t *testing.T) {
	mockUC := mocks.NewMockCommentUsecase()
	mockUC.ShouldFailDelete = true
	mockUC.DeleteErr = contract.ErrCommentNotFound
	h := handler.NewCommentHandler(mockUC)
	r := setupCommentRouter(h, "u1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
