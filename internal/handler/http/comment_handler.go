package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/natnaelw/vendora/internal/domain/contract"
	"github.com/natnaelw/vendora/internal/domain/entity"
	"github.com/natnaelw/vendora/internal/dto"
	"github.com/natnaelw/vendora/internal/infrastructure/metrics"
	"github.com/natnaelw/vendora/internal/usecase"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
)

type CommentHandler struct {
	commentUC usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUC usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUC: commentUC,
	}
}

// Thread reads

// GetProductComments returns the full nested thread of a product. Anonymous
// viewers get user_reacted=false everywhere; a signed-in viewer (bearer token
// or viewer query param) gets their own flags.
func (h *CommentHandler) GetProductComments(c *gin.Context) {
	productID := c.Param("productID")
	if productID == "" {
		ErrorHandler(c, http.StatusBadRequest, "product ID is required")
		return
	}

	viewerID := viewerFromContext(c)

	thread, err := h.commentUC.GetProductThread(c.Request.Context(), productID, viewerID)
	if err != nil {
		if errors.Is(err, contract.ErrProductNotFound) {
			ErrorHandler(c, http.StatusNotFound, "product not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "failed to load comments")
		return
	}

	metrics.ThreadLoads.Inc()
	SuccessHandler(c, http.StatusOK, thread)
}

func (h *CommentHandler) GetProductCommentsCount(c *gin.Context) {
	productID := c.Param("productID")
	if productID == "" {
		ErrorHandler(c, http.StatusBadRequest, "product ID is required")
		return
	}

	count, err := h.commentUC.GetProductCommentCount(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, contract.ErrProductNotFound) {
			ErrorHandler(c, http.StatusNotFound, "product not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "failed to count comments")
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{"product_id": productID, "total_count": count})
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID := c.Param("commentID")
	if commentID == "" {
		ErrorHandler(c, http.StatusBadRequest, "comment ID is required")
		return
	}

	viewerID := viewerFromContext(c)

	comment, err := h.commentUC.GetComment(c.Request.Context(), commentID, viewerID)
	if err != nil {
		if errors.Is(err, contract.ErrCommentNotFound) {
			ErrorHandler(c, http.StatusNotFound, "comment not found")
			return
		}
		ErrorHandler(c, http.StatusInternalServerError, "failed to load comment")
		return
	}

	SuccessHandler(c, http.StatusOK, comment)
}

// Mutations

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	comment, err := h.commentUC.CreateComment(c.Request.Context(), req, userID.(string))
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrProductNotFound):
			ErrorHandler(c, http.StatusNotFound, "product not found")
		case errors.Is(err, contract.ErrCommentNotFound):
			ErrorHandler(c, http.StatusNotFound, "parent comment not found")
		case errors.Is(err, usecase.ErrMaxDepthExceeded):
			ErrorHandler(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, usecase.ErrEmptyBody),
			errors.Is(err, usecase.ErrBodyTooLong),
			errors.Is(err, usecase.ErrParentMismatch):
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		default:
			ErrorHandler(c, http.StatusInternalServerError, "failed to create comment")
		}
		return
	}

	metrics.CommentsCreated.Inc()
	SuccessHandler(c, http.StatusCreated, comment)
}

func (h *CommentHandler) ToggleReaction(c *gin.Context) {
	var req dto.ReactRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	commentID := c.Param("commentID")
	if commentID == "" {
		ErrorHandler(c, http.StatusBadRequest, "comment ID is required")
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	state, err := h.commentUC.ToggleReaction(c.Request.Context(), commentID, userID.(string), entity.ReactionKind(req.Kind))
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrCommentNotFound):
			ErrorHandler(c, http.StatusNotFound, "comment not found")
		case errors.Is(err, usecase.ErrInvalidReaction):
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		default:
			ErrorHandler(c, http.StatusInternalServerError, "failed to toggle reaction")
		}
		return
	}

	metrics.ReactionsToggled.WithLabelValues(req.Kind).Inc()
	SuccessHandler(c, http.StatusOK, state)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID := c.Param("commentID")
	if commentID == "" {
		ErrorHandler(c, http.StatusBadRequest, "comment ID is required")
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	err := h.commentUC.DeleteComment(c.Request.Context(), commentID, userID.(string))
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrCommentNotFound):
			ErrorHandler(c, http.StatusNotFound, "comment not found")
		case errors.Is(err, usecase.ErrNotOwner):
			ErrorHandler(c, http.StatusForbidden, err.Error())
		default:
			ErrorHandler(c, http.StatusInternalServerError, "failed to delete comment")
		}
		return
	}

	metrics.CommentsDeleted.Inc()
	MessageHandler(c, http.StatusOK, "comment deleted successfully")
}
