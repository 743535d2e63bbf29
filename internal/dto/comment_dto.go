package dto

import (
	"time"

	"github.com/natnaelw/vendora/internal/domain/entity"
)

// CreateCommentRequest is the payload for posting a root comment or a reply.
type CreateCommentRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Body      string  `json:"comment" binding:"required"`
	ParentID  *string `json:"parent_id"`
}

// ReactRequest selects which tally to toggle.
type ReactRequest struct {
	Kind string `json:"type" binding:"required,reactionkind"`
}

// CommentResponse is the wire form of a single comment, with reaction state
// computed for the requesting viewer.
type CommentResponse struct {
	ID          string         `json:"id"`
	ProductID   string         `json:"product_id"`
	UserID      string         `json:"user_id"`
	UserName    string         `json:"user_name"`
	Body        string         `json:"comment"`
	ParentID    *string        `json:"parent_id"`
	Reactions   map[string]int `json:"reactions"`
	UserReacted bool           `json:"user_reacted"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ThreadNodeResponse is a comment in its tree position: depth below the root
// and replies ordered by created_at ascending.
type ThreadNodeResponse struct {
	CommentResponse
	Depth   int                   `json:"depth"`
	Replies []*ThreadNodeResponse `json:"replies"`
}

// ThreadResponse is the full forest for one product. TotalCount includes
// nested replies regardless of how deep the tree goes.
type ThreadResponse struct {
	Comments   []*ThreadNodeResponse `json:"comments"`
	TotalCount int64                 `json:"total_count"`
}

// ReactionStateResponse is returned after a toggle so the caller can reflect
// the backend's authoritative state.
type ReactionStateResponse struct {
	CommentID   string         `json:"comment_id"`
	Reactions   map[string]int `json:"reactions"`
	UserReacted bool           `json:"user_reacted"`
}

// ToCommentResponse maps an entity to its wire form. The reacted flag is a
// property of (comment, viewer), so it is supplied by the caller.
func ToCommentResponse(c *entity.Comment, userReacted bool) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		ProductID: c.ProductID,
		UserID:    c.AuthorID,
		UserName:  c.AuthorName,
		Body:      c.Body,
		ParentID:  c.ParentID,
		Reactions: map[string]int{
			string(entity.ReactionLikes):  c.LikeCount,
			string(entity.ReactionHearts): c.HeartCount,
		},
		UserReacted: userReacted,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
