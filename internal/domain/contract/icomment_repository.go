package contract

import (
	"context"

	"github.com/natnaelw/vendora/internal/domain/entity"
)

// MaxReplyDepth bounds how deep a reply may sit below its root comment
// (root = depth 0, so depths 0 through MaxReplyDepth are allowed).
const MaxReplyDepth = 3

type ICommentRepository interface {
	// Core CRUD operations
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)

	// GetByProduct returns every live comment of a product, roots and
	// replies alike, ordered by created_at ascending.
	GetByProduct(ctx context.Context, productID string) ([]*entity.Comment, error)

	// SoftDelete tombstones the given comments in one pass.
	SoftDelete(ctx context.Context, ids []string) error

	// CountByProduct counts live comments including nested replies.
	CountByProduct(ctx context.Context, productID string) (int64, error)

	// Reaction system. ToggleReaction flips the viewer's reaction of the
	// given kind and reports whether it is now active.
	ToggleReaction(ctx context.Context, commentID, userID string, kind entity.ReactionKind) (bool, error)
	HasUserReacted(ctx context.Context, commentID, userID string) (bool, error)
	GetUserReactions(ctx context.Context, userID string, commentIDs []string) (map[string]bool, error)
}
