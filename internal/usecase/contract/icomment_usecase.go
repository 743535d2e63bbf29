package usecasecontract

import (
	"context"

	"github.com/natnaelw/vendora/internal/domain/entity"
	"github.com/natnaelw/vendora/internal/dto"
)

type ICommentUseCase interface {
	// Thread reads. viewerID scopes user_reacted; nil means anonymous.
	GetProductThread(ctx context.Context, productID string, viewerID *string) (*dto.ThreadResponse, error)
	GetProductCommentCount(ctx context.Context, productID string) (int64, error)
	GetComment(ctx context.Context, commentID string, viewerID *string) (*dto.CommentResponse, error)

	// Mutations
	CreateComment(ctx context.Context, req dto.CreateCommentRequest, userID string) (*dto.CommentResponse, error)
	ToggleReaction(ctx context.Context, commentID, userID string, kind entity.ReactionKind) (*dto.ReactionStateResponse, error)
	DeleteComment(ctx context.Context, commentID, userID string) error
}
