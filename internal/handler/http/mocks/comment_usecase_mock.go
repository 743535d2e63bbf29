package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/natnaelw/vendora/internal/domain/contract"
	"github.com/natnaelw/vendora/internal/domain/entity"
	"github.com/natnaelw/vendora/internal/dto"
	"github.com/natnaelw/vendora/internal/usecase"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
)

// MockCommentUsecase is a mock implementation of the comment usecase interface
type MockCommentUsecase struct {
	// Control mock behavior
	ShouldFailGetThread      bool
	ShouldFailGetCount       bool
	ShouldFailGetComment     bool
	ShouldFailCreate         bool
	ShouldFailToggleReaction bool
	ShouldFailDelete         bool

	// Error overrides for specific failure paths
	CreateErr error
	DeleteErr error

	// Return values
	MockThread   dto.ThreadResponse
	MockComment  dto.CommentResponse
	MockReaction dto.ReactionStateResponse

	// Captured arguments for assertions
	LastViewerID *string
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	root := dto.CommentResponse{
		ID:        "c1",
		ProductID: "p1",
		UserID:    "u1",
		UserName:  "testuser",
		Body:      "Great product!",
		Reactions: map[string]int{
			string(entity.ReactionLikes):  2,
			string(entity.ReactionHearts): 0,
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return &MockCommentUsecase{
		MockThread: dto.ThreadResponse{
			Comments: []*dto.ThreadNodeResponse{
				{CommentResponse: root, Depth: 0},
			},
			TotalCount: 1,
		},
		MockComment: root,
		MockReaction: dto.ReactionStateResponse{
			CommentID: "c1",
			Reactions: map[string]int{
				string(entity.ReactionLikes):  3,
				string(entity.ReactionHearts): 0,
			},
			UserReacted: true,
		},
	}
}

func (m *MockCommentUsecase) GetProductThread(ctx context.Context, productID string, viewerID *string) (*dto.ThreadResponse, error) {
	m.LastViewerID = viewerID
	if m.ShouldFailGetThread {
		return nil, errors.New("failed to load thread")
	}
	return &m.MockThread, nil
}

func (m *MockCommentUsecase) GetProductCommentCount(ctx context.Context, productID string) (int64, error) {
	if m.ShouldFailGetCount {
		return 0, errors.New("failed to count comments")
	}
	return m.MockThread.TotalCount, nil
}

func (m *MockCommentUsecase) GetComment(ctx context.Context, commentID string, viewerID *string) (*dto.CommentResponse, error) {
	m.LastViewerID = viewerID
	if m.ShouldFailGetComment {
		return nil, contract.ErrCommentNotFound
	}
	return &m.MockComment, nil
}

func (m *MockCommentUsecase) CreateComment(ctx context.Context, req dto.CreateCommentRequest, userID string) (*dto.CommentResponse, error) {
	if m.ShouldFailCreate {
		if m.CreateErr != nil {
			return nil, m.CreateErr
		}
		return nil, errors.New("comment creation failed")
	}
	created := m.MockComment
	created.Body = req.Body
	created.ParentID = req.ParentID
	created.UserID = userID
	return &created, nil
}

func (m *MockCommentUsecase) ToggleReaction(ctx context.Context, commentID, userID string, kind entity.ReactionKind) (*dto.ReactionStateResponse, error) {
	if m.ShouldFailToggleReaction {
		return nil, errors.New("reaction toggle failed")
	}
	if !kind.IsValid() {
		return nil, usecase.ErrInvalidReaction
	}
	return &m.MockReaction, nil
}

func (m *MockCommentUsecase) DeleteComment(ctx context.Context, commentID, userID string) error {
	if m.ShouldFailDelete {
		if m.DeleteErr != nil {
			return m.DeleteErr
		}
		return errors.New("comment deletion failed")
	}
	return nil
}
