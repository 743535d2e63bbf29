package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/natnaelw/vendora/internal/domain/contract"
	"github.com/natnaelw/vendora/internal/domain/entity"
	"github.com/natnaelw/vendora/internal/dto"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
)

const maxBodyLength = 1000

var (
	ErrEmptyBody        = errors.New("comment body cannot be empty")
	ErrBodyTooLong      = errors.New("comment body too long (max 1000 characters)")
	ErrMaxDepthExceeded = errors.New("reply nesting depth limit exceeded")
	ErrParentMismatch   = errors.New("parent comment belongs to a different product")
	ErrNotOwner         = errors.New("unauthorized: can only delete your own comments")
	ErrInvalidReaction  = errors.New("unsupported reaction kind")
)

var _ usecasecontract.ICommentUseCase = (*CommentUseCase)(nil)

type CommentUseCase struct {
	commentRepo contract.ICommentRepository
	productRepo contract.IProductRepository
	userRepo    contract.IUserRepository
	cache       usecasecontract.IThreadCache
	logger      usecasecontract.IAppLogger
}

func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	productRepo contract.IProductRepository,
	userRepo contract.IUserRepository,
	logger usecasecontract.IAppLogger,
) *CommentUseCase {
	return &CommentUseCase{
		commentRepo: commentRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// SetThreadCache wires the optional Redis-backed thread cache. Callers that
// skip it get fresh assembly on every read.
func (uc *CommentUseCase) SetThreadCache(cache usecasecontract.IThreadCache) {
	uc.cache = cache
}

// GetProductThread assembles the comment forest for a product. Roots and
// replies are ordered created_at ascending; every node carries its depth and
// the viewer's reaction flag. Replies whose parent is missing from the fetch
// result are never rendered.
func (uc *CommentUseCase) GetProductThread(ctx context.Context, productID string, viewerID *string) (*dto.ThreadResponse, error) {
	// Anonymous threads carry no per-viewer state, so they are safe to
	// serve from cache.
	if viewerID == nil && uc.cache != nil {
		if cached, ok, err := uc.cache.GetThread(ctx, productID); err == nil && ok {
			return cached, nil
		}
	}

	comments, err := uc.commentRepo.GetByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product comments: %w", err)
	}

	total, err := uc.commentRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to count product comments: %w", err)
	}

	reacted := map[string]bool{}
	if viewerID != nil && len(comments) > 0 {
		ids := make([]string, len(comments))
		for i, c := range comments {
			ids[i] = c.ID
		}
		reacted, err = uc.commentRepo.GetUserReactions(ctx, *viewerID, ids)
		if err != nil {
			// Reaction flags are decoration; a failed lookup must not
			// take the whole thread down.
			uc.logger.Warnf("reaction lookup failed for viewer %s: %v", *viewerID, err)
			reacted = map[string]bool{}
		}
	}

	thread := &dto.ThreadResponse{
		Comments:   assembleForest(comments, reacted),
		TotalCount: total,
	}

	if viewerID == nil && uc.cache != nil {
		if err := uc.cache.SetThread(ctx, productID, thread); err != nil {
			uc.logger.Warnf("thread cache write failed for product %s: %v", productID, err)
		}
	}

	return thread, nil
}

func (uc *CommentUseCase) GetProductCommentCount(ctx context.Context, productID string) (int64, error) {
	if uc.cache != nil {
		if count, ok, err := uc.cache.GetCount(ctx, productID); err == nil && ok {
			return count, nil
		}
	}

	count, err := uc.commentRepo.CountByProduct(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to count product comments: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetCount(ctx, productID, count); err != nil {
			uc.logger.Warnf("count cache write failed for product %s: %v", productID, err)
		}
	}
	return count, nil
}

func (uc *CommentUseCase) GetComment(ctx context.Context, commentID string, viewerID *string) (*dto.CommentResponse, error) {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	userReacted := false
	if viewerID != nil {
		userReacted, _ = uc.commentRepo.HasUserReacted(ctx, commentID, *viewerID)
	}

	resp := dto.ToCommentResponse(comment, userReacted)
	return &resp, nil
}

// CreateComment persists a root comment or a reply. Replies must reference a
// live parent in the same product, and a parent already sitting at the
// maximum depth is rejected rather than silently accepted.
func (uc *CommentUseCase) CreateComment(ctx context.Context, req dto.CreateCommentRequest, userID string) (*dto.CommentResponse, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrEmptyBody
	}
	if len(body) > maxBodyLength {
		return nil, ErrBodyTooLong
	}

	if _, err := uc.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	if req.ParentID != nil && *req.ParentID != "" {
		parent, err := uc.commentRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("parent comment: %w", err)
		}
		if parent.ProductID != req.ProductID {
			return nil, ErrParentMismatch
		}
		depth, err := uc.commentDepth(ctx, parent)
		if err != nil {
			return nil, err
		}
		if depth+1 > contract.MaxReplyDepth {
			return nil, ErrMaxDepthExceeded
		}
	} else {
		req.ParentID = nil
	}

	authorName := ""
	if author, err := uc.userRepo.GetUserByID(ctx, userID); err == nil {
		authorName = author.Username
	}

	comment := &entity.Comment{
		ProductID:  req.ProductID,
		AuthorID:   userID,
		AuthorName: authorName,
		Body:       body,
		ParentID:   req.ParentID,
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if err := uc.productRepo.IncCommentCount(ctx, req.ProductID, 1); err != nil {
		uc.logger.Warnf("comment_count bump failed for product %s: %v", req.ProductID, err)
	}

	uc.invalidate(ctx, req.ProductID)

	resp := dto.ToCommentResponse(comment, false)
	return &resp, nil
}

// ToggleReaction flips the user's reaction of the given kind. Toggling twice
// with the same kind restores the original counts; counts never go negative
// because a remove only ever follows a matching add.
func (uc *CommentUseCase) ToggleReaction(ctx context.Context, commentID, userID string, kind entity.ReactionKind) (*dto.ReactionStateResponse, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidReaction
	}

	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.commentRepo.ToggleReaction(ctx, commentID, userID, kind); err != nil {
		return nil, fmt.Errorf("failed to toggle reaction: %w", err)
	}

	// Re-read for the authoritative counts rather than patching locally.
	updated, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	userReacted, err := uc.commentRepo.HasUserReacted(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, comment.ProductID)

	return &dto.ReactionStateResponse{
		CommentID: commentID,
		Reactions: map[string]int{
			string(entity.ReactionLikes):  updated.LikeCount,
			string(entity.ReactionHearts): updated.HeartCount,
		},
		UserReacted: userReacted,
	}, nil
}

// DeleteComment tombstones a comment and its whole reply subtree so the
// forest never shows a dangling parent. Owner-only.
func (uc *CommentUseCase) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != userID {
		return ErrNotOwner
	}

	siblings, err := uc.commentRepo.GetByProduct(ctx, comment.ProductID)
	if err != nil {
		return fmt.Errorf("failed to load product comments: %w", err)
	}

	ids := subtreeIDs(commentID, siblings)
	if err := uc.commentRepo.SoftDelete(ctx, ids); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if err := uc.productRepo.IncCommentCount(ctx, comment.ProductID, -len(ids)); err != nil {
		uc.logger.Warnf("comment_count decrement failed for product %s: %v", comment.ProductID, err)
	}

	uc.invalidate(ctx, comment.ProductID)
	return nil
}

// Helper Methods

func (uc *CommentUseCase) invalidate(ctx context.Context, productID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateProduct(ctx, productID); err != nil {
		uc.logger.Warnf("cache invalidation failed for product %s: %v", productID, err)
	}
}

// commentDepth walks the parent chain upward. The walk is bounded: anything
// past the cap is reported as too deep without chasing the full chain.
func (uc *CommentUseCase) commentDepth(ctx context.Context, comment *entity.Comment) (int, error) {
	depth := 0
	current := comment
	for current.ParentID != nil {
		if depth > contract.MaxReplyDepth {
			return depth, nil
		}
		parent, err := uc.commentRepo.GetByID(ctx, *current.ParentID)
		if err != nil {
			return 0, fmt.Errorf("broken parent chain at %s: %w", current.ID, err)
		}
		depth++
		current = parent
	}
	return depth, nil
}

// assembleForest turns the flat created_at-ordered list into root nodes with
// nested replies, carrying an explicit depth per node. Replies whose parent
// is absent from the list are dropped.
func assembleForest(comments []*entity.Comment, reacted map[string]bool) []*dto.ThreadNodeResponse {
	nodes := make(map[string]*dto.ThreadNodeResponse, len(comments))
	for _, c := range comments {
		node := &dto.ThreadNodeResponse{
			CommentResponse: dto.ToCommentResponse(c, reacted[c.ID]),
			Replies:         []*dto.ThreadNodeResponse{},
		}
		nodes[c.ID] = node
	}

	roots := []*dto.ThreadNodeResponse{}
	for _, c := range comments {
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok {
			// Orphaned reply: parent missing from this product's set.
			continue
		}
		parent.Replies = append(parent.Replies, node)
	}

	var setDepth func(node *dto.ThreadNodeResponse, depth int)
	setDepth = func(node *dto.ThreadNodeResponse, depth int) {
		node.Depth = depth
		for _, reply := range node.Replies {
			setDepth(reply, depth+1)
		}
	}
	for _, root := range roots {
		setDepth(root, 0)
	}

	return roots
}

// subtreeIDs collects the comment and every descendant reachable through the
// product's live comment set.
func subtreeIDs(rootID string, comments []*entity.Comment) []string {
	children := make(map[string][]string, len(comments))
	for _, c := range comments {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	ids := []string{rootID}
	queue := []string{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range children[id] {
			ids = append(ids, child)
			queue = append(queue, child)
		}
	}
	return ids
}
