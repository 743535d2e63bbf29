// Package engine assembles product comment threads into a render-ready
// forest and orchestrates mutations against the comments backend. It is the
// storefront-side counterpart of the comments service: every mutation is
// followed by a full thread reload, so the backend stays the source of truth
// and no optimistic patching is needed.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/natnaelw/vendora/internal/domain/contract"
	"github.com/natnaelw/vendora/internal/dto"
	usecasecontract "github.com/natnaelw/vendora/internal/usecase/contract"
)

// AuthProvider is the hosting application's auth collaborator. The engine
// never manages credentials itself.
type AuthProvider interface {
	IsAuthenticated() bool
	CurrentUser() (id, name string)
	AccessToken() string
}

// ThreadNode is one comment in tree position: depth below its root and
// replies ordered created_at ascending.
type ThreadNode struct {
	ID          string
	ProductID   string
	UserID      string
	UserName    string
	Body        string
	ParentID    *string
	Reactions   map[string]int
	UserReacted bool
	CreatedAt   time.Time
	Depth       int
	Replies     []*ThreadNode
}

type Engine struct {
	api    *Client
	auth   AuthProvider
	logger usecasecontract.IAppLogger

	roots      []*ThreadNode
	totalCount int64
	state      *viewState
}

func New(api *Client, auth AuthProvider, logger usecasecontract.IAppLogger) *Engine {
	return &Engine{
		api:    api,
		auth:   auth,
		logger: logger,
		state:  newViewState(),
	}
}

// Thread reads

// LoadThread fetches the full comment forest and total count for a product.
// Reads fail open: on any backend failure the engine presents an empty
// thread and a zero count instead of propagating the error, since comments
// must never break product-page rendering. Every load resets all per-node
// view state to the default expansion policy.
func (e *Engine) LoadThread(ctx context.Context, productID string) ([]*ThreadNode, int64) {
	var viewerID *string
	if e.auth.IsAuthenticated() {
		id, _ := e.auth.CurrentUser()
		viewerID = &id
	}

	thread, err := e.api.FetchThread(ctx, productID, viewerID)
	if err != nil {
		e.logger.Errorf("comment thread load failed, showing empty thread: %v", &FetchError{Op: "thread", Err: err})
		e.roots = nil
		e.totalCount = 0
		e.state.reset(nil)
		return nil, 0
	}

	count, err := e.api.FetchCount(ctx, productID)
	if err != nil {
		e.logger.Errorf("comment count load failed, falling back to thread total: %v", err)
		count = thread.TotalCount
	}

	e.roots = buildForest(thread.Comments)
	e.totalCount = count
	e.state.reset(e.roots)
	return e.roots, e.totalCount
}

// Thread returns the forest from the last load.
func (e *Engine) Thread() []*ThreadNode { return e.roots }

// TotalCount returns the product's comment count including nested replies,
// independent of which nodes are currently expanded.
func (e *Engine) TotalCount() int64 { return e.totalCount }

// Mutations

// PostComment submits a root comment (nil parentID) or a reply, then reloads
// the thread. The typed draft survives a failed submission so the viewer can
// retry without retyping.
func (e *Engine) PostComment(ctx context.Context, productID, body string, parentID *string) error {
	token, err := e.requireAuth()
	if err != nil {
		return err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return ErrEmptyBody
	}

	_, err = e.api.PostComment(ctx, token, dto.CreateCommentRequest{
		ProductID: productID,
		Body:      body,
		ParentID:  parentID,
	})
	if err != nil {
		return &MutationError{Op: "post comment", Err: err}
	}

	if parentID != nil {
		s := e.state.get(*parentID)
		s.Composing = false
		s.Draft = ""
	}
	e.LoadThread(ctx, productID)
	return nil
}

// ToggleReaction flips the viewer's reaction of one kind on a comment and
// reloads the thread. Each call flips state, so two awaited calls with the
// same kind restore the original tallies. Backend failures are logged and
// swallowed; the pre-toggle state stands until the next reload corrects it.
func (e *Engine) ToggleReaction(ctx context.Context, productID, commentID, kind string) error {
	token, err := e.requireAuth()
	if err != nil {
		return err
	}

	if _, err := e.api.ToggleReaction(ctx, token, commentID, kind); err != nil {
		e.logger.Warnf("reaction toggle failed for comment %s: %v", commentID, err)
		return nil
	}

	e.LoadThread(ctx, productID)
	return nil
}

// DeleteComment removes the viewer's own comment after an explicit
// confirmation gate, then reloads the thread. An unconfirmed call never
// reaches the backend.
func (e *Engine) DeleteComment(ctx context.Context, productID, commentID string, confirmed bool) error {
	token, err := e.requireAuth()
	if err != nil {
		return err
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	if err := e.api.DeleteComment(ctx, token, commentID); err != nil {
		return &MutationError{Op: "delete comment", Err: err}
	}

	e.LoadThread(ctx, productID)
	return nil
}

// Affordances

// CanReply reports whether the reply affordance is offered on a node: the
// viewer must be signed in and the node must sit above the nesting bound.
func (e *Engine) CanReply(node *ThreadNode) bool {
	return e.auth.IsAuthenticated() && node.Depth < contract.MaxReplyDepth
}

// CanDelete reports whether the delete affordance is offered: self-delete
// only.
func (e *Engine) CanDelete(node *ThreadNode) bool {
	if !e.auth.IsAuthenticated() {
		return false
	}
	viewerID, _ := e.auth.CurrentUser()
	return node.UserID == viewerID
}

// View state

// NodeState exposes a node's current view state.
func (e *Engine) NodeState(commentID string) NodeState {
	return *e.state.get(commentID)
}

// ToggleReplies flips a node between collapsed and expanded.
func (e *Engine) ToggleReplies(commentID string) {
	s := e.state.get(commentID)
	s.Expanded = !s.Expanded
}

// BeginReply opens the inline composer under a node. Gated the same way the
// affordance is rendered.
func (e *Engine) BeginReply(node *ThreadNode) error {
	if !e.auth.IsAuthenticated() {
		return ErrAuthRequired
	}
	if node.Depth >= contract.MaxReplyDepth {
		return ErrReplyDepth
	}
	e.state.get(node.ID).Composing = true
	return nil
}

// CancelReply closes the composer and discards the draft.
func (e *Engine) CancelReply(commentID string) {
	s := e.state.get(commentID)
	s.Composing = false
	s.Draft = ""
}

// SetDraft stores in-progress composer text so it survives re-renders and
// failed submissions.
func (e *Engine) SetDraft(commentID, text string) {
	e.state.get(commentID).Draft = text
}

func (e *Engine) requireAuth() (string, error) {
	if !e.auth.IsAuthenticated() {
		return "", ErrAuthRequired
	}
	return e.auth.AccessToken(), nil
}

// buildForest converts the wire forest into engine nodes, carrying depth
// explicitly through the traversal.
func buildForest(comments []*dto.ThreadNodeResponse) []*ThreadNode {
	nodes := make([]*ThreadNode, 0, len(comments))
	for _, c := range comments {
		nodes = append(nodes, buildNode(c, 0))
	}
	return nodes
}

func buildNode(c *dto.ThreadNodeResponse, depth int) *ThreadNode {
	node := &ThreadNode{
		ID:          c.ID,
		ProductID:   c.ProductID,
		UserID:      c.UserID,
		UserName:    c.UserName,
		Body:        c.Body,
		ParentID:    c.ParentID,
		Reactions:   c.Reactions,
		UserReacted: c.UserReacted,
		CreatedAt:   c.CreatedAt,
		Depth:       depth,
	}
	for _, r := range c.Replies {
		node.Replies = append(node.Replies, buildNode(r, depth+1))
	}
	return node
}
