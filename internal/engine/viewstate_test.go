package engine_test

import (
	"context"
	"testing"

	"github.com/natnaelw/vendora/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstChain walks the first-reply chain of the loaded thread and returns
// node IDs ordered by depth.
func firstChain(e *engine.Engine) []string {
	var ids []string
	nodes := e.Thread()
	for len(nodes) > 0 {
		ids = append(ids, nodes[0].ID)
		nodes = nodes[0].Replies
	}
	return ids
}

// buildDeepThread posts a root with a chain of replies down to depth 3 and
// returns the node IDs by depth.
func buildDeepThread(t *testing.T, e *engine.Engine) []string {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.PostComment(ctx, "p1", "depth 0", nil))
	for i := 1; i <= 3; i++ {
		ids := firstChain(e)
		parent := ids[len(ids)-1]
		require.NoError(t, e.PostComment(ctx, "p1", "deeper", &parent))
	}
	return firstChain(e)
}

func TestViewState_DefaultExpansionPolicy(t *testing.T) {
	backend := newFakeBackend()
	e := newTestEngine(t, backend, &fakeAuth{authenticated: true, userID: "u1"})

	ids := buildDeepThread(t, e)
	require.Len(t, ids, 4)

	// First two levels auto-expanded, deeper levels collapsed.
	assert.True(t, e.NodeState(ids[0]).Expanded)
	assert.True(t, e.NodeState(ids[1]).Expanded)
	assert.False(t, e.NodeState(ids[2]).Expanded)
	assert.False(t, e.NodeState(ids[3]).Expanded)
}

func TestViewState_ToggleAndResetOnReload(t *testing.T) {
	backend := newFakeBackend()
	e := newTestEngine(t, backend, &fakeAuth{authenticated: true, userID: "u1"})
	ctx := context.Background()

	require.NoError(t, e.PostComment(ctx, "p1", "root", nil))
	id := e.Thread()[0].ID

	e.ToggleReplies(id)
	assert.False(t, e.NodeState(id).Expanded)
	e.ToggleReplies(id)
	assert.True(t, e.NodeState(id).Expanded)

	// Composer state does not survive a reload.
	root := e.Thread()[0]
	require.NoError(t, e.BeginReply(root))
	e.SetDraft(id, "in progress")
	e.ToggleReplies(id)

	e.LoadThread(ctx, "p1")
	state := e.NodeState(id)
	assert.True(t, state.Expanded)
	assert.False(t, state.Composing)
	assert.Empty(t, state.Draft)
}

func TestViewState_CancelReplyDiscardsDraft(t *testing.T) {
	backend := newFakeBackend()
	e := newTestEngine(t, backend, &fakeAuth{authenticated: true, userID: "u1"})
	ctx := context.Background()

	require.NoError(t, e.PostComment(ctx, "p1", "root", nil))
	root := e.Thread()[0]

	require.NoError(t, e.BeginReply(root))
	e.SetDraft(root.ID, "never mind")
	e.CancelReply(root.ID)

	state := e.NodeState(root.ID)
	assert.False(t, state.Composing)
	assert.Empty(t, state.Draft)
}
