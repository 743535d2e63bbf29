package engine

// AutoExpandDepth is the expansion threshold: replies at depth below it are
// shown by default, deeper levels stay collapsed until toggled.
const AutoExpandDepth = 2

// NodeState is the per-node view state. It is never persisted and does not
// survive a thread reload.
type NodeState struct {
	Expanded  bool
	Composing bool
	Draft     string
}

// viewState tracks node states between reloads, keyed by comment ID.
type viewState struct {
	nodes map[string]*NodeState
}

func newViewState() *viewState {
	return &viewState{nodes: make(map[string]*NodeState)}
}

// reset drops all state and seeds the default expansion policy for the
// freshly loaded forest.
func (v *viewState) reset(roots []*ThreadNode) {
	v.nodes = make(map[string]*NodeState)
	var seed func(nodes []*ThreadNode)
	seed = func(nodes []*ThreadNode) {
		for _, n := range nodes {
			v.nodes[n.ID] = &NodeState{Expanded: n.Depth < AutoExpandDepth}
			seed(n.Replies)
		}
	}
	seed(roots)
}

func (v *viewState) get(commentID string) *NodeState {
	if s, ok := v.nodes[commentID]; ok {
		return s
	}
	s := &NodeState{}
	v.nodes[commentID] = s
	return s
}
