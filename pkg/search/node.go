package search

// NodeID addresses a node inside a [Tree].
type NodeID int

// None is the parent of a root node and the goal of an exhausted run.
const None NodeID = -1

// Node is one point of the search tree.
type Node[S comparable] struct {
	State  S
	Parent NodeID
	Depth  int     // edges from the root
	Cost   float64 // g: accumulated step cost from the root
	Eval   float64 // f: priority used by cost-aware strategies
}

// IsRoot reports whether the node has no parent.
func (n Node[S]) IsRoot() bool { return n.Parent == None }

// Tree is the arena holding every node generated during one run.
// Nodes are never removed or re-parented once added.
type Tree[S comparable] struct {
	nodes []Node[S]
}

// NewTree returns an empty tree.
func NewTree[S comparable]() *Tree[S] {
	return &Tree[S]{}
}

// Add appends n and returns its id.
func (t *Tree[S]) Add(n Node[S]) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// AddRoot adds a root node for state with zero depth and cost.
func (t *Tree[S]) AddRoot(state S) NodeID {
	return t.Add(Node[S]{State: state, Parent: None})
}

// Node returns a copy of the node with the given id.
func (t *Tree[S]) Node(id NodeID) Node[S] {
	return t.nodes[id]
}

// SetEval records the priority a strategy assigned to id.
func (t *Tree[S]) SetEval(id NodeID, f float64) {
	t.nodes[id].Eval = f
}

// Len returns the number of generated nodes.
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Path returns the states from the root to id, inclusive.
func (t *Tree[S]) Path(id NodeID) []S {
	if id == None {
		return nil
	}
	path := make([]S, 0, t.nodes[id].Depth+1)
	for ; id != None; id = t.nodes[id].Parent {
		path = append(path, t.nodes[id].State)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Nodes returns the ids of all generated nodes in creation order.
func (t *Tree[S]) Nodes() []NodeID {
	ids := make([]NodeID, len(t.nodes))
	for i := range ids {
		ids[i] = NodeID(i)
	}
	return ids
}
