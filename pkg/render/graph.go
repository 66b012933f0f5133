package render

import "github.com/matzehuels/bestfirst/pkg/search"

// DefaultMaxNodes bounds the diagram size when Options.MaxNodes is zero.
const DefaultMaxNodes = 500

// Options controls which tree nodes are drawn.
type Options struct {
	// MaxNodes caps the number of off-path nodes. Path nodes are always kept.
	MaxNodes int
	// PathOnly drops every node not on the solution path.
	PathOnly bool
	// Detailed adds depth, g and f to each label.
	Detailed bool
}

// Node is one drawn search node.
type Node struct {
	ID     int
	Parent int // -1 for the root
	Label  string
	Depth  int
	Cost   float64
	Eval   float64
	OnPath bool
	Goal   bool
}

// Graph is the drawable subset of a search tree.
type Graph struct {
	Nodes    []Node
	Detailed bool
	// Omitted counts generated nodes left out of the drawing.
	Omitted int
}

// FromTree collects nodes from t. goal may be search.None, in which case no
// path is highlighted. label renders a state.
func FromTree[S comparable](t *search.Tree[S], goal search.NodeID, label func(S) string, opts Options) *Graph {
	limit := opts.MaxNodes
	if limit <= 0 {
		limit = DefaultMaxNodes
	}

	onPath := make(map[search.NodeID]bool)
	for id := goal; id != search.None; id = t.Node(id).Parent {
		onPath[id] = true
	}

	g := &Graph{Detailed: opts.Detailed}
	kept := 0
	for _, id := range t.Nodes() {
		path := onPath[id]
		if !path && (opts.PathOnly || kept >= limit) {
			g.Omitted++
			continue
		}
		if !path {
			kept++
		}
		n := t.Node(id)
		g.Nodes = append(g.Nodes, Node{
			ID:     int(id),
			Parent: int(n.Parent),
			Label:  label(n.State),
			Depth:  n.Depth,
			Cost:   n.Cost,
			Eval:   n.Eval,
			OnPath: path,
			Goal:   path && id == goal,
		})
	}
	return g
}

// Len returns the number of drawn nodes.
func (g *Graph) Len() int { return len(g.Nodes) }
