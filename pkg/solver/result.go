package solver

import (
	"time"

	"github.com/matzehuels/bestfirst/pkg/render"
	"github.com/matzehuels/bestfirst/pkg/search"
)

// Result statuses. Goal and exhausted mirror [search.Status].
const (
	StatusGoal      = "goal"
	StatusExhausted = "exhausted"
	StatusTimeout   = "timeout"
)

// Step is one state on the solution path.
type Step struct {
	// State holds the tiles of a puzzle board or the queen columns.
	State []int   `json:"state"`
	Move  string  `json:"move,omitempty"`
	G     float64 `json:"g"`
	H     float64 `json:"h"`
}

// Result is the outcome of a solve.
type Result struct {
	ID        string  `json:"id"`
	Problem   string  `json:"problem"`
	Algorithm string  `json:"algorithm"`
	Status    string  `json:"status"`
	Depth     int     `json:"depth"` // -1 without a goal
	Cost      float64 `json:"cost"`
	Expanded  int     `json:"expanded"`
	Generated int     `json:"generated"`
	Path      []Step  `json:"path,omitempty"`

	DurationMS float64 `json:"duration_ms"`
	Cached     bool    `json:"cached"`

	Graph *render.Graph `json:"-"`
}

// Found reports whether a goal was reached.
func (r *Result) Found() bool { return r.Status == StatusGoal }

// Duration returns the search time.
func (r *Result) Duration() time.Duration {
	return time.Duration(r.DurationMS * float64(time.Millisecond))
}

// encoding describes how to present states of type S.
type encoding[S comparable] struct {
	values    func(S) []int
	label     func(S) string
	heuristic search.Heuristic[S]
	move      func(from, to S) string
}

func newResult[S comparable](sr search.Result[S], enc encoding[S], opts *render.Options) *Result {
	res := &Result{
		Depth:     -1,
		Expanded:  sr.Expanded,
		Generated: sr.Tree.Len(),
	}
	switch sr.Status {
	case search.Goal:
		res.Status = StatusGoal
	case search.Exhausted:
		res.Status = StatusExhausted
	default:
		res.Status = StatusTimeout
	}

	if n, ok := sr.Node(); ok {
		res.Depth, res.Cost = n.Depth, n.Cost
		res.Path = pathSteps(sr, enc)
	}
	if opts != nil {
		res.Graph = render.FromTree(sr.Tree, sr.Goal, enc.label, *opts)
	}
	return res
}

func pathSteps[S comparable](sr search.Result[S], enc encoding[S]) []Step {
	var ids []search.NodeID
	for id := sr.Goal; id != search.None; id = sr.Tree.Node(id).Parent {
		ids = append(ids, id)
	}

	steps := make([]Step, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		n := sr.Tree.Node(ids[i])
		step := Step{State: enc.values(n.State), G: n.Cost}
		if enc.heuristic != nil {
			step.H = enc.heuristic(n.State)
		}
		if !n.IsRoot() && enc.move != nil {
			step.Move = enc.move(sr.Tree.Node(n.Parent).State, n.State)
		}
		steps = append(steps, step)
	}
	return steps
}
