package search

// Status is the state of a run.
type Status int

const (
	Running   Status = iota // frontier may still hold nodes
	Goal                    // a goal node was popped and accepted
	Exhausted               // frontier emptied without reaching the goal
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Goal:
		return "goal"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished (or abandoned) run.
type Result[S comparable] struct {
	Status   Status
	Tree     *Tree[S]
	Goal     NodeID // None unless Status == Goal
	Expanded int    // nodes accepted past the dominance check
	Strategy string
}

// Found reports whether a goal node was reached.
func (r Result[S]) Found() bool { return r.Status == Goal }

// Node returns the goal node, if any.
func (r Result[S]) Node() (Node[S], bool) {
	if !r.Found() {
		return Node[S]{}, false
	}
	return r.Tree.Node(r.Goal), true
}

// Path returns the states from the initial state to the goal, or nil.
func (r Result[S]) Path() []S {
	if !r.Found() {
		return nil
	}
	return r.Tree.Path(r.Goal)
}

// Run is a single search invocation, advanced one iteration at a time.
// A Run is not safe for concurrent use.
type Run[S comparable] struct {
	problem  Problem[S]
	strategy string
	frontier Frontier[S]
	tree     *Tree[S]
	best     map[S]float64

	status   Status
	goal     NodeID
	expanded int
	popped   int
}

// NewRun prepares a run whose frontier holds only the root node.
func NewRun[S comparable](p Problem[S], s Strategy[S]) *Run[S] {
	r := &Run[S]{
		problem:  p,
		strategy: s.Name(),
		frontier: s.NewFrontier(),
		tree:     NewTree[S](),
		best:     make(map[S]float64),
		goal:     None,
	}
	r.frontier.Seed(r.tree.AddRoot(p.Initial()))
	return r
}

// Step performs one iteration of the search loop and returns the new status.
// Once the run leaves Running further calls are no-ops.
func (r *Run[S]) Step() Status {
	if r.status != Running {
		return r.status
	}
	if r.frontier.Len() == 0 {
		r.status = Exhausted
		return r.status
	}

	id := r.frontier.Pop()
	r.popped++
	n := r.tree.Node(id)

	// A state already settled at an equal or lower cost is a dominated
	// re-derivation; ties keep the earliest path.
	if best, ok := r.best[n.State]; ok && n.Cost >= best {
		return r.status
	}
	r.best[n.State] = n.Cost
	r.expanded++

	if r.problem.GoalTest(n.State) {
		r.status, r.goal = Goal, id
		return r.status
	}

	r.frontier.Queue(r.tree, Expand(r.tree, id, r.problem))
	return r.status
}

// Status returns the current status.
func (r *Run[S]) Status() Status { return r.status }

// Expanded returns the number of nodes accepted so far.
func (r *Run[S]) Expanded() int { return r.expanded }

// Popped returns the number of frontier pops, dominated ones included.
func (r *Run[S]) Popped() int { return r.popped }

// FrontierLen returns the number of nodes waiting in the frontier.
func (r *Run[S]) FrontierLen() int { return r.frontier.Len() }

// Settled returns the number of distinct states in the best-cost table.
func (r *Run[S]) Settled() int { return len(r.best) }

// Result snapshots the run. For a run still Running the result reports
// Status Running and no goal.
func (r *Run[S]) Result() Result[S] {
	return Result[S]{
		Status:   r.status,
		Tree:     r.tree,
		Goal:     r.goal,
		Expanded: r.expanded,
		Strategy: r.strategy,
	}
}

// Search runs p to completion under strategy s.
func Search[S comparable](p Problem[S], s Strategy[S]) Result[S] {
	r := NewRun(p, s)
	for r.Step() == Running {
	}
	return r.Result()
}
