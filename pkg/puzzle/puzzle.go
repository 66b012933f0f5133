package puzzle

import (
	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/search"
)

// Move is a direction the blank travels.
type Move int

// Moves in successor order.
const (
	North Move = iota
	South
	West
	East
)

var moveNames = [...]string{"north", "south", "west", "east"}

func (m Move) String() string {
	if m < North || m > East {
		return "unknown"
	}
	return moveNames[m]
}

// Apply slides the blank in direction m. It reports false when the blank
// would leave the board.
func (s State) Apply(m Move) (State, bool) {
	side := s.Side()
	blank := s.BlankIndex()
	row, col := blank/side, blank%side

	switch m {
	case North:
		row--
	case South:
		row++
	case West:
		col--
	case East:
		col++
	default:
		return s, false
	}
	if row < 0 || row >= side || col < 0 || col >= side {
		return s, false
	}

	target := row*side + col
	b := []byte(s)
	b[blank], b[target] = b[target], b[blank]
	return State(b), true
}

// Neighbors returns every state one move away, in successor order.
func (s State) Neighbors() []State {
	out := make([]State, 0, 4)
	for m := North; m <= East; m++ {
		if next, ok := s.Apply(m); ok {
			out = append(out, next)
		}
	}
	return out
}

// MoveBetween returns the move that turns a into b.
func MoveBetween(a, b State) (Move, bool) {
	for m := North; m <= East; m++ {
		if next, ok := a.Apply(m); ok && next == b {
			return m, true
		}
	}
	return 0, false
}

// Puzzle is a sliding-tile search problem.
type Puzzle struct {
	initial State
	goal    State
}

var _ search.Problem[State] = (*Puzzle)(nil)

// New validates initial and goal and returns the problem. Both states must
// be well-formed boards of the same size.
func New(initial, goal State) (*Puzzle, error) {
	for _, s := range []State{initial, goal} {
		if _, err := NewState(s.Tiles()...); err != nil {
			return nil, err
		}
	}
	if initial.Len() != goal.Len() {
		return nil, errors.New(errors.ErrCodeInvalidProblem,
			"initial has %d tiles but goal has %d", initial.Len(), goal.Len())
	}
	return &Puzzle{initial: initial, goal: goal}, nil
}

// FromTiles builds a problem from raw labels. An empty goal selects the
// canonical goal for the board size.
func FromTiles(initial, goal []int) (*Puzzle, error) {
	start, err := NewState(initial...)
	if err != nil {
		return nil, err
	}
	end := Goal(start.Side())
	if len(goal) > 0 {
		if end, err = NewState(goal...); err != nil {
			return nil, err
		}
	}
	return New(start, end)
}

func (p *Puzzle) Initial() State             { return p.initial }
func (p *Puzzle) Goal() State                { return p.goal }
func (p *Puzzle) Side() int                  { return p.initial.Side() }
func (p *Puzzle) GoalTest(s State) bool      { return s == p.goal }
func (p *Puzzle) Successors(s State) []State { return s.Neighbors() }

// Solvable reports whether the goal is reachable from the initial state.
func (p *Puzzle) Solvable() bool { return Solvable(p.initial, p.goal) }

// Solvable reports whether b is reachable from a. Sliding the blank
// preserves the parity of the tile inversions, corrected on even-width
// boards by the blank's row.
func Solvable(a, b State) bool {
	return a.Len() == b.Len() && parity(a) == parity(b)
}

func parity(s State) int {
	inv := 0
	for i := 0; i < len(s); i++ {
		if s[i] == Blank {
			continue
		}
		for j := i + 1; j < len(s); j++ {
			if s[j] != Blank && s[j] < s[i] {
				inv++
			}
		}
	}
	if side := s.Side(); side%2 == 0 {
		inv += s.BlankIndex() / side
	}
	return inv % 2
}
