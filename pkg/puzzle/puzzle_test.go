package puzzle

import (
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/search"
)

var goal3 = Goal(3)

func TestNewState(t *testing.T) {
	tests := []struct {
		name    string
		tiles   []int
		wantErr bool
	}{
		{"goal", []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, false},
		{"two by two", []int{1, 2, 3, 0}, false},
		{"too short", []int{1, 2, 0}, true},
		{"duplicate", []int{1, 1, 3, 4, 5, 6, 7, 8, 0}, true},
		{"no blank", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, true},
		{"empty", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewState(tt.tiles...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewState() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidState) {
				t.Errorf("NewState() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidState)
			}
		})
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1,2,3,4,5,6,7,8,0", "1,2,3|4,5,6|7,8,_", false},
		{"1 2 3 4 5 6 7 _ 8", "1,2,3|4,5,6|7,_,8", false},
		{"1,2,3|4,5,6|0,7,8", "1,2,3|4,5,6|_,7,8", false},
		{"1,2,x,0", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := ParseState(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseState() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && s.String() != tt.want {
				t.Errorf("ParseState().String() = %q, want %q", s.String(), tt.want)
			}
		})
	}
}

func TestStateAccessors(t *testing.T) {
	s := MustState(1, 2, 3, 4, 0, 5, 6, 7, 8)
	if s.Side() != 3 {
		t.Errorf("Side() = %d, want 3", s.Side())
	}
	if s.BlankIndex() != 4 {
		t.Errorf("BlankIndex() = %d, want 4", s.BlankIndex())
	}
	if s.At(5) != 5 {
		t.Errorf("At(5) = %d, want 5", s.At(5))
	}
	want := "[[1, 2, 3],\n [4, 0, 5],\n [6, 7, 8]]"
	if got := s.Board(); got != want {
		t.Errorf("Board() =\n%s\nwant\n%s", got, want)
	}
	if Goal(2) != MustState(1, 2, 3, 0) {
		t.Errorf("Goal(2) = %v", Goal(2))
	}
}

func TestSuccessorOrder(t *testing.T) {
	center := MustState(1, 2, 3, 4, 0, 5, 6, 7, 8)
	got := center.Neighbors()
	want := []State{
		MustState(1, 0, 3, 4, 2, 5, 6, 7, 8), // north
		MustState(1, 2, 3, 4, 7, 5, 6, 0, 8), // south
		MustState(1, 2, 3, 0, 4, 5, 6, 7, 8), // west
		MustState(1, 2, 3, 4, 5, 0, 6, 7, 8), // east
	}
	if len(got) != len(want) {
		t.Fatalf("Neighbors() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	corner := MustState(0, 1, 2, 3, 4, 5, 6, 7, 8)
	if n := len(corner.Neighbors()); n != 2 {
		t.Errorf("corner Neighbors() len = %d, want 2", n)
	}
	edge := MustState(1, 0, 2, 3, 4, 5, 6, 7, 8)
	if n := len(edge.Neighbors()); n != 3 {
		t.Errorf("edge Neighbors() len = %d, want 3", n)
	}
}

func TestMoveBetween(t *testing.T) {
	a := MustState(1, 2, 3, 4, 5, 6, 7, 0, 8)
	m, ok := MoveBetween(a, goal3)
	if !ok || m != East {
		t.Errorf("MoveBetween() = %v, %v, want east, true", m, ok)
	}
	if _, ok := MoveBetween(a, a); ok {
		t.Error("MoveBetween(a, a) should fail")
	}
	if Move(9).String() != "unknown" {
		t.Errorf("Move(9).String() = %q", Move(9).String())
	}
}

func TestNew(t *testing.T) {
	if _, err := New(Goal(2), goal3); !errors.Is(err, errors.ErrCodeInvalidProblem) {
		t.Errorf("New() mismatched sizes error = %v, want %v", err, errors.ErrCodeInvalidProblem)
	}
	if _, err := New(State("\x01\x01\x00\x02"), Goal(2)); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("New() bad initial error = %v, want %v", err, errors.ErrCodeInvalidState)
	}
	p, err := FromTiles([]int{1, 2, 3, 4, 5, 6, 7, 0, 8}, nil)
	if err != nil {
		t.Fatalf("FromTiles() error = %v", err)
	}
	if p.Goal() != goal3 || p.Side() != 3 {
		t.Errorf("FromTiles() goal = %v side = %d", p.Goal(), p.Side())
	}
}

func TestHeuristics(t *testing.T) {
	tests := []struct {
		name      string
		state     State
		manhattan float64
		misplaced float64
	}{
		{"goal", goal3, 0, 0},
		{"one move", MustState(1, 2, 3, 4, 5, 6, 7, 0, 8), 1, 1},
		{"two moves", MustState(1, 2, 3, 4, 5, 6, 0, 7, 8), 2, 2},
		{"depth 4", MustState(1, 2, 3, 5, 0, 6, 4, 7, 8), 4, 4},
		{"reversed", MustState(8, 7, 6, 5, 4, 3, 2, 1, 0), 16, 8},
	}
	man, mis := Manhattan(goal3), Misplaced(goal3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := man(tt.state); got != tt.manhattan {
				t.Errorf("Manhattan() = %v, want %v", got, tt.manhattan)
			}
			if got := mis(tt.state); got != tt.misplaced {
				t.Errorf("Misplaced() = %v, want %v", got, tt.misplaced)
			}
			if got := Zero(tt.state); got != 0 {
				t.Errorf("Zero() = %v, want 0", got)
			}
		})
	}
}

func TestHeuristicFor(t *testing.T) {
	for _, name := range []string{HeuristicManhattan, HeuristicMisplaced, HeuristicZero} {
		if _, ok := HeuristicFor(name, goal3); !ok {
			t.Errorf("HeuristicFor(%q) not found", name)
		}
	}
	if _, ok := HeuristicFor("euclid", goal3); ok {
		t.Error("HeuristicFor(euclid) should fail")
	}
}

func TestSolvable(t *testing.T) {
	tests := []struct {
		name  string
		state State
		goal  State
		want  bool
	}{
		{"goal", goal3, goal3, true},
		{"swapped pair 3x3", MustState(2, 1, 3, 4, 5, 6, 7, 8, 0), goal3, false},
		{"depth 24", MustState(0, 7, 2, 4, 6, 1, 3, 5, 8), goal3, true},
		{"swapped pair 2x2", MustState(2, 1, 3, 0), Goal(2), false},
		{"rotated 2x2", MustState(3, 1, 0, 2), Goal(2), true},
		{"size mismatch", Goal(2), goal3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Solvable(tt.state, tt.goal); got != tt.want {
				t.Errorf("Solvable() = %v, want %v", got, tt.want)
			}
		})
	}

	// Even-width boards need the blank-row correction.
	rng := rand.New(rand.NewPCG(1, 2))
	g4 := Goal(4)
	for i := 0; i < 20; i++ {
		s, err := Shuffle(g4, 50, rng)
		if err != nil {
			t.Fatal(err)
		}
		if !Solvable(s, g4) {
			t.Errorf("Solvable(%v) = false for a shuffled 4x4", s)
		}
	}
}

func TestShuffle(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	if _, err := Shuffle(goal3, -1, rng); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Shuffle(-1) error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
	s, err := Shuffle(goal3, 0, rng)
	if err != nil || s != goal3 {
		t.Errorf("Shuffle(0) = %v, %v, want goal", s, err)
	}

	a, _ := Shuffle(goal3, 40, rand.New(rand.NewPCG(3, 4)))
	b, _ := Shuffle(goal3, 40, rand.New(rand.NewPCG(3, 4)))
	if a != b {
		t.Errorf("Shuffle() not deterministic for equal seeds: %v != %v", a, b)
	}
	if !Solvable(a, goal3) {
		t.Errorf("Shuffle() produced unsolvable %v", a)
	}
}

func TestSolveOneMove(t *testing.T) {
	p, err := New(MustState(1, 2, 3, 4, 5, 6, 7, 0, 8), goal3)
	if err != nil {
		t.Fatal(err)
	}
	strategies := []search.Strategy[State]{
		search.UniformCost[State](),
		search.AStar(Manhattan(goal3)),
		search.AStar(Misplaced(goal3)),
	}
	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			res := search.Search[State](p, s)
			if !res.Found() {
				t.Fatalf("Search() status = %v, want goal", res.Status)
			}
			n, _ := res.Node()
			if n.Depth != 1 || n.Cost != 1 {
				t.Errorf("Search() depth = %d cost = %v, want 1, 1", n.Depth, n.Cost)
			}
			path := res.Path()
			if len(path) != 2 || path[0] != p.Initial() || path[1] != goal3 {
				t.Errorf("Search().Path() = %v", path)
			}
		})
	}
}

func TestSolveAlreadyAtGoal(t *testing.T) {
	p, _ := New(goal3, goal3)
	strategies := []search.Strategy[State]{
		search.BreadthFirst[State](),
		search.DepthFirst[State](),
		search.UniformCost[State](),
		search.AStar(Manhattan(goal3)),
	}
	for _, s := range strategies {
		res := search.Search[State](p, s)
		n, ok := res.Node()
		if !ok || n.Depth != 0 || n.Cost != 0 || res.Expanded != 1 {
			t.Errorf("%s: found=%v depth=%d expanded=%d, want true 0 1",
				s.Name(), ok, n.Depth, res.Expanded)
		}
	}
}

func TestSolveUnsolvableExhausts(t *testing.T) {
	goal := Goal(2)
	p, err := New(MustState(2, 1, 3, 0), goal)
	if err != nil {
		t.Fatal(err)
	}
	if p.Solvable() {
		t.Fatal("Solvable() = true, want false")
	}
	strategies := []search.Strategy[State]{
		search.BreadthFirst[State](),
		search.UniformCost[State](),
		search.AStar(Manhattan(goal)),
	}
	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			res := search.Search[State](p, s)
			if res.Status != search.Exhausted {
				t.Fatalf("Search() status = %v, want exhausted", res.Status)
			}
			if res.Goal != search.None {
				t.Errorf("Search() goal = %d, want None", res.Goal)
			}
			// 4!/2 states are reachable.
			if res.Expanded != 12 {
				t.Errorf("Search() expanded = %d, want 12", res.Expanded)
			}
		})
	}
}

func TestSolveOptimalDepths(t *testing.T) {
	cases := []struct {
		state State
		depth int
	}{
		{MustState(1, 2, 3, 4, 5, 6, 0, 7, 8), 2},
		{MustState(1, 2, 3, 5, 0, 6, 4, 7, 8), 4},
		{MustState(1, 3, 6, 5, 0, 2, 4, 7, 8), 8},
		{MustState(1, 3, 6, 5, 0, 7, 4, 8, 2), 12},
		{MustState(1, 6, 7, 5, 0, 3, 4, 8, 2), 16},
	}
	for _, c := range cases {
		p, _ := New(c.state, goal3)
		strategies := []search.Strategy[State]{
			search.AStar(Manhattan(goal3)),
			search.AStar(Misplaced(goal3)),
			search.UniformCost[State](),
		}
		if c.depth > 12 {
			strategies = strategies[:2]
		}
		for _, s := range strategies {
			res := search.Search[State](p, s)
			n, ok := res.Node()
			if !ok {
				t.Fatalf("%v %s: status = %v", c.state, s.Name(), res.Status)
			}
			if got := n.Depth; got != c.depth {
				t.Errorf("%v %s: depth = %d, want %d", c.state, s.Name(), got, c.depth)
			}
		}
	}
}

func TestSolveBreadthFirstShortest(t *testing.T) {
	p, _ := New(MustState(1, 2, 3, 5, 0, 6, 4, 7, 8), goal3)
	res := search.Search[State](p, search.BreadthFirst[State]())
	if n, ok := res.Node(); !ok || n.Depth != 4 {
		t.Fatalf("BFS depth = %d, want 4", n.Depth)
	}
	path := res.Path()
	for i := 1; i < len(path); i++ {
		if _, ok := MoveBetween(path[i-1], path[i]); !ok {
			t.Errorf("path step %d: %v -> %v is not a move", i, path[i-1], path[i])
		}
	}
}
