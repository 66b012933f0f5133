package queens

import (
	"testing"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/search"
)

func TestNew(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{1, false},
		{4, false},
		{8, false},
		{0, true},
		{-3, true},
		{errors.MaxQueens + 1, true},
	}
	for _, tt := range tests {
		_, err := New(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("New(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidProblem) {
			t.Errorf("New(%d) code = %v, want %v", tt.n, errors.GetCode(err), errors.ErrCodeInvalidProblem)
		}
	}
}

func TestSafe(t *testing.T) {
	p, _ := FromColumns(4, 1)
	tests := []struct {
		col  int
		want bool
	}{
		{0, false}, // diagonal
		{1, false}, // column
		{2, false}, // diagonal
		{3, true},
	}
	for _, tt := range tests {
		if got := p.Safe(tt.col); got != tt.want {
			t.Errorf("Safe(%d) = %v, want %v", tt.col, got, tt.want)
		}
	}
}

func TestSuccessors(t *testing.T) {
	q, _ := New(4)
	got := q.Successors(q.Initial())
	if len(got) != 4 {
		t.Fatalf("Successors(root) len = %d, want 4", len(got))
	}
	for i, p := range got {
		if p.Len() != 1 || int(p[0]) != i {
			t.Errorf("Successors(root)[%d] = %v, want [%d]", i, p, i)
		}
	}

	p, _ := FromColumns(4, 0)
	next := q.Successors(p)
	want := []string{"[0 2]", "[0 3]"}
	if len(next) != len(want) {
		t.Fatalf("Successors([0]) = %v, want %v", next, want)
	}
	for i := range want {
		if next[i].String() != want[i] {
			t.Errorf("Successors([0])[%d] = %v, want %v", i, next[i], want[i])
		}
	}

	full, _ := FromColumns(4, 1, 3, 0, 2)
	if s := q.Successors(full); s != nil {
		t.Errorf("Successors(full) = %v, want nil", s)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		cols []int
		want bool
	}{
		{nil, true},
		{[]int{1, 3, 0, 2}, true},
		{[]int{2, 0, 3, 1}, true},
		{[]int{0, 1}, false},
		{[]int{0, 2, 0}, false},
	}
	for _, tt := range tests {
		p, err := FromColumns(4, tt.cols...)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", p, got, tt.want)
		}
	}
}

func TestFromColumns(t *testing.T) {
	if _, err := FromColumns(4, 0, 1, 2, 3, 0); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("FromColumns(too many) error = %v", err)
	}
	if _, err := FromColumns(4, 4); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("FromColumns(out of range) error = %v", err)
	}
	if _, err := FromColumns(0); !errors.Is(err, errors.ErrCodeInvalidProblem) {
		t.Errorf("FromColumns(n=0) error = %v", err)
	}
}

func TestBoard(t *testing.T) {
	p, _ := FromColumns(4, 1, 3, 0, 2)
	want := ". Q . .\n. . . Q\nQ . . .\n. . Q ."
	if got := p.Board(4); got != want {
		t.Errorf("Board() =\n%s\nwant\n%s", got, want)
	}
	partial, _ := FromColumns(3, 0)
	want = "Q . .\n. . .\n. . ."
	if got := partial.Board(3); got != want {
		t.Errorf("Board(partial) =\n%s\nwant\n%s", got, want)
	}
}

func TestSolveFourQueens(t *testing.T) {
	tests := []struct {
		strategy search.Strategy[Placement]
		expanded int
	}{
		{search.BreadthFirst[Placement](), 16},
		{search.DepthFirst[Placement](), 9},
		{search.UniformCost[Placement](), 16},
	}
	q, _ := New(4)
	for _, tt := range tests {
		t.Run(tt.strategy.Name(), func(t *testing.T) {
			res := search.Search[Placement](q, tt.strategy)
			n, ok := res.Node()
			if !ok {
				t.Fatalf("Search() status = %v, want goal", res.Status)
			}
			if n.State.Len() != 4 || !n.State.Valid() {
				t.Errorf("Search() = %v, want a valid full placement", n.State)
			}
			if got := n.State.String(); got != "[1 3 0 2]" {
				t.Errorf("Search() = %s, want [1 3 0 2]", got)
			}
			if n.Depth != 4 {
				t.Errorf("Search() depth = %d, want 4", n.Depth)
			}
			if res.Expanded != tt.expanded {
				t.Errorf("Search() expanded = %d, want %d", res.Expanded, tt.expanded)
			}
		})
	}
}

func TestSolveNoSolution(t *testing.T) {
	for _, n := range []int{2, 3} {
		q, _ := New(n)
		res := search.Search[Placement](q, search.BreadthFirst[Placement]())
		if res.Status != search.Exhausted {
			t.Errorf("N=%d: status = %v, want exhausted", n, res.Status)
		}
	}
}

func TestSolveEightQueens(t *testing.T) {
	q, _ := New(8)
	res := search.Search[Placement](q, search.DepthFirst[Placement]())
	n, ok := res.Node()
	if !ok || !n.State.Valid() || n.State.Len() != 8 {
		t.Fatalf("Search() = %v, %v", n.State, res.Status)
	}
	if got := n.State.String(); got != "[0 4 7 5 2 6 1 3]" {
		t.Errorf("Search() = %s, want the first lexicographic solution", got)
	}
}
