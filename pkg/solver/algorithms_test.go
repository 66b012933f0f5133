package solver

import (
	"testing"

	"github.com/matzehuels/bestfirst/pkg/puzzle"
	"github.com/matzehuels/bestfirst/pkg/search"
)

func TestAlgorithmNames(t *testing.T) {
	tests := []struct {
		problem string
		want    []string
	}{
		{ProblemPuzzle, []string{"bfs", "dfs", "ucs", "astar-misplaced", "astar-manhattan"}},
		{ProblemQueens, []string{"bfs", "dfs", "ucs"}},
		{"sudoku", []string{}},
	}
	for _, tt := range tests {
		got := AlgorithmNames(tt.problem)
		if len(got) != len(tt.want) {
			t.Errorf("AlgorithmNames(%q) = %v, want %v", tt.problem, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("AlgorithmNames(%q)[%d] = %q, want %q", tt.problem, i, got[i], tt.want[i])
			}
		}
	}
}

func TestLookupAlgorithm(t *testing.T) {
	a, ok := LookupAlgorithm(ProblemPuzzle, AlgAStarMisplaced)
	if !ok || a.Heuristic != puzzle.HeuristicMisplaced || a.Label != "A* Misplaced" {
		t.Errorf("LookupAlgorithm() = %+v, %v", a, ok)
	}
	if _, ok := LookupAlgorithm(ProblemQueens, AlgAStarManhattan); ok {
		t.Error("queens should not offer A*")
	}
}

func TestStrategyFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{AlgBFS, search.NameBreadthFirst},
		{AlgDFS, search.NameDepthFirst},
		{AlgUCS, search.NameUniformCost},
		{AlgAStarManhattan, search.NameAStar},
	}
	h := search.Heuristic[int](func(int) float64 { return 0 })
	for _, tt := range tests {
		s, ok := StrategyFor(tt.name, h)
		if !ok || s.Name() != tt.want {
			t.Errorf("StrategyFor(%q) = %v, %v, want %s", tt.name, s, ok, tt.want)
		}
	}
	if _, ok := StrategyFor[int](AlgAStarManhattan, nil); ok {
		t.Error("A* without a heuristic should fail")
	}
	if _, ok := StrategyFor("beam", h); ok {
		t.Error("unknown algorithm should fail")
	}
}

func TestPuzzleStrategy(t *testing.T) {
	goal := puzzle.Goal(3)
	s := puzzle.MustState(8, 7, 6, 5, 4, 3, 2, 1, 0)
	tests := []struct {
		name string
		h    float64
	}{
		{AlgBFS, 0},
		{AlgUCS, 0},
		{AlgAStarMisplaced, 8},
		{AlgAStarManhattan, 16},
	}
	for _, tt := range tests {
		_, h, ok := PuzzleStrategy(tt.name, goal)
		if !ok {
			t.Fatalf("PuzzleStrategy(%q) not found", tt.name)
		}
		if got := h(s); got != tt.h {
			t.Errorf("PuzzleStrategy(%q) h = %v, want %v", tt.name, got, tt.h)
		}
	}
	if _, _, ok := PuzzleStrategy("nope", goal); ok {
		t.Error("PuzzleStrategy(nope) should fail")
	}
}
