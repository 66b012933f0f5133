package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/bestfirst/pkg/solver"
)

func TestSideOf(t *testing.T) {
	tests := []struct{ n, want int }{{1, 1}, {4, 2}, {9, 3}, {16, 4}, {225, 15}}
	for _, tt := range tests {
		if got := sideOf(tt.n); got != tt.want {
			t.Errorf("sideOf(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestBoardView(t *testing.T) {
	out := boardView([]int{1, 2, 3, 4, 5, 6, 7, 0, 8}, []int{1, 2, 3, 4, 5, 6, 7, 8, 0})

	for _, tile := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "·"} {
		if !strings.Contains(out, tile) {
			t.Errorf("boardView() lacks %q:\n%s", tile, out)
		}
	}
	if strings.Contains(out, "0") {
		t.Errorf("boardView() should not show the blank as 0:\n%s", out)
	}
	// border top, three rows, border bottom
	if got := strings.Count(out, "\n") + 1; got != 5 {
		t.Errorf("boardView() has %d lines, want 5:\n%s", got, out)
	}
}

func TestBoardViewPadsWideTiles(t *testing.T) {
	tiles := make([]int, 16)
	for i := range 15 {
		tiles[i] = i + 1
	}
	lines := strings.Split(boardView(tiles, nil), "\n")
	if len(lines) != 6 {
		t.Fatalf("boardView(4x4) has %d lines, want 6", len(lines))
	}
	if !strings.Contains(lines[1], " 1  2  3  4") {
		t.Errorf("first row = %q, want right-aligned tiles", lines[1])
	}
}

func TestQueensView(t *testing.T) {
	out := queensView([]int{1, 3, 0, 2}, 4)
	if got := strings.Count(out, "Q"); got != 4 {
		t.Errorf("queensView() shows %d queens, want 4:\n%s", got, out)
	}
	if !strings.Contains(out, ". Q . .") {
		t.Errorf("queensView() first row wrong:\n%s", out)
	}

	if got := queensView([]int{5}, 4); got != "[5]" {
		t.Errorf("queensView(invalid) = %q, want the plain columns", got)
	}
}

func TestPrintOutcomeStatuses(t *testing.T) {
	for _, status := range []string{solver.StatusGoal, solver.StatusExhausted, solver.StatusTimeout} {
		printOutcome(&solver.Result{
			Problem:   solver.ProblemPuzzle,
			Algorithm: solver.AlgBFS,
			Status:    status,
			Depth:     -1,
		})
	}
}
