package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/bestfirst/pkg/solver"
)

func pathResult() *solver.Result {
	return &solver.Result{
		Problem: solver.ProblemPuzzle,
		Status:  solver.StatusGoal,
		Depth:   2,
		Path: []solver.Step{
			{State: []int{1, 2, 3, 4, 5, 6, 0, 7, 8}, H: 2},
			{State: []int{1, 2, 3, 4, 5, 6, 7, 0, 8}, Move: "east", G: 1, H: 1},
			{State: []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, Move: "east", G: 2},
		},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m PathModel, msg tea.Msg) (PathModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(PathModel), cmd
}

func TestPathModelStepping(t *testing.T) {
	m := NewPathModel(pathResult())

	tests := []struct {
		key  string
		want int
	}{
		{"left", 0}, // clamped at the start
		{"right", 1},
		{"l", 2},
		{"right", 2}, // clamped at the end
		{"h", 1},
		{"g", 0},
		{"G", 2},
	}
	for _, tt := range tests {
		m, _ = update(m, key(tt.key))
		if m.Step != tt.want {
			t.Errorf("after %q Step = %d, want %d", tt.key, m.Step, tt.want)
		}
	}
}

func TestPathModelPlayback(t *testing.T) {
	m := NewPathModel(pathResult())

	m, cmd := update(m, key("space"))
	if !m.Playing || cmd == nil {
		t.Fatalf("space should start playback, Playing = %v", m.Playing)
	}

	m, cmd = update(m, tickMsg{})
	if m.Step != 1 || !m.Playing || cmd == nil {
		t.Errorf("first tick: Step = %d, Playing = %v", m.Step, m.Playing)
	}
	m, cmd = update(m, tickMsg{})
	if m.Step != 2 || m.Playing || cmd != nil {
		t.Errorf("last tick: Step = %d, Playing = %v, want playback stopped at the goal", m.Step, m.Playing)
	}

	// a stray tick after stopping does nothing
	m, _ = update(m, tickMsg{})
	if m.Step != 2 {
		t.Errorf("stray tick moved to Step %d", m.Step)
	}

	// restarting from the goal rewinds
	m, _ = update(m, key("p"))
	if m.Step != 0 || !m.Playing {
		t.Errorf("restart: Step = %d, Playing = %v", m.Step, m.Playing)
	}
}

func TestPathModelQuit(t *testing.T) {
	_, cmd := update(NewPathModel(pathResult()), key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPathModelView(t *testing.T) {
	m := NewPathModel(pathResult())
	out := m.View()
	for _, want := range []string{"Step 0/2", "start", "h(n)=2", "q quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() lacks %q:\n%s", want, out)
		}
	}

	m, _ = update(m, key("right"))
	if out := m.View(); !strings.Contains(out, "Step 1/2") || !strings.Contains(out, "east") {
		t.Errorf("View() after a step:\n%s", out)
	}
}

func TestPathModelQueens(t *testing.T) {
	res := &solver.Result{
		Problem: solver.ProblemQueens,
		Status:  solver.StatusGoal,
		Path: []solver.Step{
			{State: []int{}},
			{State: []int{1}, G: 1},
			{State: []int{1, 3}, G: 2},
			{State: []int{1, 3, 0}, G: 3},
			{State: []int{1, 3, 0, 2}, G: 4},
		},
	}
	m, _ := update(NewPathModel(res), key("G"))
	if got := strings.Count(m.View(), "Q"); got != 4 {
		t.Errorf("View() at the goal shows %d queens, want 4", got)
	}
}
