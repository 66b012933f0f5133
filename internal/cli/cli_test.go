package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bestfirst/pkg/errors"
)

func TestRootCommand(t *testing.T) {
	root := New(&strings.Builder{}, log.InfoLevel).RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"solve", "queens", "shuffle", "bench", "report", "view", "serve", "cache", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("RootCommand() lacks %q (have %v)", want, names)
		}
	}
	for _, flag := range []string{"verbose", "no-cache"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("RootCommand() lacks persistent flag --%s", flag)
		}
	}
}

func TestParseTiles(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"", nil},
		{"  ", nil},
		{"1,2,3,4,5,6,7,0,8", []int{1, 2, 3, 4, 5, 6, 7, 0, 8}},
		{"1 2 3|4 5 6|7 _ 8", []int{1, 2, 3, 4, 5, 6, 7, 0, 8}},
		{"3,1,2,0", []int{3, 1, 2, 0}},
	}
	for _, tt := range tests {
		got, err := parseTiles(tt.in)
		if err != nil {
			t.Errorf("parseTiles(%q) error: %v", tt.in, err)
			continue
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("parseTiles(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseTilesErrors(t *testing.T) {
	for _, in := range []string{"1,2,3", "1,1,2,0", "a,b,c,d"} {
		if _, err := parseTiles(in); err == nil {
			t.Errorf("parseTiles(%q) should fail", in)
		}
	}
}

func TestJoinTiles(t *testing.T) {
	tiles := []int{8, 6, 7, 2, 5, 4, 3, 0, 1}
	s := joinTiles(tiles)
	if s != "8,6,7,2,5,4,3,0,1" {
		t.Errorf("joinTiles() = %q", s)
	}
	back, err := parseTiles(s)
	if err != nil || !slices.Equal(back, tiles) {
		t.Errorf("parseTiles(joinTiles()) = %v, %v", back, err)
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv(envRedisURL, "")
	if got := envOr(envRedisURL, "fallback"); got != "fallback" {
		t.Errorf("envOr() = %q, want fallback", got)
	}
	t.Setenv(envRedisURL, "redis://localhost:6379/0")
	if got := envOr(envRedisURL, "fallback"); got != "redis://localhost:6379/0" {
		t.Errorf("envOr() = %q, want the variable", got)
	}
}

func TestShuffleBoard(t *testing.T) {
	a, err := shuffleBoard(3, 40, 7)
	if err != nil {
		t.Fatalf("shuffleBoard() error: %v", err)
	}
	b, _ := shuffleBoard(3, 40, 7)
	if a != b {
		t.Errorf("shuffleBoard() with the same seed = %v and %v", a, b)
	}
	if a.Len() != 9 {
		t.Errorf("shuffleBoard() has %d cells, want 9", a.Len())
	}

	if _, err := shuffleBoard(1, 10, 1); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("shuffleBoard(size 1) error = %v, want INVALID_INPUT", err)
	}
	if _, err := shuffleBoard(3, -1, 1); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("shuffleBoard(steps -1) error = %v, want INVALID_INPUT", err)
	}
}

func TestSolveCommandRejectsBadBoard(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := New(&strings.Builder{}, log.InfoLevel).RootCommand()
	root.SetArgs([]string{"solve", "--initial", "1,2,3,4,5"})
	err := root.Execute()
	if !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("solve with 5 tiles error = %v, want INVALID_STATE", err)
	}
}

func TestSolveCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := New(&strings.Builder{}, log.InfoLevel).RootCommand()
	root.SetArgs([]string{"solve", "--initial", "1,2,3,4,5,6,0,7,8", "-a", "bfs", "--trace"})
	if err := root.Execute(); err != nil {
		t.Errorf("solve error: %v", err)
	}
}

func TestQueensCommand(t *testing.T) {
	root := New(&strings.Builder{}, log.InfoLevel).RootCommand()
	root.SetArgs([]string{"--no-cache", "queens", "-n", "6"})
	if err := root.Execute(); err != nil {
		t.Errorf("queens error: %v", err)
	}

	root = New(&strings.Builder{}, log.InfoLevel).RootCommand()
	root.SetArgs([]string{"--no-cache", "queens", "-n", "0"})
	if err := root.Execute(); !errors.Is(err, errors.ErrCodeInvalidProblem) {
		t.Errorf("queens -n 0 error = %v, want INVALID_PROBLEM", err)
	}
}
