package solver

import (
	"slices"

	"github.com/matzehuels/bestfirst/pkg/puzzle"
	"github.com/matzehuels/bestfirst/pkg/search"
)

// Problem kinds.
const (
	ProblemPuzzle = "puzzle"
	ProblemQueens = "queens"
)

// Algorithm names.
const (
	AlgBFS            = "bfs"
	AlgDFS            = "dfs"
	AlgUCS            = "ucs"
	AlgAStarMisplaced = "astar-misplaced"
	AlgAStarManhattan = "astar-manhattan"
)

// Algorithm describes one selectable search configuration.
type Algorithm struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Heuristic   string `json:"heuristic,omitempty"`
}

var (
	bfs = Algorithm{AlgBFS, "BFS", "Breadth-first search; shortest in moves.", ""}
	dfs = Algorithm{AlgDFS, "DFS", "Depth-first search; not optimal.", ""}
	ucs = Algorithm{AlgUCS, "UCS", "Uniform-cost search; optimal.", puzzle.HeuristicZero}

	registry = map[string][]Algorithm{
		ProblemPuzzle: {
			bfs, dfs, ucs,
			{AlgAStarMisplaced, "A* Misplaced", "A* with the misplaced-tile count; optimal.", puzzle.HeuristicMisplaced},
			{AlgAStarManhattan, "A* Manhattan", "A* with Manhattan distance; optimal.", puzzle.HeuristicManhattan},
		},
		ProblemQueens: {bfs, dfs, ucs},
	}
)

// Problems lists the supported problem kinds.
func Problems() []string {
	return []string{ProblemPuzzle, ProblemQueens}
}

// Algorithms lists the algorithms available for problem.
func Algorithms(problem string) []Algorithm {
	return slices.Clone(registry[problem])
}

// AlgorithmNames lists the algorithm names available for problem.
func AlgorithmNames(problem string) []string {
	algs := registry[problem]
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name
	}
	return names
}

// LookupAlgorithm returns the named algorithm for problem.
func LookupAlgorithm(problem, name string) (Algorithm, bool) {
	for _, a := range registry[problem] {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm{}, false
}

// DefaultAlgorithm returns the algorithm used when a request names none.
func DefaultAlgorithm(problem string) string {
	if problem == ProblemQueens {
		return AlgDFS
	}
	return AlgAStarManhattan
}

// StrategyFor maps an algorithm name to a strategy. h is used only by the
// A* variants. It reports false for unknown names.
func StrategyFor[S comparable](name string, h search.Heuristic[S]) (search.Strategy[S], bool) {
	switch name {
	case AlgBFS:
		return search.BreadthFirst[S](), true
	case AlgDFS:
		return search.DepthFirst[S](), true
	case AlgUCS:
		return search.UniformCost[S](), true
	case AlgAStarMisplaced, AlgAStarManhattan:
		if h == nil {
			return nil, false
		}
		return search.AStar(h), true
	}
	return nil, false
}

// PuzzleStrategy returns the strategy and the heuristic reported in traces
// for a sliding-puzzle algorithm. Uninformed algorithms trace h = 0.
func PuzzleStrategy(name string, goal puzzle.State) (search.Strategy[puzzle.State], search.Heuristic[puzzle.State], bool) {
	a, ok := LookupAlgorithm(ProblemPuzzle, name)
	if !ok {
		return nil, nil, false
	}
	h := search.Heuristic[puzzle.State](puzzle.Zero)
	if a.Heuristic != "" {
		h, _ = puzzle.HeuristicFor(a.Heuristic, goal)
	}
	s, ok := StrategyFor(name, h)
	return s, h, ok
}
