package puzzle

import "github.com/matzehuels/bestfirst/pkg/search"

// Heuristic names.
const (
	HeuristicManhattan = "manhattan"
	HeuristicMisplaced = "misplaced"
	HeuristicZero      = "zero"
)

// Manhattan sums, over every non-blank tile, the grid distance between its
// cell and its cell in goal.
func Manhattan(goal State) search.Heuristic[State] {
	side := goal.Side()
	home := make([]int, goal.Len())
	for i := 0; i < goal.Len(); i++ {
		home[goal[i]] = i
	}
	return func(s State) float64 {
		dist := 0
		for i := 0; i < len(s); i++ {
			t := s[i]
			if t == Blank {
				continue
			}
			h := home[t]
			dist += abs(i/side-h/side) + abs(i%side-h%side)
		}
		return float64(dist)
	}
}

// Misplaced counts the non-blank tiles that are not on their goal cell.
func Misplaced(goal State) search.Heuristic[State] {
	return func(s State) float64 {
		n := 0
		for i := 0; i < len(s); i++ {
			if s[i] != Blank && s[i] != goal[i] {
				n++
			}
		}
		return float64(n)
	}
}

// Zero estimates nothing; A* with Zero is uniform-cost search.
func Zero(State) float64 { return 0 }

// HeuristicFor returns the named heuristic bound to goal.
func HeuristicFor(name string, goal State) (search.Heuristic[State], bool) {
	switch name {
	case HeuristicManhattan:
		return Manhattan(goal), true
	case HeuristicMisplaced:
		return Misplaced(goal), true
	case HeuristicZero:
		return Zero, true
	}
	return nil, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
