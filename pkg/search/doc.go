// Package search implements a generic best-first tree search over discrete
// state spaces.
//
// # Overview
//
// A search explores a tree of states rooted at a [Problem]'s initial state.
// Each iteration pops the next node from a [Frontier], discards it if its
// state was already settled at an equal or lower path cost, tests it against
// the goal and otherwise expands it. The order in which nodes are popped is
// decided entirely by the [Strategy] passed at call time:
//
//   - [BreadthFirst]: FIFO; shortest edge count when all step costs are equal
//   - [DepthFirst]: newly generated children are explored first
//   - [UniformCost]: ordered by path cost g
//   - [AStar]: ordered by g + h for a supplied [Heuristic]
//
// # Basic Usage
//
//	res := search.Search[puzzle.State](p, search.AStar(puzzle.Manhattan(goal)))
//	if res.Found() {
//	    fmt.Println(res.Path(), res.Expanded)
//	}
//
// # Nodes
//
// Every node generated during a run lives in a [Tree] arena and is addressed
// by [NodeID]. Parents are referenced by index, so one parent can be shared by
// any number of children and path reconstruction ([Tree.Path]) is a simple
// walk over indices.
//
// # Preconditions
//
// Step costs must be non-negative. For [UniformCost] and [AStar] the first
// goal popped has minimum cost; for [AStar] this additionally requires an
// admissible heuristic, and a consistent one for the settled-state pruning to
// stay exact. None of this is checked at run time.
//
// # Concurrency
//
// A run is single-threaded and has no cancellation of its own. Callers that
// need a wall-clock budget drive [Run.Step] themselves and stop when their
// deadline passes. Separate runs share nothing and may execute concurrently.
package search
