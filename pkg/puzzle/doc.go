// Package puzzle implements the N×N sliding-tile puzzle (the 8-puzzle for
// N = 3) as a [search.Problem].
//
// # States
//
// A [State] is the row-major sequence of tile labels with 0 as the blank.
// It is a comparable value and serves directly as a map key in the search
// core's best-cost table:
//
//	s, err := puzzle.NewState(1, 2, 3, 4, 5, 6, 7, 0, 8)
//
// # Moves
//
// Successors slide the blank north, south, west and east, in that order,
// skipping moves that would leave the board. Every move costs 1.
//
// # Heuristics
//
// [Manhattan] and [Misplaced] are admissible and consistent for this
// problem, so A* with either returns optimal solutions. [Zero] turns A* into
// uniform-cost search.
//
// # Solvability
//
// Only half of all tile arrangements can reach a given goal. [Solvable]
// decides this with a parity argument without searching; an unsolvable
// instance searched anyway exhausts after visiting N²!/2 states.
package puzzle
