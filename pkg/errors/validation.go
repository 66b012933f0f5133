package errors

import (
	"math"
	"slices"
	"strings"
)

// MaxBoardSide is the widest sliding board accepted (tile labels fit a byte).
const MaxBoardSide = 15

// MaxQueens is the largest N-Queens board accepted.
const MaxQueens = 64

// ValidateTiles checks that tiles describe a square sliding board: between
// 2×2 and MaxBoardSide×MaxBoardSide cells, holding each label 0..n-1 exactly
// once (0 is the blank). It returns the board side.
func ValidateTiles(tiles []int) (int, error) {
	n := len(tiles)
	if n == 0 {
		return 0, New(ErrCodeInvalidState, "board cannot be empty")
	}

	side := int(math.Round(math.Sqrt(float64(n))))
	if side*side != n {
		return 0, New(ErrCodeInvalidState, "board must be square, got %d tiles", n)
	}
	if side < 2 || side > MaxBoardSide {
		return 0, New(ErrCodeInvalidState, "board side must be between 2 and %d, got %d", MaxBoardSide, side)
	}

	seen := make([]bool, n)
	for _, t := range tiles {
		if t < 0 || t >= n {
			return 0, New(ErrCodeInvalidState, "tile %d out of range 0..%d", t, n-1)
		}
		if seen[t] {
			return 0, New(ErrCodeInvalidState, "tile %d appears more than once", t)
		}
		seen[t] = true
	}
	return side, nil
}

// ValidateQueens checks an N-Queens board size.
func ValidateQueens(n int) error {
	if n < 1 || n > MaxQueens {
		return New(ErrCodeInvalidProblem, "queens must be between 1 and %d, got %d", MaxQueens, n)
	}
	return nil
}

// ValidateAlgorithm checks that name is one of known.
func ValidateAlgorithm(name string, known []string) error {
	if name == "" {
		return New(ErrCodeInvalidAlgorithm, "algorithm cannot be empty")
	}
	if !slices.Contains(known, name) {
		return New(ErrCodeInvalidAlgorithm, "unknown algorithm %q (want one of %s)", name, strings.Join(known, ", "))
	}
	return nil
}
