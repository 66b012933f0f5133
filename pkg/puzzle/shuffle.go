package puzzle

import (
	"math/rand/v2"

	"github.com/matzehuels/bestfirst/pkg/errors"
)

// Shuffle performs a random walk of steps valid moves starting at from.
// The result is always solvable back to from.
func Shuffle(from State, steps int, rng *rand.Rand) (State, error) {
	if steps < 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "steps must be >= 0, got %d", steps)
	}
	s := from
	for i := 0; i < steps; i++ {
		next := s.Neighbors()
		s = next[rng.IntN(len(next))]
	}
	return s, nil
}
