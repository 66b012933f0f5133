package solver

import (
	"time"

	"github.com/matzehuels/bestfirst/pkg/cache"
	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/puzzle"
	"github.com/matzehuels/bestfirst/pkg/render"
)

// DefaultTimeout is the wall-clock budget of a request that sets none.
const DefaultTimeout = 30 * time.Second

// Request describes one solve. It is the body of POST /v1/solve.
type Request struct {
	// Problem is "puzzle" or "queens". Empty selects queens when N is set
	// and no tiles are given, otherwise puzzle.
	Problem   string `json:"problem,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`

	// Sliding puzzle: row-major tiles, 0 is the blank. An empty Goal
	// selects 1..n-1 followed by the blank.
	Initial []int `json:"initial,omitempty"`
	Goal    []int `json:"goal,omitempty"`

	// N-Queens board size.
	N int `json:"n,omitempty"`

	TimeoutMS int64 `json:"timeout_ms,omitempty"`
	Refresh   bool  `json:"refresh,omitempty"` // bypass cached results

	// Render, when set, keeps the search tree as a drawable graph in
	// Result.Graph. Such requests are never answered from cache.
	Render *render.Options `json:"-"`
}

// ValidateAndSetDefaults checks the request and fills in defaults.
func (r *Request) ValidateAndSetDefaults() error {
	if r.Problem == "" {
		r.Problem = ProblemPuzzle
		if r.N > 0 && len(r.Initial) == 0 {
			r.Problem = ProblemQueens
		}
	}
	if r.TimeoutMS < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must be >= 0, got %dms", r.TimeoutMS)
	}

	switch r.Problem {
	case ProblemPuzzle:
		p, err := puzzle.FromTiles(r.Initial, r.Goal)
		if err != nil {
			return err
		}
		r.Goal = p.Goal().Tiles()
	case ProblemQueens:
		if err := errors.ValidateQueens(r.N); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidProblem, "unknown problem %q (want puzzle or queens)", r.Problem)
	}

	if r.Algorithm == "" {
		r.Algorithm = DefaultAlgorithm(r.Problem)
	}
	return errors.ValidateAlgorithm(r.Algorithm, AlgorithmNames(r.Problem))
}

// Timeout returns the request budget, or fallback when none is set.
func (r *Request) Timeout(fallback time.Duration) time.Duration {
	if r.TimeoutMS > 0 {
		return time.Duration(r.TimeoutMS) * time.Millisecond
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultTimeout
}

// KeyOpts returns the fields that determine the result.
func (r *Request) KeyOpts() cache.ResultKeyOpts {
	opts := cache.ResultKeyOpts{Problem: r.Problem, Algorithm: r.Algorithm}
	if r.Problem == ProblemQueens {
		opts.N = r.N
	} else {
		opts.Initial, opts.Goal = r.Initial, r.Goal
	}
	return opts
}
