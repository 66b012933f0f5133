package bench

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/bestfirst/pkg/cache"
	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

// ProgressFunc is called after each measurement with the number of pairs
// done so far and the total.
type ProgressFunc func(done, total int, rec Record)

// Runner executes suites.
type Runner struct {
	Solver   *solver.Runner
	Logger   *log.Logger
	Progress ProgressFunc

	// Resume reuses measurements cached by an earlier, possibly
	// interrupted, run of the same suite.
	Resume bool
}

// NewRunner creates a suite runner. A nil solver gets an uncached one.
func NewRunner(s *solver.Runner, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if s == nil {
		s = solver.NewRunner(nil, nil, logger)
	}
	return &Runner{Solver: s, Logger: logger}
}

// Run measures every (case, algorithm) pair of suite in order. Each pair
// is solved from scratch, never from cache.
//
// A pair that exceeds the suite timeout is recorded with status timeout.
// A pair that fails otherwise is logged and left out. Cancelling ctx stops
// the run and returns the records collected so far with ctx's error.
func (r *Runner) Run(ctx context.Context, suite *Suite) ([]Record, error) {
	if err := suite.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	total := len(suite.Cases) * len(suite.Algorithms)
	records := make([]Record, 0, total)

	r.Logger.Info("benchmark started", "suite", suite.Name, "run", runID, "pairs", total)
	done := 0
	for _, c := range suite.Cases {
		for _, alg := range suite.Algorithms {
			if err := ctx.Err(); err != nil {
				return records, err
			}
			rec, resumed := r.resumed(ctx, suite, c, alg)
			var err error
			if !resumed {
				rec, err = r.measure(ctx, suite, c, alg)
			}
			done++
			if err != nil {
				if stderrors.Is(err, context.Canceled) {
					return records, err
				}
				r.Logger.Error("measurement failed", "case", c.Name, "algorithm", alg, "err", err)
				continue
			}
			rec.RunID = runID
			records = append(records, rec)
			if !resumed {
				r.remember(ctx, suite, rec)
			}
			r.check(c, rec)
			if r.Progress != nil {
				r.Progress(done, total, rec)
			}
		}
	}
	r.Logger.Info("benchmark finished", "suite", suite.Name, "run", runID, "records", len(records))
	return records, nil
}

func (r *Runner) measure(ctx context.Context, suite *Suite, c Case, alg string) (Record, error) {
	res, err := r.Solver.Solve(ctx, solver.Request{
		Problem:   solver.ProblemPuzzle,
		Algorithm: alg,
		Initial:   c.Initial,
		Goal:      suite.Goal,
		TimeoutMS: max(1, suite.Timeout.Milliseconds()),
		Refresh:   true,
	})
	if err != nil && !errors.Is(err, errors.ErrCodeTimeout) {
		return Record{}, err
	}
	return Record{
		Suite:     suite.Name,
		Case:      c.Name,
		Algorithm: alg,
		Status:    res.Status,
		Depth:     res.Depth,
		Nodes:     res.Expanded,
		Seconds:   res.Duration().Seconds(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// check warns when an optimal algorithm misses a case's known depth.
func (r *Runner) check(c Case, rec Record) {
	if c.Depth == 0 || !rec.Found() || rec.Algorithm == solver.AlgDFS {
		return
	}
	if rec.Depth != c.Depth {
		r.Logger.Warn("unexpected solution depth", "case", c.Name, "algorithm", rec.Algorithm, "depth", rec.Depth, "want", c.Depth)
	}
}

func (r *Runner) resumed(ctx context.Context, suite *Suite, c Case, alg string) (Record, bool) {
	if !r.Resume {
		return Record{}, false
	}
	data, hit, err := r.Solver.Cache.Get(ctx, r.Solver.Keyer.SuiteKey(suite.Name, c.Name, alg))
	if err != nil || !hit {
		return Record{}, false
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, false
	}
	r.Logger.Debug("resumed measurement", "case", c.Name, "algorithm", alg)
	return rec, true
}

func (r *Runner) remember(ctx context.Context, suite *Suite, rec Record) {
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	key := r.Solver.Keyer.SuiteKey(suite.Name, rec.Case, rec.Algorithm)
	if err := r.Solver.Cache.Set(ctx, key, data, cache.BenchTTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
	}
}
