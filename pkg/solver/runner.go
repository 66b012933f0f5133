package solver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/bestfirst/pkg/cache"
	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/observability"
	"github.com/matzehuels/bestfirst/pkg/puzzle"
	"github.com/matzehuels/bestfirst/pkg/queens"
	"github.com/matzehuels/bestfirst/pkg/search"
)

// Runner executes solve requests with caching.
// Both CLI and API use it so that budgets and cache keys agree.
//
// A Runner holds no per-request state; one Runner may serve many
// goroutines, each search running on its own arena.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Timeout time.Duration // default budget; DefaultTimeout when zero
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Solve validates req, answers from cache when possible, and otherwise runs
// the search under the request's budget.
//
// A run that exceeds its budget returns both a partial result (status
// "timeout") and a TIMEOUT error. Finished runs are cached, abandoned ones
// are not.
func (r *Runner) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	id := uuid.NewString()
	key := r.Keyer.ResultKey(req.KeyOpts())

	if !req.Refresh && req.Render == nil {
		if res, ok := r.lookup(ctx, key); ok {
			res.ID, res.Cached = id, true
			r.Logger.Debug("cached result", "problem", req.Problem, "algorithm", req.Algorithm, "id", id)
			return res, nil
		}
	}

	budget := req.Timeout(r.Timeout)
	runCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	hooks := observability.Search()
	hooks.OnSolveStart(ctx, req.Problem, req.Algorithm)
	start := time.Now()

	res, err := r.run(runCtx, &req)
	elapsed := time.Since(start)

	expanded := 0
	if res != nil {
		res.ID = id
		res.Problem, res.Algorithm = req.Problem, req.Algorithm
		res.DurationMS = float64(elapsed.Microseconds()) / 1000
		expanded = res.Expanded
	}
	hooks.OnSolveComplete(ctx, req.Problem, req.Algorithm, expanded, elapsed, err)

	if err != nil {
		r.Logger.Warn("search abandoned",
			"problem", req.Problem,
			"algorithm", req.Algorithm,
			"expanded", expanded,
			"budget", budget,
			"err", err)
		return res, err
	}

	r.Logger.Info("search finished",
		"problem", req.Problem,
		"algorithm", req.Algorithm,
		"status", res.Status,
		"depth", res.Depth,
		"expanded", res.Expanded,
		"duration", elapsed)

	r.store(ctx, key, res)
	return res, nil
}

func (r *Runner) run(ctx context.Context, req *Request) (*Result, error) {
	switch req.Problem {
	case ProblemPuzzle:
		return solvePuzzle(ctx, req)
	case ProblemQueens:
		return solveQueens(ctx, req)
	}
	return nil, errors.New(errors.ErrCodeInvalidProblem, "unknown problem %q", req.Problem)
}

func solvePuzzle(ctx context.Context, req *Request) (*Result, error) {
	p, err := puzzle.FromTiles(req.Initial, req.Goal)
	if err != nil {
		return nil, err
	}
	strategy, h, ok := PuzzleStrategy(req.Algorithm, p.Goal())
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidAlgorithm, "algorithm %q does not apply to puzzle", req.Algorithm)
	}

	sr, err := Drive(ctx, search.NewRun[puzzle.State](p, strategy))
	res := newResult(sr, encoding[puzzle.State]{
		values:    puzzle.State.Tiles,
		label:     puzzle.State.String,
		heuristic: h,
		move: func(from, to puzzle.State) string {
			m, _ := puzzle.MoveBetween(from, to)
			return m.String()
		},
	}, req.Render)
	return res, err
}

func solveQueens(ctx context.Context, req *Request) (*Result, error) {
	q, err := queens.New(req.N)
	if err != nil {
		return nil, err
	}
	strategy, ok := StrategyFor[queens.Placement](req.Algorithm, nil)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidAlgorithm, "algorithm %q does not apply to queens", req.Algorithm)
	}

	sr, err := Drive(ctx, search.NewRun[queens.Placement](q, strategy))
	res := newResult(sr, encoding[queens.Placement]{
		values: queens.Placement.Columns,
		label:  queens.Placement.String,
	}, req.Render)
	return res, err
}

func (r *Runner) lookup(ctx context.Context, key string) (*Result, bool) {
	hooks := observability.Cache()
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, "result")
		return nil, false
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		hooks.OnCacheMiss(ctx, "result")
		return nil, false
	}
	hooks.OnCacheHit(ctx, "result")
	return &res, true
}

func (r *Runner) store(ctx context.Context, key string, res *Result) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.ResultTTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "result", len(data))
}
