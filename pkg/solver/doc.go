// Package solver runs searches on behalf of the CLI, the API server and the
// benchmark runner.
//
// The search core in [search] is synchronous and knows nothing about time,
// caching or problem encodings. This package supplies all three: it turns a
// JSON-friendly [Request] into a concrete problem and strategy, drives the
// run step by step under a wall-clock budget, and caches the outcome by a
// hash of the request.
//
// # Usage
//
//	runner := solver.NewRunner(cache, nil, logger)
//	res, err := runner.Solve(ctx, solver.Request{
//	    Initial:   []int{1, 2, 3, 4, 5, 6, 0, 7, 8},
//	    Algorithm: solver.AlgAStarManhattan,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Depth, res.Expanded)
//
// # Budgets
//
// [Drive] checks its context every [CheckInterval] steps. A run that hits
// its deadline is abandoned and reported as a TIMEOUT error; the partial
// result (expanded count so far) is returned alongside it.
package solver
