// Package pkg provides the libraries behind bestfirst.
//
// # Overview
//
// Bestfirst explores state spaces with one generic best-first loop. The
// frontier discipline decides the algorithm: a FIFO queue gives
// breadth-first search, a LIFO stack depth-first search, and a priority
// queue ordered by g or g+h uniform-cost search and A*. The pkg directory is
// organized into three areas:
//
//  1. Core - the search engine and the problems it solves
//  2. Services - solve requests, caching, benchmarks and the HTTP API
//  3. Support - errors, hooks, rendering and build metadata
//
// # Architecture
//
// The typical data flow through bestfirst:
//
//	solver.Request (CLI flags or POST /v1/solve)
//	         ↓
//	    [solver] package (validate, cache lookup, pick a strategy)
//	         ↓
//	    [search] package (run the frontier until goal or exhaustion)
//	         ↓
//	    solver.Result (path with g and h per step)
//	         ↓
//	    terminal, JSON, DOT or SVG output
//
// # Quick Start
//
// Solve an 8-puzzle with A* and the Manhattan heuristic:
//
//	p, _ := puzzle.FromTiles([]int{1, 2, 3, 4, 5, 6, 0, 7, 8}, nil)
//	res := search.Search[puzzle.State](p, search.AStar(puzzle.Manhattan(p.Goal())))
//	for _, s := range res.Path() {
//	    fmt.Println(s)
//	}
//
// # Main Packages
//
// ## Core
//
// [search] - Problem, Strategy and Frontier abstractions, the search tree
// arena, dominance pruning and the step-wise Run driver.
//
// [puzzle] - The N×N sliding-tile puzzle: states, moves, Manhattan and
// misplaced-tile heuristics, solvability and random-walk shuffles.
//
// [queens] - The N-Queens problem as incremental row-by-row placement.
//
// ## Services
//
// [solver] - Algorithm registry, request validation, timeouts and cached
// solving shared by the CLI and the API.
//
// [cache] - File, Redis and null caches with a keyer for solve results and
// benchmark measurements.
//
// [bench] - TOML suites, the benchmark runner, CSV and MongoDB persistence
// and per-depth summaries.
//
// [api] - chi-based HTTP server exposing the solver.
//
// ## Support
//
// [errors] - Coded errors used for validation and HTTP status mapping.
//
// [observability] - Search, cache and server hooks with a logging
// implementation.
//
// [render] - Search tree drawings as Graphviz DOT and SVG.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
//	go test ./pkg/...                                      # All tests
//	BESTFIRST_REDIS_URL=redis://localhost:6379/0 go test ./pkg/cache
//	BESTFIRST_MONGODB_URI=mongodb://localhost:27017 go test ./pkg/bench
//
// [search]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/search
// [puzzle]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/puzzle
// [queens]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/queens
// [solver]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/solver
// [cache]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/cache
// [bench]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/bench
// [api]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/api
// [errors]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/render
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/bestfirst/pkg/buildinfo
package pkg
