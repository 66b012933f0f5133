// Package bench measures search algorithms over a suite of puzzle instances.
//
// A [Suite] lists cases (initial boards) and algorithms. The [Runner] solves
// every (case, algorithm) pair through a [solver.Runner], one at a time so
// that timings do not interfere, and produces one [Record] per pair:
//
//	suite := bench.DefaultSuite()
//	records, err := bench.NewRunner(solverRunner, logger).Run(ctx, suite)
//	err = bench.WriteCSV(f, records)
//
// Records are written as CSV with the columns test_case, algorithm, depth,
// nodes and time_s. Depth is "N/A" when the search exhausted without a goal
// and "TIMEOUT" when the budget expired. [Summarize] aggregates a results
// file by solution depth, skipping both.
//
// A [MongoStore] keeps records of many runs for later comparison.
package bench
