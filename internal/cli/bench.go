package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bestfirst/pkg/bench"
)

type benchOpts struct {
	suite      string
	output     string
	mongo      string
	redis      string
	resume     bool
	timeout    time.Duration
	printSuite bool
}

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	opts := benchOpts{output: "results.csv"}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark search strategies over a suite of boards",
		Long: `Run every algorithm of a suite on every case and record the solution depth,
expanded nodes and time. Without --suite the built-in eight-case suite runs.

  bestfirst bench -o results.csv
  bestfirst bench --suite hard.toml --timeout 2m --mongo mongodb://localhost:27017
  bestfirst bench --print-suite > suite.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.printSuite {
				data, err := bench.DefaultSuite().Encode()
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(data)
				return err
			}
			return c.runBench(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.suite, "suite", "", "suite file (TOML); default is the built-in suite")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "results CSV file")
	cmd.Flags().StringVar(&opts.mongo, "mongo", envOr(envMongoDBURI, ""), "MongoDB URI to store records in")
	cmd.Flags().StringVar(&opts.redis, "redis", envOr(envRedisURL, ""), "Redis URL for the result cache")
	cmd.Flags().BoolVar(&opts.resume, "resume", false, "reuse measurements from an interrupted run")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "per-case time budget (overrides the suite)")
	cmd.Flags().BoolVar(&opts.printSuite, "print-suite", false, "print the built-in suite as TOML and exit")

	return cmd
}

func (c *CLI) runBench(ctx context.Context, opts benchOpts) error {
	logger := loggerFromContext(ctx)

	suite := bench.DefaultSuite()
	if opts.suite != "" {
		var err error
		if suite, err = bench.LoadSuite(opts.suite); err != nil {
			return err
		}
	}
	if opts.timeout > 0 {
		suite.Timeout = bench.Duration{Duration: opts.timeout}
	}
	if opts.resume && c.noCache {
		printWarning("--resume has no effect with --no-cache")
	}

	runner, err := c.newRunner(ctx, opts.redis)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	spinner := newSpinnerWithContext(ctx, "Starting suite "+suite.Name)
	br := bench.NewRunner(runner, logger)
	br.Resume = opts.resume
	br.Progress = func(done, total int, rec bench.Record) {
		spinner.SetMessage(fmt.Sprintf("[%d/%d] %s %s: %s", done, total, rec.Case, rec.AlgorithmLabel(), rec.DepthField()))
	}

	prog := newProgress(logger)
	spinner.Start()
	records, runErr := br.Run(ctx, suite)
	spinner.Stop()
	if runErr != nil && !stderrors.Is(runErr, context.Canceled) {
		return runErr
	}
	prog.done(fmt.Sprintf("Suite %s: %d measurements", suite.Name, len(records)))

	if len(records) > 0 {
		if err := writeResults(opts.output, records); err != nil {
			return err
		}
		printSuccess("Wrote %d records", len(records))
		printFile(opts.output)
	}
	if opts.mongo != "" && len(records) > 0 {
		if err := saveRecords(opts.mongo, records); err != nil {
			return err
		}
		printSuccess("Stored run %s in MongoDB", StyleHighlight.Render(records[0].RunID))
	}
	if runErr != nil {
		printWarning("Interrupted; results are partial")
		return runErr
	}

	printNewline()
	fmt.Println(reportView(bench.Summarize(records)))
	return nil
}

func writeResults(path string, records []bench.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := bench.WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// saveRecords stores records even when the run was interrupted, so it uses
// its own context.
func saveRecords(uri string, records []bench.Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := bench.NewMongoStore(ctx, uri)
	if err != nil {
		return err
	}
	defer store.Close(ctx)
	return store.Save(ctx, records)
}
