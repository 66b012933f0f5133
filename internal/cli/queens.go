package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/render"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

type queensOpts struct {
	n         int
	algorithm string
	timeout   time.Duration
	dot       string
	trace     bool
}

// queensCommand creates the queens command.
func (c *CLI) queensCommand() *cobra.Command {
	opts := queensOpts{
		n:         8,
		algorithm: solver.DefaultAlgorithm(solver.ProblemQueens),
		timeout:   solver.DefaultTimeout,
	}

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Place N non-attacking queens on an N×N board",
		Long: `Place N queens row by row so that no two share a column or diagonal.

  bestfirst queens -n 8
  bestfirst queens -n 6 -a bfs --trace`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runQueens(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.n, "size", "n", opts.n, "board size")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "algorithm: "+strings.Join(solver.AlgorithmNames(solver.ProblemQueens), ", "))
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "search time budget")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the search tree to a .dot or .svg file")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print the board after every placement")
	_ = cmd.RegisterFlagCompletionFunc("algorithm", completeAlgorithms(solver.ProblemQueens))

	return cmd
}

func (c *CLI) runQueens(ctx context.Context, opts queensOpts) error {
	if err := errors.ValidateQueens(opts.n); err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, "")
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	req := solver.Request{
		Problem:   solver.ProblemQueens,
		Algorithm: opts.algorithm,
		N:         opts.n,
		TimeoutMS: opts.timeout.Milliseconds(),
	}
	if opts.dot != "" {
		req.Render = &render.Options{MaxNodes: render.DefaultMaxNodes}
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Placing %d queens...", opts.n))
	spinner.Start()
	res, err := runner.Solve(ctx, req)
	spinner.Stop()

	if res != nil {
		printOutcome(res)
	}
	if err != nil {
		return err
	}

	if res.Found() {
		if opts.trace {
			printTrace(res)
		} else {
			cols := res.Path[len(res.Path)-1].State
			printNewline()
			fmt.Println(queensView(cols, opts.n))
			printKeyValue("Columns", fmt.Sprint(cols))
		}
	}

	if res.Graph != nil {
		if err := writeGraph(ctx, res.Graph, opts.dot); err != nil {
			return err
		}
		printFile(opts.dot)
	}
	return nil
}
