package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/puzzle"
	"github.com/matzehuels/bestfirst/pkg/render"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	initial   string        // start board
	goal      string        // goal board; canonical when empty
	algorithm string        // algorithm name
	timeout   time.Duration // wall-clock budget
	dot       string        // search tree output (.dot or .svg)
	maxNodes  int           // off-path nodes kept in the drawing
	pathOnly  bool          // draw the solution path only
	trace     bool          // print every board on the path
	redis     string        // shared cache URL
}

// solveCommand creates the solve command for sliding-tile puzzles.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{
		algorithm: solver.AlgAStarManhattan,
		timeout:   solver.DefaultTimeout,
		maxNodes:  render.DefaultMaxNodes,
	}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a sliding-tile puzzle",
		Long: `Solve a sliding-tile puzzle with the selected search strategy.

Boards are given row-major with 0 (or _) for the blank:

  bestfirst solve --initial 1,2,3,4,5,6,7,0,8
  bestfirst solve --initial "8 6 7|2 5 4|3 _ 1" -a astar-misplaced --trace
  bestfirst solve --initial 1,2,3,4,0,6,7,5,8 --dot tree.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.initial, "initial", "", "initial board, row-major, 0 is the blank (required)")
	cmd.Flags().StringVar(&opts.goal, "goal", "", "goal board (default 1..n-1 followed by the blank)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "algorithm: "+strings.Join(solver.AlgorithmNames(solver.ProblemPuzzle), ", "))
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "search time budget")
	cmd.Flags().StringVar(&opts.dot, "dot", "", "write the search tree to a .dot or .svg file")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", opts.maxNodes, "off-path nodes kept in the search tree drawing")
	cmd.Flags().BoolVar(&opts.pathOnly, "path-only", false, "draw only the solution path")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print every board on the solution path with g and h")
	cmd.Flags().StringVar(&opts.redis, "redis", envOr(envRedisURL, ""), "Redis URL for a shared result cache")
	_ = cmd.MarkFlagRequired("initial")
	_ = cmd.RegisterFlagCompletionFunc("algorithm", completeAlgorithms(solver.ProblemPuzzle))

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	initial, err := parseTiles(opts.initial)
	if err != nil {
		return fmt.Errorf("initial board: %w", err)
	}
	goal, err := parseTiles(opts.goal)
	if err != nil {
		return fmt.Errorf("goal board: %w", err)
	}
	p, err := puzzle.FromTiles(initial, goal)
	if err != nil {
		return err
	}
	if !p.Solvable() {
		printWarning("The goal is unreachable from this board; the search will exhaust")
	}

	runner, err := c.newRunner(ctx, opts.redis)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	req := solver.Request{
		Problem:   solver.ProblemPuzzle,
		Algorithm: opts.algorithm,
		Initial:   initial,
		Goal:      goal,
		TimeoutMS: opts.timeout.Milliseconds(),
	}
	if opts.dot != "" {
		req.Render = &render.Options{MaxNodes: opts.maxNodes, PathOnly: opts.pathOnly, Detailed: opts.trace}
	}

	logger.Debug("solving", "initial", p.Initial(), "goal", p.Goal(), "algorithm", opts.algorithm)
	spinner := newSpinnerWithContext(ctx, "Searching...")
	spinner.Start()
	res, err := runner.Solve(ctx, req)
	spinner.Stop()

	if res != nil {
		printOutcome(res)
	}
	if err != nil {
		if errors.Is(err, errors.ErrCodeTimeout) {
			printDetail("Raise --timeout or try a stronger heuristic")
		}
		return err
	}

	if res.Found() {
		if opts.trace {
			printTrace(res)
		} else {
			printBoards(res)
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

// printOutcome prints the headline and statistics of a result.
func printOutcome(res *solver.Result) {
	label := res.Algorithm
	if a, ok := solver.LookupAlgorithm(res.Problem, res.Algorithm); ok {
		label = a.Label
	}
	switch res.Status {
	case solver.StatusGoal:
		printSuccess("Solved with %s in %s steps", StyleHighlight.Render(label), StyleNumber.Render(fmt.Sprint(res.Depth)))
	case solver.StatusExhausted:
		printWarning("No solution: %s exhausted the search space", label)
	case solver.StatusTimeout:
		printWarning("%s timed out", label)
	}
	printStats(res)
}

// printBoards prints the start and goal boards and the move sequence.
func printBoards(res *solver.Result) {
	first, last := res.Path[0], res.Path[len(res.Path)-1]
	printNewline()
	fmt.Println(boardView(first.State, last.State))
	fmt.Println(boardView(last.State, last.State))
	if len(res.Path) > 1 {
		moves := make([]string, 0, len(res.Path)-1)
		for _, step := range res.Path[1:] {
			moves = append(moves, step.Move)
		}
		printKeyValue("Moves", strings.Join(moves, " "))
	}
}

// printTrace prints every state on the path with its cost and estimate.
func printTrace(res *solver.Result) {
	goal := res.Path[len(res.Path)-1].State
	for i, step := range res.Path {
		printNewline()
		move := step.Move
		if i == 0 {
			move = "start"
		}
		fmt.Printf("%s %s %s\n",
			StyleTitle.Render(fmt.Sprintf("Step %d", i)),
			StyleValue.Render(move),
			StyleDim.Render(fmt.Sprintf("g(n)=%g h(n)=%g f(n)=%g", step.G, step.H, step.G+step.H)),
		)
		if res.Problem == solver.ProblemQueens {
			fmt.Println(queensView(step.State, len(goal)))
		} else {
			fmt.Println(boardView(step.State, goal))
		}
	}
}

// writeGraph writes g as DOT, or as SVG when path ends in .svg.
func writeGraph(ctx context.Context, g *render.Graph, path string) error {
	dot := render.ToDOT(g)
	data := []byte(dot)
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		data = svg
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// completeAlgorithms offers the algorithm names of problem for shell completion.
func completeAlgorithms(problem string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return solver.AlgorithmNames(problem), cobra.ShellCompDirectiveNoFileComp
	}
}
