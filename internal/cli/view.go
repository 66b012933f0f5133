package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

// playInterval is the delay between steps during playback.
const playInterval = 400 * time.Millisecond

// =============================================================================
// PathModel - Interactive solution playback
// =============================================================================

// tickMsg advances playback by one step.
type tickMsg time.Time

// PathModel is the bubbletea model that steps through a solution path.
type PathModel struct {
	Result  *solver.Result
	Step    int
	Playing bool

	goal []int
}

// NewPathModel creates a model positioned at the first state of res.Path.
func NewPathModel(res *solver.Result) PathModel {
	m := PathModel{Result: res}
	if n := len(res.Path); n > 0 {
		m.goal = res.Path[n-1].State
	}
	return m
}

func (m PathModel) last() int { return len(m.Result.Path) - 1 }

func (m PathModel) Init() tea.Cmd {
	return nil
}

func (m PathModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n":
			m.Playing = false
			if m.Step < m.last() {
				m.Step++
			}
		case "left", "h", "b":
			m.Playing = false
			if m.Step > 0 {
				m.Step--
			}
		case "home", "g":
			m.Playing, m.Step = false, 0
		case "end", "G":
			m.Playing, m.Step = false, m.last()
		case " ", "p", "enter":
			if m.Playing {
				m.Playing = false
				return m, nil
			}
			if m.Step == m.last() {
				m.Step = 0
			}
			m.Playing = true
			return m, tick()
		}
	case tickMsg:
		if !m.Playing {
			return m, nil
		}
		if m.Step < m.last() {
			m.Step++
		}
		if m.Step == m.last() {
			m.Playing = false
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(playInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m PathModel) View() string {
	var b strings.Builder
	step := m.Result.Path[m.Step]

	move := step.Move
	if m.Step == 0 {
		move = "start"
	}
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Step %d/%d", m.Step, m.last())))
	b.WriteString(" ")
	b.WriteString(StyleValue.Render(move))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("g(n)=%g  h(n)=%g  f(n)=%g", step.G, step.H, step.G+step.H)))
	b.WriteString("\n")

	if m.Result.Problem == solver.ProblemQueens {
		b.WriteString(queensView(step.State, len(m.goal)))
	} else {
		b.WriteString(boardView(step.State, m.goal))
	}
	b.WriteString("\n")

	help := "←/→ step  space play  g/G first/last  q quit"
	if m.Playing {
		help = "space pause  q quit"
	}
	b.WriteString(StyleDim.Render(help))
	b.WriteString("\n")
	return b.String()
}

// =============================================================================
// view command
// =============================================================================

type viewOpts struct {
	initial   string
	goal      string
	n         int
	algorithm string
	timeout   time.Duration
}

// viewCommand creates the view command.
func (c *CLI) viewCommand() *cobra.Command {
	opts := viewOpts{timeout: solver.DefaultTimeout}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Solve and step through the solution interactively",
		Long: `Solve a puzzle (or an N-Queens board with -n) and replay the solution path
in the terminal, one state at a time.

  bestfirst view --initial 8,6,7,2,5,4,3,0,1
  bestfirst view -n 8 -a bfs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.initial, "initial", "", "initial board, row-major, 0 is the blank")
	cmd.Flags().StringVar(&opts.goal, "goal", "", "goal board (default 1..n-1 followed by the blank)")
	cmd.Flags().IntVarP(&opts.n, "queens", "n", 0, "solve an N-Queens board instead of a puzzle")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "algorithm (default depends on the problem)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "search time budget")
	cmd.MarkFlagsMutuallyExclusive("initial", "queens")
	cmd.MarkFlagsOneRequired("initial", "queens")

	return cmd
}

func (c *CLI) runView(ctx context.Context, opts viewOpts) error {
	req := solver.Request{Algorithm: opts.algorithm, TimeoutMS: opts.timeout.Milliseconds()}
	if opts.n > 0 {
		req.Problem, req.N = solver.ProblemQueens, opts.n
	} else {
		var err error
		req.Problem = solver.ProblemPuzzle
		if req.Initial, err = parseTiles(opts.initial); err != nil {
			return fmt.Errorf("initial board: %w", err)
		}
		if req.Goal, err = parseTiles(opts.goal); err != nil {
			return fmt.Errorf("goal board: %w", err)
		}
	}

	runner, err := c.newRunner(ctx, "")
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	spinner := newSpinnerWithContext(ctx, "Searching...")
	spinner.Start()
	res, err := runner.Solve(ctx, req)
	spinner.Stop()
	if err != nil {
		return err
	}
	if !res.Found() {
		printOutcome(res)
		return errors.New(errors.ErrCodeNotFound, "no solution to view")
	}

	_, err = tea.NewProgram(NewPathModel(res), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("view: %w", err)
	}
	return ctx.Err()
}
