package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bestfirst/pkg/bench"
	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

const barWidth = 40

var (
	styleTableHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleTableCell   = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	styleTableDepth  = lipgloss.NewStyle().Foreground(colorCyan).Padding(0, 1)
	styleBar         = lipgloss.NewStyle().Foreground(colorGreen)
)

// reportCommand creates the report command.
func (c *CLI) reportCommand() *cobra.Command {
	var mongoURI, runID string
	var listRuns int

	cmd := &cobra.Command{
		Use:   "report [results.csv]",
		Short: "Summarize benchmark results per solution depth",
		Long: `Summarize benchmark results: expanded nodes and time per solution depth for
each algorithm. Rows without a solution (N/A or TIMEOUT) are skipped.

  bestfirst report results.csv
  bestfirst report --mongo mongodb://localhost:27017 --runs 10
  bestfirst report --mongo mongodb://localhost:27017 --run <id>`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch {
			case len(args) == 1:
				records, err := readResults(args[0])
				if err != nil {
					return err
				}
				return printReport(records)
			case mongoURI == "":
				return errors.New(errors.ErrCodeInvalidInput, "need a results file or --mongo")
			case runID != "":
				records, err := loadRun(ctx, mongoURI, runID)
				if err != nil {
					return err
				}
				return printReport(records)
			default:
				return listStoredRuns(ctx, mongoURI, listRuns)
			}
		},
	}

	cmd.Flags().StringVar(&mongoURI, "mongo", envOr(envMongoDBURI, ""), "MongoDB URI to read stored runs from")
	cmd.Flags().StringVar(&runID, "run", "", "stored run to report")
	cmd.Flags().IntVar(&listRuns, "runs", 20, "number of stored runs to list")

	return cmd
}

func readResults(path string) ([]bench.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "results file %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return bench.ReadCSV(f)
}

func loadRun(ctx context.Context, uri, runID string) ([]bench.Record, error) {
	store, err := bench.NewMongoStore(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer store.Close(context.Background())
	return store.Load(ctx, runID)
}

func listStoredRuns(ctx context.Context, uri string, limit int) error {
	store, err := bench.NewMongoStore(ctx, uri)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	runs, err := store.Runs(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		printInfo("No stored runs")
		return nil
	}
	fmt.Println(runsView(runs))
	printNewline()
	printNextStep("Report a run", "bestfirst report --run "+runs[0].RunID)
	return nil
}

func printReport(records []bench.Record) error {
	s := bench.Summarize(records)
	if len(s.Depths) == 0 {
		printWarning("No solved cases among %d records", len(records))
		return nil
	}
	fmt.Println(reportView(s))
	if s.Skipped > 0 {
		printDetail("%d records without a solution skipped", s.Skipped)
	}
	return nil
}

// reportView renders the node and time tables and a node chart for the
// deepest solved depth.
func reportView(s *bench.Summary) string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Nodes expanded"))
	b.WriteString("\n")
	b.WriteString(summaryTable(s, func(p bench.Point) string {
		return strconv.FormatFloat(p.Nodes, 'f', 0, 64)
	}))
	b.WriteString("\n\n")

	b.WriteString(StyleTitle.Render("Time (s)"))
	b.WriteString("\n")
	b.WriteString(summaryTable(s, func(p bench.Point) string {
		return strconv.FormatFloat(p.Seconds, 'f', 4, 64)
	}))

	if len(s.Depths) > 0 {
		b.WriteString("\n\n")
		b.WriteString(nodeChart(s, s.Depths[len(s.Depths)-1]))
	}
	return b.String()
}

func summaryTable(s *bench.Summary, cell func(bench.Point) string) string {
	headers := []string{"Depth"}
	for _, alg := range s.Algorithms {
		headers = append(headers, algorithmLabel(alg))
	}

	rows := make([][]string, 0, len(s.Depths))
	for _, d := range s.Depths {
		row := []string{strconv.Itoa(d)}
		for _, alg := range s.Algorithms {
			if p, ok := s.Point(d, alg); ok {
				row = append(row, cell(p))
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleTableHeader.Padding(0, 1)
			case col == 0:
				return styleTableDepth
			default:
				return styleTableCell.Align(lipgloss.Right)
			}
		})
	return t.Render()
}

// nodeChart draws one bar per algorithm for the nodes expanded at depth.
func nodeChart(s *bench.Summary, depth int) string {
	var points []bench.Point
	var most float64
	width := 0
	for _, alg := range s.Algorithms {
		if p, ok := s.Point(depth, alg); ok {
			points = append(points, p)
			most = max(most, p.Nodes)
			width = max(width, len(algorithmLabel(alg)))
		}
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Nodes at depth %d", depth)))
	for _, p := range points {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-*s ", width, algorithmLabel(p.Algorithm))))
		b.WriteString(styleBar.Render(bench.Bar(p.Nodes, most, barWidth)))
		b.WriteString(" " + StyleNumber.Render(strconv.FormatFloat(p.Nodes, 'f', 0, 64)))
	}
	return b.String()
}

func runsView(runs []bench.RunInfo) string {
	rows := make([][]string, len(runs))
	for i, r := range runs {
		rows[i] = []string{r.RunID, r.Suite, strconv.Itoa(r.Records), r.StartedAt.Local().Format(time.DateTime)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Run", "Suite", "Records", "Started").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader.Padding(0, 1)
			}
			return styleTableCell
		}).
		Render()
}

func algorithmLabel(name string) string {
	if a, ok := solver.LookupAlgorithm(solver.ProblemPuzzle, name); ok {
		return a.Label
	}
	return name
}
