package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bestfirst/pkg/puzzle"
	"github.com/matzehuels/bestfirst/pkg/queens"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints search statistics on a single line.
func printStats(res *solver.Result) {
	var parts []string
	if res.Found() {
		parts = append(parts, fmt.Sprintf("depth %d", res.Depth))
	}
	parts = append(parts,
		fmt.Sprintf("%d expanded", res.Expanded),
		fmt.Sprintf("%d generated", res.Generated),
		res.Duration().Round(time.Microsecond).String(),
	)

	status := iconFresh
	statusStyle := styleComputed
	if res.Cached {
		status = iconCached
		statusStyle = styleCached
	}
	parts = append(parts, statusStyle.Render(status))

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// =============================================================================
// Boards
// =============================================================================

var (
	styleBoard    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	styleTile     = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleTileHome = lipgloss.NewStyle().Foreground(colorGreen)
	styleQueen    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// boardView draws a puzzle board. When goal is given, tiles already on
// their goal cell are shown in green.
func boardView(tiles, goal []int) string {
	side := sideOf(len(tiles))
	width := len(strconv.Itoa(len(tiles) - 1))
	rows := make([]string, side)
	for r := range side {
		cells := make([]string, side)
		for c := range side {
			i := r*side + c
			t := tiles[i]
			cell := fmt.Sprintf("%*d", width, t)
			switch {
			case t == puzzle.Blank:
				cells[c] = StyleDim.Render(fmt.Sprintf("%*s", width, "·"))
			case goal != nil && goal[i] == t:
				cells[c] = styleTileHome.Render(cell)
			default:
				cells[c] = styleTile.Render(cell)
			}
		}
		rows[r] = strings.Join(cells, " ")
	}
	return styleBoard.Render(strings.Join(rows, "\n"))
}

// queensView draws an n×n board with the given queen columns.
func queensView(cols []int, n int) string {
	p, err := queens.FromColumns(n, cols...)
	if err != nil {
		return fmt.Sprint(cols)
	}
	board := strings.ReplaceAll(p.Board(n), "Q", styleQueen.Render("Q"))
	return styleBoard.Render(strings.TrimRight(board, "\n"))
}

// sideOf returns the board width for n cells.
func sideOf(n int) int {
	side := 1
	for side*side < n {
		side++
	}
	return side
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
