// Package queens implements the N-Queens puzzle as a [search.Problem].
//
// Queens are placed row by row: a [Placement] of length k holds the column
// of the queen in each of the first k rows. Successors only add queens that
// are not attacked, so every placement in the search tree is consistent and
// the goal is simply a placement of length N.
package queens

import (
	"strconv"
	"strings"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/search"
)

// Placement is a partial board; byte r is the column of the queen in row r.
type Placement string

// Columns returns the queen column of each placed row.
func (p Placement) Columns() []int {
	out := make([]int, len(p))
	for i := range out {
		out[i] = int(p[i])
	}
	return out
}

// Len returns the number of queens placed.
func (p Placement) Len() int { return len(p) }

// Place returns p with one more queen in column col of the next row.
func (p Placement) Place(col int) Placement {
	return p + Placement([]byte{byte(col)})
}

// Safe reports whether a queen in column col of the next row is attacked
// by any queen already placed.
func (p Placement) Safe(col int) bool {
	row := len(p)
	for r := 0; r < row; r++ {
		c := int(p[r])
		if c == col || abs(c-col) == row-r {
			return false
		}
	}
	return true
}

// Valid reports whether no two queens in p attack each other.
func (p Placement) Valid() bool {
	for r := 1; r < len(p); r++ {
		if !p[:r].Safe(int(p[r])) {
			return false
		}
	}
	return true
}

// String renders the columns, e.g. "[1 3 0 2]".
func (p Placement) String() string {
	parts := make([]string, len(p))
	for i := range p {
		parts[i] = strconv.Itoa(int(p[i]))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Board draws p on an n×n grid with Q for queens and . for empty cells.
// Rows without a queen yet are left empty.
func (p Placement) Board(n int) string {
	var b strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if r < len(p) && int(p[r]) == c {
				b.WriteByte('Q')
			} else {
				b.WriteByte('.')
			}
		}
		if r < n-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// FromColumns builds a placement from column indices.
func FromColumns(n int, cols ...int) (Placement, error) {
	if err := errors.ValidateQueens(n); err != nil {
		return "", err
	}
	if len(cols) > n {
		return "", errors.New(errors.ErrCodeInvalidState, "%d queens do not fit %d rows", len(cols), n)
	}
	b := make([]byte, len(cols))
	for i, c := range cols {
		if c < 0 || c >= n {
			return "", errors.New(errors.ErrCodeInvalidState, "column %d out of range 0..%d", c, n-1)
		}
		b[i] = byte(c)
	}
	return Placement(b), nil
}

// Problem places N non-attacking queens on an N×N board.
type Problem struct {
	n int
}

var _ search.Problem[Placement] = (*Problem)(nil)

// New returns the N-Queens problem for an n×n board.
func New(n int) (*Problem, error) {
	if err := errors.ValidateQueens(n); err != nil {
		return nil, err
	}
	return &Problem{n: n}, nil
}

func (q *Problem) N() int                    { return q.n }
func (q *Problem) Initial() Placement        { return "" }
func (q *Problem) GoalTest(p Placement) bool { return len(p) == q.n }

// Successors extends p by one row with every column not under attack,
// in ascending column order.
func (q *Problem) Successors(p Placement) []Placement {
	if len(p) >= q.n {
		return nil
	}
	var out []Placement
	for col := 0; col < q.n; col++ {
		if p.Safe(col) {
			out = append(out, p.Place(col))
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
