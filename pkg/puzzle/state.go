package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/bestfirst/pkg/errors"
)

// Blank is the label of the empty cell.
const Blank = 0

// State is a board position; byte i holds the label of cell i.
type State string

// NewState builds a state from row-major tile labels.
func NewState(tiles ...int) (State, error) {
	if _, err := errors.ValidateTiles(tiles); err != nil {
		return "", err
	}
	b := make([]byte, len(tiles))
	for i, t := range tiles {
		b[i] = byte(t)
	}
	return State(b), nil
}

// MustState is like NewState but panics on invalid input.
func MustState(tiles ...int) State {
	s, err := NewState(tiles...)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseState parses labels separated by commas or whitespace, e.g.
// "1,2,3,4,5,6,7,0,8". An underscore may stand for the blank.
func ParseState(s string) (State, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t' || r == '\n'
	})
	tiles := make([]int, len(fields))
	for i, f := range fields {
		if f == "_" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return "", errors.New(errors.ErrCodeInvalidState, "invalid tile %q", f)
		}
		tiles[i] = n
	}
	return NewState(tiles...)
}

// Goal returns the canonical goal for a side×side board: 1..n-1 then blank.
func Goal(side int) State {
	n := side * side
	b := make([]byte, n)
	for i := 0; i < n-1; i++ {
		b[i] = byte(i + 1)
	}
	b[n-1] = Blank
	return State(b)
}

// Len returns the number of cells.
func (s State) Len() int { return len(s) }

// Side returns the board width.
func (s State) Side() int {
	side := 0
	for side*side < len(s) {
		side++
	}
	return side
}

// At returns the label of cell i.
func (s State) At(i int) int { return int(s[i]) }

// Tiles returns the labels as ints.
func (s State) Tiles() []int {
	out := make([]int, len(s))
	for i := range out {
		out[i] = int(s[i])
	}
	return out
}

// BlankIndex returns the cell holding the blank.
func (s State) BlankIndex() int {
	return strings.IndexByte(string(s), Blank)
}

// String renders the state on one line, rows separated by "|".
// Example: "1,2,3|4,5,6|7,_,8".
func (s State) String() string {
	side := s.Side()
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 {
			if i%side == 0 {
				b.WriteByte('|')
			} else {
				b.WriteByte(',')
			}
		}
		if s[i] == Blank {
			b.WriteByte('_')
		} else {
			b.WriteString(strconv.Itoa(int(s[i])))
		}
	}
	return b.String()
}

// Rows returns the board as a matrix.
func (s State) Rows() [][]int {
	side := s.Side()
	tiles := s.Tiles()
	rows := make([][]int, side)
	for r := range rows {
		rows[r] = tiles[r*side : (r+1)*side]
	}
	return rows
}

// Board renders the state as a nested list, one row per line:
//
//	[[1, 2, 3],
//	 [4, 5, 6],
//	 [7, 8, 0]]
func (s State) Board() string {
	var b strings.Builder
	rows := s.Rows()
	for r, row := range rows {
		if r == 0 {
			b.WriteString("[[")
		} else {
			b.WriteString(" [")
		}
		for c, v := range row {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(v))
		}
		if r == len(rows)-1 {
			b.WriteString("]]")
		} else {
			b.WriteString("],\n")
		}
	}
	return b.String()
}

// GoString makes states readable in test failures.
func (s State) GoString() string { return fmt.Sprintf("puzzle.State(%q)", s.String()) }
