package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

// Header is the CSV column order.
var Header = []string{"test_case", "algorithm", "depth", "nodes", "time_s"}

// WriteCSV writes records with a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Case,
			r.AlgorithmLabel(),
			r.DepthField(),
			strconv.Itoa(r.Nodes),
			strconv.FormatFloat(r.Seconds, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a results file written by WriteCSV. Columns are located
// by header name, so extra columns are ignored.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read csv")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "empty csv")
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, name := range Header {
		if _, ok := col[name]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "missing column %q", name)
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row, col)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d", i+2)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string, col map[string]int) (Record, error) {
	rec := Record{
		Case:      row[col["test_case"]],
		Algorithm: algorithmName(row[col["algorithm"]]),
		Depth:     -1,
	}

	switch depth := row[col["depth"]]; depth {
	case DepthNotFound:
		rec.Status = solver.StatusExhausted
	case DepthTimeout:
		rec.Status = solver.StatusTimeout
	default:
		d, err := strconv.Atoi(depth)
		if err != nil {
			return rec, fmt.Errorf("depth %q: %w", depth, err)
		}
		rec.Status, rec.Depth = solver.StatusGoal, d
	}

	nodes, err := strconv.Atoi(row[col["nodes"]])
	if err != nil {
		return rec, fmt.Errorf("nodes: %w", err)
	}
	secs, err := strconv.ParseFloat(row[col["time_s"]], 64)
	if err != nil {
		return rec, fmt.Errorf("time_s: %w", err)
	}
	rec.Nodes, rec.Seconds = nodes, secs
	return rec, nil
}
