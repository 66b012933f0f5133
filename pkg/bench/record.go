package bench

import (
	"strconv"
	"time"

	"github.com/matzehuels/bestfirst/pkg/solver"
)

// CSV depth markers.
const (
	DepthNotFound = "N/A"
	DepthTimeout  = "TIMEOUT"
)

// Record is the measurement of one (case, algorithm) pair.
type Record struct {
	RunID     string    `json:"run_id" bson:"run_id"`
	Suite     string    `json:"suite" bson:"suite"`
	Case      string    `json:"test_case" bson:"test_case"`
	Algorithm string    `json:"algorithm" bson:"algorithm"`
	Status    string    `json:"status" bson:"status"`
	Depth     int       `json:"depth" bson:"depth"` // -1 unless Status is goal
	Nodes     int       `json:"nodes" bson:"nodes"`
	Seconds   float64   `json:"time_s" bson:"time_s"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Found reports whether the search reached the goal.
func (r Record) Found() bool { return r.Status == solver.StatusGoal }

// DepthField renders the depth column: the depth, N/A or TIMEOUT.
func (r Record) DepthField() string {
	switch r.Status {
	case solver.StatusGoal:
		return strconv.Itoa(r.Depth)
	case solver.StatusTimeout:
		return DepthTimeout
	default:
		return DepthNotFound
	}
}

// AlgorithmLabel returns the display name of the record's algorithm.
func (r Record) AlgorithmLabel() string {
	if a, ok := solver.LookupAlgorithm(solver.ProblemPuzzle, r.Algorithm); ok {
		return a.Label
	}
	return r.Algorithm
}

// algorithmName maps a display label back to its algorithm name.
func algorithmName(label string) string {
	for _, a := range solver.Algorithms(solver.ProblemPuzzle) {
		if a.Label == label || a.Name == label {
			return a.Name
		}
	}
	return label
}
