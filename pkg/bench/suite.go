package bench

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bestfirst/pkg/errors"
	"github.com/matzehuels/bestfirst/pkg/puzzle"
	"github.com/matzehuels/bestfirst/pkg/solver"
)

// DefaultCaseTimeout bounds each (case, algorithm) pair unless the suite
// sets its own.
const DefaultCaseTimeout = 5 * time.Minute

// Suite is a benchmark definition, usually loaded from TOML:
//
//	name       = "classic"
//	goal       = [1, 2, 3, 4, 5, 6, 7, 8, 0]
//	algorithms = ["ucs", "astar-misplaced", "astar-manhattan"]
//	timeout    = "2m"
//
//	[[case]]
//	name    = "depth-2"
//	initial = [1, 2, 3, 4, 5, 6, 0, 7, 8]
//	depth   = 2
type Suite struct {
	Name       string   `toml:"name"`
	Goal       []int    `toml:"goal"`
	Algorithms []string `toml:"algorithms"`
	Timeout    Duration `toml:"timeout"`
	Cases      []Case   `toml:"case"`
}

// Case is one initial board. Depth, when non-zero, is the known optimal
// solution length and is checked against optimal algorithms.
type Case struct {
	Name    string `toml:"name"`
	Initial []int  `toml:"initial"`
	Depth   int    `toml:"depth"`
}

// Duration is a time.Duration written as a string ("90s") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// LoadSuite reads and validates a TOML suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseSuite decodes and validates a TOML suite.
func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode suite")
	}
	if err := s.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ValidateAndSetDefaults checks every case and algorithm.
func (s *Suite) ValidateAndSetDefaults() error {
	if s.Name == "" {
		s.Name = "suite"
	}
	if len(s.Cases) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "suite %q has no cases", s.Name)
	}
	if len(s.Algorithms) == 0 {
		s.Algorithms = defaultAlgorithms()
	}
	if s.Timeout.Duration <= 0 {
		s.Timeout.Duration = DefaultCaseTimeout
	}

	known := solver.AlgorithmNames(solver.ProblemPuzzle)
	for _, a := range s.Algorithms {
		if err := errors.ValidateAlgorithm(a, known); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case_%d", i+1)
		}
		if seen[c.Name] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate case name %q", c.Name)
		}
		seen[c.Name] = true

		p, err := puzzle.FromTiles(c.Initial, s.Goal)
		if err != nil {
			return fmt.Errorf("case %s: %w", c.Name, err)
		}
		if s.Goal == nil {
			s.Goal = p.Goal().Tiles()
		}
	}
	return nil
}

// Encode writes s as TOML.
func (s *Suite) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func defaultAlgorithms() []string {
	return []string{solver.AlgUCS, solver.AlgAStarMisplaced, solver.AlgAStarManhattan}
}

// DefaultSuite is the classic 8-puzzle benchmark: eight boards with optimal
// depths 0 to 24, solved by UCS and both A* variants.
func DefaultSuite() *Suite {
	return &Suite{
		Name:       "classic",
		Goal:       []int{1, 2, 3, 4, 5, 6, 7, 8, 0},
		Algorithms: defaultAlgorithms(),
		Timeout:    Duration{DefaultCaseTimeout},
		Cases: []Case{
			{"testcase_1", []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, 0},
			{"testcase_2", []int{1, 2, 3, 4, 5, 6, 0, 7, 8}, 2},
			{"testcase_3", []int{1, 2, 3, 5, 0, 6, 4, 7, 8}, 4},
			{"testcase_4", []int{1, 3, 6, 5, 0, 2, 4, 7, 8}, 8},
			{"testcase_5", []int{1, 3, 6, 5, 0, 7, 4, 8, 2}, 12},
			{"testcase_6", []int{1, 6, 7, 5, 0, 3, 4, 8, 2}, 16},
			{"testcase_7", []int{7, 1, 2, 4, 8, 5, 6, 3, 0}, 20},
			{"testcase_8", []int{0, 7, 2, 4, 6, 1, 3, 5, 8}, 24},
		},
	}
}
