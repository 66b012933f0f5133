package cache

import "fmt"

// Keyer derives cache keys.
type Keyer interface {
	// ResultKey identifies a solve result.
	ResultKey(opts ResultKeyOpts) string
	// SuiteKey identifies one benchmark measurement.
	SuiteKey(suite, caseName, algorithm string) string
}

// ResultKeyOpts are the inputs that determine a solve result.
type ResultKeyOpts struct {
	Problem   string `json:"problem"`
	Algorithm string `json:"algorithm"`
	Initial   []int  `json:"initial,omitempty"`
	Goal      []int  `json:"goal,omitempty"`
	N         int    `json:"n,omitempty"`
}

// DefaultKeyer hashes key options with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ResultKey(opts ResultKeyOpts) string {
	return hashKey("result", opts)
}

func (DefaultKeyer) SuiteKey(suite, caseName, algorithm string) string {
	return fmt.Sprintf("bench:%s:%s:%s", suite, caseName, algorithm)
}
