package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments (or
// binary versions) can share one Redis without reading each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "bestfirst:v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResultKey generates a prefixed result key.
func (k *ScopedKeyer) ResultKey(opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(opts)
}

// SuiteKey generates a prefixed benchmark key.
func (k *ScopedKeyer) SuiteKey(suite, caseName, algorithm string) string {
	return k.prefix + k.inner.SuiteKey(suite, caseName, algorithm)
}
