package wfc

// Options configures solver construction. Use DefaultOptions and the
// WithX constructors rather than building an Options literal; the zero
// value is not valid (PropagationCap would be zero).
type Options struct {
	// PropagationCap sets the worklist capacity preallocated per cell
	// (cellCount*PropagationCap entries). It is not a ceiling: when
	// propagation needs more entries the worklist grows past it, and no
	// contradiction is reported for it.
	PropagationCap int

	// EntropyJitter is the magnitude of the per-cell pseudo-random term
	// added to entropy before comparing candidates for the
	// minimum-entropy heuristic, breaking ties deterministically for a
	// given seed instead of always preferring the lowest cell index.
	EntropyJitter float64
}

// Option configures a Solver at construction time.
type Option func(*Options)

// DefaultOptions returns the options NewOverlappingSolver uses when none
// are given: a propagation cap of 1000 entries per cell and a jitter of
// 1/100000.
func DefaultOptions() Options {
	return Options{
		PropagationCap: 1000,
		EntropyJitter:  1.0 / 100000,
	}
}

// WithPropagationCap overrides the per-cell worklist preallocation. It
// panics if n is not positive, which indicates a programming error, not
// a runtime condition.
func WithPropagationCap(n int) Option {
	if n <= 0 {
		panic("wfc: propagation cap must be positive")
	}
	return func(o *Options) { o.PropagationCap = n }
}

// WithEntropyJitter overrides the entropy tie-breaking jitter magnitude.
// It panics if jitter is negative.
func WithEntropyJitter(jitter float64) Option {
	if jitter < 0 {
		panic("wfc: entropy jitter must be non-negative")
	}
	return func(o *Options) { o.EntropyJitter = jitter }
}
