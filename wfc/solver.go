package wfc

import (
	"math"
	"math/rand"
	"time"

	"github.com/textureforge/overlapwfc/pattern"
	"github.com/textureforge/overlapwfc/rules"
)

// NewOverlappingSolver compiles set's adjacency rules and allocates a
// solver for an output grid of width x height cells. The solver is
// seeded from the current time and Init'd, so it is immediately ready
// for Run; call Reseed first for reproducible output.
func NewOverlappingSolver(set *pattern.Set, width, height int, opts ...Option) (*Solver, error) {
	if set.Len() == 0 {
		return nil, ErrEmptyPatternSet
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidOutputSize
	}

	matrix, err := rules.Compile(set)
	if err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := set.Len()
	cellCount := width * height

	freqs := make([]int, p)
	sumFreqsGlobal := 0
	for i, pat := range set.Patterns {
		freqs[i] = pat.Freq
		sumFreqsGlobal += pat.Freq
	}

	entropyGlobal := shannonEntropy(freqs, sumFreqsGlobal)

	s := &Solver{
		width:          width,
		height:         height,
		cellCount:      cellCount,
		p:              p,
		matrix:         matrix,
		patternFreqs:   freqs,
		sumFreqsGlobal: sumFreqsGlobal,
		entropyGlobal:  entropyGlobal,
		cells:          make([]cell, cellCount),
		candBuf:        make([]int, cellCount*p),
		worklist:       make([]propEntry, 0, cellCount*o.PropagationCap),
		opts:           o,
	}

	s.Reseed(time.Now().UnixNano())
	return s, nil
}

// shannonEntropy computes -sum(p_i*log(p_i)) over freqs/total, the
// fixed global distribution every cell's residual entropy is measured
// against. A pattern with zero frequency contributes nothing (its
// limit is 0, not NaN).
func shannonEntropy(freqs []int, total int) float64 {
	if total == 0 {
		return 0
	}
	h := 0.0
	for _, f := range freqs {
		if f == 0 {
			continue
		}
		p := float64(f) / float64(total)
		h -= p * math.Log(p)
	}
	return h
}

// Reseed sets the solver's RNG stream to seed and reinitializes all
// cell state to the unconstrained start (every candidate live in every
// cell, worklist empty, state Ready). Call it before Run to get
// reproducible output, or between Run calls to retry after a
// contradiction with a fresh stream.
func (s *Solver) Reseed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
	s.Init()
}

// Init resets the solver to its unconstrained start without touching
// the RNG stream, so a caller that wants deterministic retries across
// multiple Init calls can Reseed once and Init repeatedly... though in
// practice retries should Reseed, since replaying the same stream after
// a contradiction reproduces the same contradiction.
func (s *Solver) Init() {
	for i := range s.cells {
		c := &s.cells[i]
		c.candidates = s.candBuf[i*s.p : (i+1)*s.p : (i+1)*s.p]
		for t := 0; t < s.p; t++ {
			c.candidates[t] = t
		}
		c.count = s.p
		c.sumFreqs = s.sumFreqsGlobal
		c.entropy = s.entropyGlobal
	}
	s.worklist = s.worklist[:0]
	s.cursor = 0
	s.length = 0
	s.collapsedCount = 0
	for i := range s.cells {
		if s.cells[i].count == 1 {
			s.collapsedCount++
		}
	}
	s.state = Ready
}
