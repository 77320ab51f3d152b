// Package pattern harvests tiles from an input raster, augments them
// with flips and rotations, deduplicates them, and counts frequencies —
// producing the dense set of Patterns the rule compiler and solver
// operate on.
//
// PatternIds are dense integers in [0, len(patterns)) assigned in a
// deterministic order: first harvest order, then the order switches are
// applied (xflip, yflip, rotate), with ties broken by first occurrence
// during deduplication. See Build for the exact order.
package pattern

import (
	"errors"

	"github.com/textureforge/overlapwfc/raster"
)

// Sentinel errors for pattern extraction.
var (
	// ErrTileTooLarge indicates the tile size exceeds the input raster and
	// Expand is not set, so no tile can be harvested.
	ErrTileTooLarge = errors.New("pattern: tile size exceeds input raster")

	// ErrInvalidTileSize indicates a non-positive tile width or height.
	ErrInvalidTileSize = errors.New("pattern: tile width and height must be positive")

	// ErrEmptyPatternSet indicates harvesting produced zero patterns, which
	// should be unreachable given a validated, non-empty input raster.
	ErrEmptyPatternSet = errors.New("pattern: no patterns harvested")
)

// Id is a dense pattern identifier in [0, P).
type Id int

// Pattern is a small raster together with its occurrence frequency in
// the (possibly augmented) training set. Patterns are immutable once
// Build returns.
type Pattern struct {
	Image *raster.Raster
	Freq  int
}

// Set is the ordered, deduplicated result of Build: Patterns[i] is
// identified by Id(i).
type Set struct {
	Patterns []Pattern
}

// Len returns the number of distinct patterns, P.
func (s *Set) Len() int {
	return len(s.Patterns)
}

// SumFreqs returns the sum of Freq over every pattern in the set.
func (s *Set) SumFreqs() int {
	sum := 0
	for _, p := range s.Patterns {
		sum += p.Freq
	}

	return sum
}
