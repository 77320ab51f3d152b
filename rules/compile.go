package rules

import (
	"github.com/textureforge/overlapwfc/pattern"
	"github.com/textureforge/overlapwfc/raster"
)

// Compile builds the allowed-adjacency Matrix for patterns: for every
// ordered triple (d, a, b), Allowed(d, a, b) is set from
// raster.Overlap(patterns[a].Image, patterns[b].Image, d). Self-overlap
// (a == b) is included — a pattern may sit next to its own copy
// whenever its own shifted content matches itself.
//
// Returns ErrEmptyPatternSet if set has zero patterns.
//
// Complexity: O(4 * P^2 * Tw * Th * C).
func Compile(set *pattern.Set) (*Matrix, error) {
	p := set.Len()
	if p == 0 {
		return nil, ErrEmptyPatternSet
	}

	m := &Matrix{p: p, allowed: make([]bool, 4*p*p)}

	for _, d := range directions {
		for a := 0; a < p; a++ {
			for b := 0; b < p; b++ {
				ok, err := raster.Overlap(set.Patterns[a].Image, set.Patterns[b].Image, d)
				if err != nil {
					return nil, err
				}
				m.set(d, a, b, ok)
			}
		}
	}

	return m, nil
}
