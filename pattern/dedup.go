package pattern

import "github.com/textureforge/overlapwfc/raster"

// dedup compacts patterns in place, preserving first-occurrence order.
// For each pattern visited after the first, it is compared against
// every already-kept pattern; on a byte-exact match the kept pattern's
// Freq is incremented and the duplicate discarded, otherwise the
// pattern is kept. This fixes PatternId assignment order: patterns
// appear in the order of first harvest, then first flip, then
// rotations — whichever of those Build ran.
//
// Returns ErrEmptyPatternSet if patterns is empty.
func dedup(patterns []Pattern) ([]Pattern, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPatternSet
	}

	kept := patterns[:1]
	for _, candidate := range patterns[1:] {
		duplicate := false
		for i := range kept {
			if raster.Equal(kept[i].Image, candidate.Image) {
				kept[i].Freq++
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, candidate)
		}
	}

	return kept, nil
}
