// Package compositor renders a solver's cell candidates into a pixel
// raster. Overlapping WFC never stores full pattern images per output
// cell — only the top-left pixel of each surviving candidate pattern
// is sampled and averaged, which is why a cell with several candidates
// left (an incomplete, budget-exceeded solve) still renders a sensible,
// if blended, color instead of nothing. A cell with zero candidates
// (only possible after a contradiction) renders as zero-valued rather
// than dividing by zero.
package compositor

import (
	"errors"

	"github.com/textureforge/overlapwfc/pattern"
	"github.com/textureforge/overlapwfc/raster"
	"github.com/textureforge/overlapwfc/wfc"
)

// ErrPatternCountMismatch indicates set was not the same pattern set the
// solver was constructed from.
var ErrPatternCountMismatch = errors.New("compositor: pattern set does not match solver")

// Average renders one pixel per solver cell: for each component, the
// floor of the mean of that component's value across the top-left
// pixel of every candidate pattern still possible at that cell. It can
// be called at any point in a solve, not only after Run reaches
// Success — a cell with many live candidates renders their blended
// average, a fully collapsed cell renders that pattern's color
// exactly, and a cell with no candidates left (contradiction) renders
// as zero rather than panicking.
func Average(s *wfc.Solver, set *pattern.Set) (*raster.Raster, error) {
	if set.Len() != s.PatternCount() {
		return nil, ErrPatternCountMismatch
	}

	comps := set.Patterns[0].Image.Components
	out, err := raster.New(s.Width(), s.Height(), comps)
	if err != nil {
		return nil, err
	}

	sums := make([]int, comps)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			i := y*s.Width() + x
			cands := s.CellCandidates(i)

			for c := range sums {
				sums[c] = 0
			}
			for _, t := range cands {
				topLeft := set.Patterns[t].Image.Pix[:comps]
				for c := 0; c < comps; c++ {
					sums[c] += int(topLeft[c])
				}
			}

			px := out.At(x, y)
			if len(cands) == 0 {
				continue
			}
			for c := 0; c < comps; c++ {
				px[c] = byte(sums[c] / len(cands))
			}
		}
	}

	return out, nil
}
