package pattern

import "github.com/textureforge/overlapwfc/raster"

// augment appends transformed copies of every pattern currently in
// patterns, per the enabled switches, in this fixed order: xflip,
// yflip (skipped when both xflip and rotate are set), then rotate. Each
// appended copy starts with Freq 1; deduplication folds repeats later.
func augment(patterns []Pattern, opts BuildOptions) []Pattern {
	if opts.XFlip {
		patterns = appendTransformed(patterns, raster.FlipHorizontal)
	}

	// Horizontal flip composed with a 180-degree rotation already yields
	// every vertical flip, so adding yflip on top of xflip+rotate would
	// only produce duplicates for the dedup pass to fold back out.
	if opts.YFlip && !(opts.XFlip && opts.Rotate) {
		patterns = appendTransformed(patterns, raster.FlipVertical)
	}

	if opts.Rotate {
		base := len(patterns)
		for i := 0; i < base; i++ {
			for n := 1; n <= 3; n++ {
				patterns = append(patterns, Pattern{
					Image: raster.Rotate90(patterns[i].Image, n),
					Freq:  1,
				})
			}
		}
	}

	return patterns
}

// appendTransformed appends transform(p.Image) for every pattern
// currently in patterns, without mutating the patterns already present.
func appendTransformed(patterns []Pattern, transform func(*raster.Raster) *raster.Raster) []Pattern {
	base := len(patterns)
	for i := 0; i < base; i++ {
		patterns = append(patterns, Pattern{Image: transform(patterns[i].Image), Freq: 1})
	}

	return patterns
}
