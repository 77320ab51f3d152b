package pattern

import "github.com/textureforge/overlapwfc/raster"

// Build runs the full pattern pipeline over input: optional wrap-expand,
// tile harvesting, flip/rotation augmentation, and deduplication with
// frequency counting. The returned Set's PatternIds (their index into
// Patterns) follow harvest order, then augmentation order, per package
// doc.
//
// Returns ErrInvalidTileSize if TileWidth or TileHeight is non-positive,
// ErrTileTooLarge if the tile does not fit input and Expand is false.
func Build(input *raster.Raster, opts BuildOptions) (*Set, error) {
	if opts.TileWidth <= 0 || opts.TileHeight <= 0 {
		return nil, ErrInvalidTileSize
	}

	source := input
	if opts.Expand {
		expanded, err := raster.Expand(input, opts.TileWidth-1, opts.TileHeight-1)
		if err != nil {
			return nil, err
		}
		source = expanded
	}

	xcnt, ycnt := harvestCounts(input.Width, input.Height, opts.TileWidth, opts.TileHeight, opts.Expand)

	patterns, err := harvest(source, opts, xcnt, ycnt)
	if err != nil {
		return nil, err
	}

	patterns = augment(patterns, opts)

	patterns, err = dedup(patterns)
	if err != nil {
		return nil, err
	}

	return &Set{Patterns: patterns}, nil
}
