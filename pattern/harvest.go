package pattern

import "github.com/textureforge/overlapwfc/raster"

// harvest cuts input into TileWidth x TileHeight tiles, one per starting
// position, each with initial Freq 1. When opts.Expand is set, input has
// already been wrap-expanded by the caller and harvest walks the
// original W x H starting positions; otherwise it walks every position
// that fits without wrapping.
//
// Returns ErrTileTooLarge if no tile fits (tile larger than input and
// Expand unset).
func harvest(input *raster.Raster, opts BuildOptions, xcnt, ycnt int) ([]Pattern, error) {
	if xcnt <= 0 || ycnt <= 0 {
		return nil, ErrTileTooLarge
	}

	patterns := make([]Pattern, 0, xcnt*ycnt)
	for y := 0; y < ycnt; y++ {
		for x := 0; x < xcnt; x++ {
			tile, err := cropTile(input, x, y, opts.TileWidth, opts.TileHeight)
			if err != nil {
				return nil, err
			}
			patterns = append(patterns, Pattern{Image: tile, Freq: 1})
		}
	}

	return patterns, nil
}

// cropTile copies the tileW x tileH window of input starting at (x,y).
// The caller guarantees the window fits within input.
func cropTile(input *raster.Raster, x, y, tileW, tileH int) (*raster.Raster, error) {
	tile, err := raster.New(tileW, tileH, input.Components)
	if err != nil {
		return nil, err
	}

	comps := input.Components
	inStride := input.Width * comps
	outStride := tile.Width * comps
	for row := 0; row < tileH; row++ {
		srcOff := (y+row)*inStride + x*comps
		dstOff := row * outStride
		copy(tile.Pix[dstOff:dstOff+outStride], input.Pix[srcOff:srcOff+outStride])
	}

	return tile, nil
}

// harvestCounts computes the number of tile starting positions in each
// axis for the given input size, tile size, and expand flag.
func harvestCounts(inputW, inputH, tileW, tileH int, expand bool) (xcnt, ycnt int) {
	if expand {
		return inputW, inputH
	}

	return inputW - tileW + 1, inputH - tileH + 1
}
