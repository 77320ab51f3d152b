package imageio

import (
	"image/png"
	"io"

	"github.com/textureforge/overlapwfc/raster"
)

func decodePNG(r io.Reader) (*raster.Raster, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return toRaster(img)
}

func encodePNG(w io.Writer, r *raster.Raster) error {
	return png.Encode(w, toImage(r))
}
