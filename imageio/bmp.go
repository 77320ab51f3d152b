package imageio

import (
	"io"

	"golang.org/x/image/bmp"

	"github.com/textureforge/overlapwfc/raster"
)

func decodeBMP(r io.Reader) (*raster.Raster, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return toRaster(img)
}

func encodeBMP(w io.Writer, r *raster.Raster) error {
	return bmp.Encode(w, toImage(r))
}
