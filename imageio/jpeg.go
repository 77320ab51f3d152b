package imageio

import (
	"image/jpeg"
	"io"

	"github.com/textureforge/overlapwfc/raster"
)

func decodeJPEG(r io.Reader) (*raster.Raster, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, err
	}
	return toRaster(img)
}

// encodeJPEG writes r at the library default quality. Texture synthesis
// output is typically fed back into other tools as a lossless format;
// JPEG encode support exists for round-tripping JPEG inputs, not as the
// recommended output format.
func encodeJPEG(w io.Writer, r *raster.Raster) error {
	return jpeg.Encode(w, toImage(r), nil)
}
