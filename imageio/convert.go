package imageio

import (
	"image"
	"image/color"

	"github.com/textureforge/overlapwfc/raster"
)

// toRaster converts a decoded image.Image to a 4-component (RGBA)
// Raster. Every codec in this package normalizes to RGBA on decode, so
// pattern harvesting always sees the same component count regardless
// of source format.
func toRaster(img image.Image) (*raster.Raster, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	out, err := raster.New(w, h, 4)
	if err != nil {
		return nil, err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			px := out.At(x, y)
			px[0] = byte(r >> 8)
			px[1] = byte(g >> 8)
			px[2] = byte(bl >> 8)
			px[3] = byte(a >> 8)
		}
	}
	return out, nil
}

// toImage converts a Raster to a stdlib image.Image suitable for
// encoding. 1-component rasters become image.Gray; 3- and
// 4-component rasters become image.NRGBA (3-component rasters get an
// opaque alpha channel).
func toImage(r *raster.Raster) image.Image {
	switch r.Components {
	case 1:
		img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				img.SetGray(x, y, color.Gray{Y: r.At(x, y)[0]})
			}
		}
		return img
	default:
		img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				px := r.At(x, y)
				c := color.NRGBA{A: 255}
				c.R = px[0]
				if r.Components > 1 {
					c.G = px[1]
				}
				if r.Components > 2 {
					c.B = px[2]
				}
				if r.Components > 3 {
					c.A = px[3]
				}
				img.SetNRGBA(x, y, c)
			}
		}
		return img
	}
}
