package imageio

import (
	"bufio"
	"io"

	"github.com/textureforge/overlapwfc/raster"
)

// No example repo or retrieved reference file in this project's corpus
// imports a TGA codec library, so this is a small hand-written decoder/
// encoder rather than a generalization of an existing dependency. It
// covers exactly the variant texture tools actually produce: image type
// 2 (uncompressed truecolor), no color map, 24 or 32 bits per pixel.

const tgaHeaderSize = 18

func decodeTGA(r io.Reader) (*raster.Raster, error) {
	br := bufio.NewReader(r)

	header := make([]byte, tgaHeaderSize)
	if _, err := io.ReadFull(br, header); err != nil {
		return nil, err
	}

	idLength := header[0]
	colorMapType := header[1]
	imageType := header[2]
	width := int(header[12]) | int(header[13])<<8
	height := int(header[14]) | int(header[15])<<8
	bpp := header[16]
	descriptor := header[17]

	if colorMapType != 0 || imageType != 2 || (bpp != 24 && bpp != 32) {
		return nil, ErrUnsupportedTGA
	}

	if idLength > 0 {
		if _, err := io.CopyN(io.Discard, br, int64(idLength)); err != nil {
			return nil, err
		}
	}

	out, err := raster.New(width, height, 4)
	if err != nil {
		return nil, err
	}

	bytesPerPixel := int(bpp) / 8
	row := make([]byte, width*bytesPerPixel)

	// Bit 5 of the descriptor is set when rows are stored top-to-bottom;
	// when clear (the common case) the file stores bottom-to-top.
	topToBottom := descriptor&0x20 != 0

	for fileRow := 0; fileRow < height; fileRow++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, err
		}

		y := fileRow
		if !topToBottom {
			y = height - 1 - fileRow
		}

		for x := 0; x < width; x++ {
			src := row[x*bytesPerPixel : x*bytesPerPixel+bytesPerPixel]
			px := out.At(x, y)
			px[0] = src[2] // R
			px[1] = src[1] // G
			px[2] = src[0] // B
			if bytesPerPixel == 4 {
				px[3] = src[3]
			} else {
				px[3] = 255
			}
		}
	}

	return out, nil
}

func encodeTGA(w io.Writer, r *raster.Raster) error {
	bpp := 24
	if r.Components == 4 {
		bpp = 32
	}
	bytesPerPixel := bpp / 8

	header := make([]byte, tgaHeaderSize)
	header[2] = 2 // uncompressed truecolor
	header[12] = byte(r.Width)
	header[13] = byte(r.Width >> 8)
	header[14] = byte(r.Height)
	header[15] = byte(r.Height >> 8)
	header[16] = byte(bpp)
	header[17] = 0x20 // top-to-bottom, matching this Raster's row order

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(header); err != nil {
		return err
	}

	row := make([]byte, r.Width*bytesPerPixel)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			px := r.At(x, y)
			dst := row[x*bytesPerPixel : x*bytesPerPixel+bytesPerPixel]
			dst[0] = componentAt(px, r.Components, 2) // B
			dst[1] = componentAt(px, r.Components, 1) // G
			dst[2] = componentAt(px, r.Components, 0) // R
			if bytesPerPixel == 4 {
				dst[3] = componentAt(px, r.Components, 3)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// componentAt returns px[i] if the raster has that many components,
// or 255 for a requested alpha (index 3) the raster doesn't carry, or
// the grayscale value broadcast across R/G/B for a 1-component raster.
func componentAt(px []byte, components, i int) byte {
	if components == 1 {
		if i == 3 {
			return 255
		}
		return px[0]
	}
	if i >= components {
		return 255
	}
	return px[i]
}
