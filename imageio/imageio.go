// Package imageio decodes and encodes the raster formats this module's
// CLI accepts, dispatching on file extension: PNG and JPEG via the
// standard library, BMP via golang.org/x/image/bmp, and TGA via a
// small hand-written codec (see tga.go for why).
package imageio

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/textureforge/overlapwfc/raster"
)

// Decode reads and decodes the image at path, dispatching on its file
// extension. Returns ErrUnsupportedFormat for an unrecognized
// extension.
func Decode(path string) (*raster.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	Logger().Debug("decoding image", "path", path, "format", ext)

	switch ext {
	case ".png":
		return decodePNG(f)
	case ".jpg", ".jpeg":
		return decodeJPEG(f)
	case ".bmp":
		return decodeBMP(f)
	case ".tga":
		return decodeTGA(f)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Encode writes r to path, dispatching on its file extension. Returns
// ErrUnsupportedFormat for an unrecognized extension.
func Encode(path string, r *raster.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	Logger().Debug("encoding image", "path", path, "format", ext)

	var encErr error
	switch ext {
	case ".png":
		encErr = encodePNG(f, r)
	case ".jpg", ".jpeg":
		encErr = encodeJPEG(f, r)
	case ".bmp":
		encErr = encodeBMP(f, r)
	case ".tga":
		encErr = encodeTGA(f, r)
	default:
		return ErrUnsupportedFormat
	}
	if encErr != nil {
		return encErr
	}
	return nil
}
