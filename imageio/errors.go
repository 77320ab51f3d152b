package imageio

import "errors"

// Sentinel errors for image I/O.
var (
	// ErrUnsupportedFormat indicates a file extension none of the
	// registered codecs recognize.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrUnsupportedTGA indicates a TGA file outside the single variant
	// this package's hand-written codec reads: uncompressed truecolor
	// (image type 2), 24 or 32 bits per pixel.
	ErrUnsupportedTGA = errors.New("imageio: unsupported TGA variant (only uncompressed 24/32-bit truecolor is read)")
)
