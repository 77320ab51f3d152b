package raster

// Equal reports whether a and b have identical dimensions, components,
// and byte-identical pixel buffers. No color tolerance is applied.
//
// Complexity: O(width*height*components).
func Equal(a, b *Raster) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Width != b.Width || a.Height != b.Height || a.Components != b.Components {
		return false
	}

	for i, v := range a.Pix {
		if b.Pix[i] != v {
			return false
		}
	}

	return true
}

// Copy returns a byte-for-byte independent copy of r.
//
// Complexity: O(width*height*components).
func Copy(r *Raster) *Raster {
	pix := make([]byte, len(r.Pix))
	copy(pix, r.Pix)

	return &Raster{Width: r.Width, Height: r.Height, Components: r.Components, Pix: pix}
}
