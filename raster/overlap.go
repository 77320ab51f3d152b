package raster

// Overlap reports whether shifting a by one pixel in direction d makes it
// coincide byte-for-byte with b on their intersecting rectangle:
//
//   - Up:    a's top (W x H-1) rows   vs b's bottom (W x H-1) rows
//   - Down:  a's bottom (W x H-1) rows vs b's top (W x H-1) rows
//   - Left:  a's left (W-1 x H) cols  vs b's right (W-1 x H) cols
//   - Right: a's right (W-1 x H) cols vs b's left (W-1 x H) cols
//
// a and b must share the same dimensions and Components; Overlap returns
// ErrDirection for any value of d outside {Up,Down,Left,Right}. Comparison
// is exact byte equality, no color tolerance.
//
// Complexity: O(width*height*components).
func Overlap(a, b *Raster, d Direction) (bool, error) {
	var aOffX, aOffY, bOffX, bOffY, width, height int

	switch d {
	case Up:
		aOffX, aOffY = 0, 0
		bOffX, bOffY = 0, 1
		width, height = a.Width, a.Height-1
	case Down:
		aOffX, aOffY = 0, 1
		bOffX, bOffY = 0, 0
		width, height = a.Width, a.Height-1
	case Left:
		aOffX, aOffY = 0, 0
		bOffX, bOffY = 1, 0
		width, height = a.Width-1, a.Height
	case Right:
		aOffX, aOffY = 1, 0
		bOffX, bOffY = 0, 0
		width, height = a.Width-1, a.Height
	default:
		return false, ErrDirection
	}

	comps := a.Components
	rowBytes := width * comps
	for y := 0; y < height; y++ {
		aRowStart := a.offset(aOffX, aOffY+y)
		bRowStart := b.offset(bOffX, bOffY+y)

		if !bytesEqual(a.Pix[aRowStart:aRowStart+rowBytes], b.Pix[bRowStart:bRowStart+rowBytes]) {
			return false, nil
		}
	}

	return true, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
