package raster

// FlipHorizontal returns the mirror of r along the vertical axis: column
// x of the result equals column Width-1-x of r, for every row.
//
// Complexity: O(width*height*components).
func FlipHorizontal(r *Raster) *Raster {
	out := Copy(r)
	comps := r.Components
	stride := r.stride()

	for y := 0; y < r.Height; y++ {
		rowOff := y * stride
		for x := 0; x < r.Width/2; x++ {
			srcOff := rowOff + x*comps
			dstOff := rowOff + (r.Width-1-x)*comps
			swapComponents(out.Pix, srcOff, dstOff, comps)
		}
	}

	return out
}

// FlipVertical returns the mirror of r along the horizontal axis: row y
// of the result equals row Height-1-y of r.
//
// Complexity: O(width*height*components).
func FlipVertical(r *Raster) *Raster {
	out := Copy(r)
	stride := r.stride()

	for y := 0; y < r.Height/2; y++ {
		topOff := y * stride
		botOff := (r.Height - 1 - y) * stride
		swapRows(out.Pix, topOff, botOff, stride)
	}

	return out
}

// swapComponents exchanges the comps bytes at offsets a and b in buf.
func swapComponents(buf []byte, a, b, comps int) {
	for i := 0; i < comps; i++ {
		buf[a+i], buf[b+i] = buf[b+i], buf[a+i]
	}
}

// swapRows exchanges the n-byte rows starting at offsets a and b in buf.
func swapRows(buf []byte, a, b, n int) {
	for i := 0; i < n; i++ {
		buf[a+i], buf[b+i] = buf[b+i], buf[a+i]
	}
}

// Rotate90 returns r rotated clockwise by n*90 degrees, n in {1,2,3}.
// Odd n swap width and height. n outside {1,2,3} is reduced modulo 4;
// n%4==0 returns a plain copy of r.
//
// Complexity: O(width*height*components).
func Rotate90(r *Raster, n int) *Raster {
	n = ((n % 4) + 4) % 4
	if n == 0 {
		return Copy(r)
	}

	var out *Raster
	if n%2 == 1 {
		out, _ = New(r.Height, r.Width, r.Components)
	} else {
		out, _ = New(r.Width, r.Height, r.Components)
	}

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			src := r.At(x, y)

			var dx, dy int
			switch n {
			case 1:
				dx, dy = out.Width-y-1, x
			case 2:
				dx, dy = out.Width-x-1, out.Height-y-1
			case 3:
				dx, dy = y, out.Height-x-1
			}

			dst := out.At(dx, dy)
			copy(dst, src)
		}
	}

	return out
}
