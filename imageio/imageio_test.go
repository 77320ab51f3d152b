package imageio_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/textureforge/overlapwfc/imageio"
	"github.com/textureforge/overlapwfc/raster"
)

func TestDecode_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/input.gif"
	if err := os.WriteFile(path, []byte("not a real image"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := imageio.Decode(path); err != imageio.ErrUnsupportedFormat {
		t.Fatalf("err = %v; want ErrUnsupportedFormat", err)
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	r, _ := raster.New(2, 2, 3)
	if err := imageio.Encode(dir+"/out.gif", r); err != imageio.ErrUnsupportedFormat {
		t.Fatalf("err = %v; want ErrUnsupportedFormat", err)
	}
}

func TestPNGRoundTrip(t *testing.T) {
	roundTrip(t, ".png")
}

func TestTGARoundTrip(t *testing.T) {
	roundTrip(t, ".tga")
}

func TestBMPRoundTrip(t *testing.T) {
	roundTrip(t, ".bmp")
}

// roundTrip builds a small RGBA raster with distinct per-pixel values,
// encodes it to ext, decodes it back, and checks every pixel survived.
// All three codecs normalize to 4-component RGBA on decode.
func roundTrip(t *testing.T, ext string) {
	t.Helper()

	in, _ := raster.New(3, 2, 4)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			px := in.At(x, y)
			px[0] = byte(10 * (y*3 + x))
			px[1] = byte(20 * (y*3 + x))
			px[2] = byte(30 * (y*3 + x))
			px[3] = 255
		}
	}

	dir := t.TempDir()
	path := dir + "/image" + ext
	if err := imageio.Encode(path, in); err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	out, err := imageio.Decode(path)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if out.Width != in.Width || out.Height != in.Height {
		t.Fatalf("dims = %dx%d; want %dx%d", out.Width, out.Height, in.Width, in.Height)
	}
	if !bytes.Equal(out.Pix, in.Pix) {
		t.Fatalf("round trip through %s changed pixel data:\n got %v\nwant %v", ext, out.Pix, in.Pix)
	}
}
