package pattern_test

import (
	"testing"

	"github.com/textureforge/overlapwfc/pattern"
	"github.com/textureforge/overlapwfc/raster"
)

func TestBuild_SinglePatternDegenerate(t *testing.T) {
	input, _ := raster.NewFromBytes(1, 1, 1, []byte{42})

	set, err := pattern.Build(input, pattern.BuildOptions{
		TileWidth: 3, TileHeight: 3, Expand: true,
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if set.Len() != 1 {
		t.Fatalf("Len() = %d; want 1", set.Len())
	}
	if set.Patterns[0].Image.Pix[0] != 42 {
		t.Fatalf("pattern pixel = %d; want 42", set.Patterns[0].Image.Pix[0])
	}
}

func TestBuild_TwoTileStripe(t *testing.T) {
	input, _ := raster.NewFromBytes(2, 1, 1, []byte{0, 255})

	set, err := pattern.Build(input, pattern.BuildOptions{
		TileWidth: 1, TileHeight: 1, Expand: true,
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", set.Len())
	}
	for _, p := range set.Patterns {
		if p.Freq != 1 {
			t.Fatalf("freq = %d; want 1", p.Freq)
		}
	}
}

func TestBuild_TileTooLargeWithoutExpand(t *testing.T) {
	input, _ := raster.NewFromBytes(2, 2, 1, []byte{1, 2, 3, 4})

	_, err := pattern.Build(input, pattern.BuildOptions{TileWidth: 3, TileHeight: 3, Expand: false})
	if err != pattern.ErrTileTooLarge {
		t.Fatalf("err = %v; want ErrTileTooLarge", err)
	}
}

func TestBuild_InvalidTileSize(t *testing.T) {
	input, _ := raster.NewFromBytes(2, 2, 1, []byte{1, 2, 3, 4})

	_, err := pattern.Build(input, pattern.BuildOptions{TileWidth: 0, TileHeight: 3})
	if err != pattern.ErrInvalidTileSize {
		t.Fatalf("err = %v; want ErrInvalidTileSize", err)
	}
}

func TestBuild_NoExpandHarvestCount(t *testing.T) {
	// 4x4 input, 3x3 tile, no expand -> (4-3+1)^2 = 4 harvested tiles
	// before any augmentation or dedup.
	pix := make([]byte, 16)
	for i := range pix {
		pix[i] = byte(i)
	}
	input, _ := raster.NewFromBytes(4, 4, 1, pix)

	set, err := pattern.Build(input, pattern.BuildOptions{TileWidth: 3, TileHeight: 3, Expand: false})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if set.Len() != 4 {
		t.Fatalf("Len() = %d; want 4 (all tiles distinct, no augmentation)", set.Len())
	}
}

func TestBuild_AugmentationSkipsRedundantYFlip(t *testing.T) {
	// An asymmetric 2x2 pattern: with xflip+yflip+rotate all on, the
	// yflip pass is skipped (flip_h+rot180 already covers it). Dedup
	// keeps the total frequency equal to the pre-dedup pattern count:
	// 4 harvested, 8 after xflip, 32 after rotate. Running yflip as well
	// would give 64.
	input, _ := raster.NewFromBytes(2, 2, 1, []byte{1, 2, 3, 4})

	set, err := pattern.Build(input, pattern.BuildOptions{
		TileWidth: 2, TileHeight: 2, Expand: true,
		XFlip: true, YFlip: true, Rotate: true,
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if set.Len() == 0 {
		t.Fatal("expected at least one pattern")
	}
	if set.SumFreqs() <= 0 {
		t.Fatal("expected positive total frequency")
	}
	if set.SumFreqs() != 32 {
		t.Fatalf("SumFreqs() = %d; want 32 (yflip pass skipped)", set.SumFreqs())
	}
}
