package rules_test

import (
	"testing"

	"github.com/textureforge/overlapwfc/pattern"
	"github.com/textureforge/overlapwfc/raster"
	"github.com/textureforge/overlapwfc/rules"
)

func TestCompile_EmptySet(t *testing.T) {
	_, err := rules.Compile(&pattern.Set{})
	if err != rules.ErrEmptyPatternSet {
		t.Fatalf("err = %v; want ErrEmptyPatternSet", err)
	}
}

// TestCompile_TwoTileStripe mirrors the spec's "two-tile stripe" scenario:
// two 2x1 dominoes whose single-pixel overlap encodes strict
// alternation (A=[0,255], B=[255,0]) must allow A-then-B and B-then-A
// to the right, and forbid either domino from repeating beside itself.
// 1x1 tiles would make every Overlap comparison vacuously true, so this
// deliberately uses wider tiles to exercise a real constraint.
func TestCompile_TwoTileStripe(t *testing.T) {
	a, _ := raster.NewFromBytes(2, 1, 1, []byte{0, 255})
	b, _ := raster.NewFromBytes(2, 1, 1, []byte{255, 0})
	set := &pattern.Set{Patterns: []pattern.Pattern{
		{Image: a, Freq: 1},
		{Image: b, Freq: 1},
	}}

	m, err := rules.Compile(set)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	if !m.Allowed(rules.Right, 0, 1) {
		t.Error("A must allow B to its right")
	}
	if !m.Allowed(rules.Right, 1, 0) {
		t.Error("B must allow A to its right")
	}
	if m.Allowed(rules.Right, 0, 0) {
		t.Error("A must not allow A to its right")
	}
	if m.Allowed(rules.Right, 1, 1) {
		t.Error("B must not allow B to its right")
	}
}

// TestCompile_Symmetry checks Allowed(d,a,b) == Allowed(opposite(d),b,a)
// for every pair once compiled, matching raster.Overlap's symmetry.
func TestCompile_Symmetry(t *testing.T) {
	input, _ := raster.NewFromBytes(3, 3, 1, []byte{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	set, err := pattern.Build(input, pattern.BuildOptions{TileWidth: 2, TileHeight: 2, Expand: true})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	m, err := rules.Compile(set)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	dirs := []rules.Direction{rules.Up, rules.Down, rules.Left, rules.Right}
	for _, d := range dirs {
		for a := 0; a < set.Len(); a++ {
			for b := 0; b < set.Len(); b++ {
				if m.Allowed(d, a, b) != m.Allowed(d.Opposite(), b, a) {
					t.Fatalf("Allowed(%v,%d,%d) != Allowed(%v,%d,%d)", d, a, b, d.Opposite(), b, a)
				}
			}
		}
	}
}

// TestCompile_SelfOverlapIncluded checks that a==b is evaluated, not
// special-cased to false or true.
func TestCompile_SelfOverlapIncluded(t *testing.T) {
	input, _ := raster.NewFromBytes(1, 1, 1, []byte{7})
	set, err := pattern.Build(input, pattern.BuildOptions{TileWidth: 1, TileHeight: 1, Expand: true})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	m, err := rules.Compile(set)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	// A single uniform 1x1 pattern must allow itself in every direction.
	for _, d := range []rules.Direction{rules.Up, rules.Down, rules.Left, rules.Right} {
		if !m.Allowed(d, 0, 0) {
			t.Errorf("uniform 1x1 pattern should allow self-overlap in %v", d)
		}
	}
}
