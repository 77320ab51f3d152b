// Package rules compiles the 4-direction allowed-adjacency matrix from a
// pattern.Set: for every ordered triple (direction, a, b), whether
// pattern b may sit next to pattern a in that direction.
package rules

import (
	"errors"

	"github.com/textureforge/overlapwfc/raster"
)

// Sentinel errors for rule compilation.
var (
	// ErrEmptyPatternSet indicates the pattern set has zero patterns.
	ErrEmptyPatternSet = errors.New("rules: pattern set is empty")
)

// Direction re-exports raster.Direction so callers of this package don't
// need to import raster directly for direction constants.
type Direction = raster.Direction

// The four cardinal directions, matching raster's constants.
const (
	Up    = raster.Up
	Down  = raster.Down
	Left  = raster.Left
	Right = raster.Right
)

// directions is the fixed iteration order used when compiling and when
// the solver seeds propagation; it determines nothing about the result
// (the matrix is direction-indexed) but keeps compilation deterministic.
var directions = [4]Direction{Up, Down, Left, Right}

// Matrix is the compiled allowed-adjacency relation: Allowed(d, a, b) is
// true iff pattern b may appear adjacent to pattern a in direction d.
// It is immutable once Compile returns.
type Matrix struct {
	p       int
	allowed []bool // flattened [4][P][P], index via (d*p+a)*p+b
}

// P returns the number of patterns the matrix was compiled for.
func (m *Matrix) P() int {
	return m.p
}

// Allowed reports whether pattern b may sit next to pattern a in
// direction d. a, b must be in [0, P); d must be one of the four
// cardinal directions. Out-of-range indices panic, since every caller
// in this module operates on indices already bounds-checked against a
// compiled Matrix's P().
func (m *Matrix) Allowed(d Direction, a, b int) bool {
	return m.allowed[(int(d)*m.p+a)*m.p+b]
}

func (m *Matrix) set(d Direction, a, b int, v bool) {
	m.allowed[(int(d)*m.p+a)*m.p+b] = v
}
