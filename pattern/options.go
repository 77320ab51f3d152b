package pattern

// BuildOptions controls tile harvesting and augmentation for Build.
type BuildOptions struct {
	// TileWidth, TileHeight are the dimensions of each harvested tile.
	TileWidth, TileHeight int

	// Expand wrap-expands the input before harvesting, so every W*H
	// position yields a tile (the input is treated as a torus).
	Expand bool

	// XFlip appends a horizontal mirror of every pattern currently in
	// the set.
	XFlip bool

	// YFlip appends a vertical mirror of every pattern currently in the
	// set. Skipped when XFlip and Rotate are both set, since flip_h
	// composed with a 180-degree rotation already yields every vertical
	// flip; see augment.
	YFlip bool

	// Rotate appends the three non-identity 90-degree rotations of every
	// pattern currently in the set.
	Rotate bool
}

// BuildOption configures a BuildOptions value before Build runs.
type BuildOption func(*BuildOptions)

// DefaultBuildOptions returns BuildOptions with a 3x3 tile, all
// augmentation switches enabled, and Expand enabled — the CLI's
// defaults per the command-line front-end's option table.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		TileWidth:  3,
		TileHeight: 3,
		Expand:     true,
		XFlip:      true,
		YFlip:      true,
		Rotate:     true,
	}
}

// WithTileSize sets the harvested tile dimensions. Panics if w or h is
// not positive: a caller passing a non-positive tile size is a
// programmer error, not a runtime condition to recover from.
func WithTileSize(w, h int) BuildOption {
	if w <= 0 || h <= 0 {
		panic("pattern: WithTileSize: width and height must be positive")
	}

	return func(o *BuildOptions) {
		o.TileWidth = w
		o.TileHeight = h
	}
}

// WithExpand sets whether the input is wrap-expanded before harvesting.
func WithExpand(expand bool) BuildOption {
	return func(o *BuildOptions) { o.Expand = expand }
}

// WithXFlip sets whether horizontal mirrors are added during augmentation.
func WithXFlip(xflip bool) BuildOption {
	return func(o *BuildOptions) { o.XFlip = xflip }
}

// WithYFlip sets whether vertical mirrors are added during augmentation.
func WithYFlip(yflip bool) BuildOption {
	return func(o *BuildOptions) { o.YFlip = yflip }
}

// WithRotate sets whether 90/180/270-degree rotations are added during
// augmentation.
func WithRotate(rotate bool) BuildOption {
	return func(o *BuildOptions) { o.Rotate = rotate }
}
