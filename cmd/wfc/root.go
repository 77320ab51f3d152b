package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/textureforge/overlapwfc/compositor"
	"github.com/textureforge/overlapwfc/imageio"
	"github.com/textureforge/overlapwfc/pattern"
	"github.com/textureforge/overlapwfc/wfc"
)

var (
	method       string
	outWidth     int
	outHeight    int
	tileWidth    int
	tileHeight   int
	expand       bool
	xflip        bool
	yflip        bool
	rotate       bool
	seed         int64
	maxCollapses int
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "wfc [flags] INPUT OUTPUT",
	Short: "Synthesize a texture from an example image using Wave Function Collapse",
	Long: `wfc reads an example input image, harvests overlapping tiles from it,
and generates a new output image of the requested size that locally
resembles the input everywhere, never by just tiling it.

Examples:
  wfc -w 256 -h 256 input.png output.png
  wfc -m overlapping -W 2 -H 2 -x -y -r input.bmp output.bmp`,
	Args: cobra.ExactArgs(2),
	RunE: runSynthesize,
}

func init() {
	rootCmd.Flags().BoolP("help", "", false, "help for wfc")
	rootCmd.Flags().StringVarP(&method, "method", "m", "overlapping", `synthesis method: "overlapping" (only supported value; "tiled" is rejected)`)
	rootCmd.Flags().IntVarP(&outWidth, "width", "w", 128, "output width in pixels")
	rootCmd.Flags().IntVarP(&outHeight, "height", "h", 128, "output height in pixels")
	rootCmd.Flags().IntVarP(&tileWidth, "tile-width", "W", 3, "harvested tile width in pixels")
	rootCmd.Flags().IntVarP(&tileHeight, "tile-height", "H", 3, "harvested tile height in pixels")
	rootCmd.Flags().BoolVarP(&expand, "expand", "e", true, "wrap-expand the input before harvesting tiles")
	rootCmd.Flags().BoolVarP(&xflip, "xflip", "x", true, "augment patterns with horizontal flips")
	rootCmd.Flags().BoolVarP(&yflip, "yflip", "y", true, "augment patterns with vertical flips")
	rootCmd.Flags().BoolVarP(&rotate, "rotate", "r", true, "augment patterns with 90/180/270 degree rotations")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed; 0 picks a time-based seed")
	rootCmd.Flags().IntVar(&maxCollapses, "max-collapses", 0, "collapse budget; 0 means width*height (one per cell)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
}

func runSynthesize(cmd *cobra.Command, args []string) error {
	if method != "overlapping" {
		return fmt.Errorf("wfc: %w: %q", wfc.ErrTiledUnsupported, method)
	}
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		imageio.SetLogger(logger)
	}

	inputPath, outputPath := args[0], args[1]

	input, err := imageio.Decode(inputPath)
	if err != nil {
		return fmt.Errorf("wfc: reading %s: %w", inputPath, err)
	}

	set, err := pattern.Build(input, pattern.BuildOptions{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Expand:     expand,
		XFlip:      xflip,
		YFlip:      yflip,
		Rotate:     rotate,
	})
	if err != nil {
		return fmt.Errorf("wfc: building patterns: %w", err)
	}

	solver, err := wfc.NewOverlappingSolver(set, outWidth, outHeight)
	if err != nil {
		return fmt.Errorf("wfc: creating solver: %w", err)
	}
	if seed != 0 {
		solver.Reseed(seed)
	}

	budget := maxCollapses
	if budget <= 0 {
		budget = outWidth * outHeight
	}

	result, err := solver.Run(budget)
	if err != nil {
		return fmt.Errorf("wfc: %w", err)
	}
	if result == wfc.Contradiction {
		return fmt.Errorf("wfc: synthesis did not complete: %s", result)
	}

	out, err := compositor.Average(solver, set)
	if err != nil {
		return fmt.Errorf("wfc: compositing output: %w", err)
	}

	if err := imageio.Encode(outputPath, out); err != nil {
		return fmt.Errorf("wfc: writing %s: %w", outputPath, err)
	}

	if result == wfc.BudgetExceeded {
		fmt.Printf("wrote %s (%dx%d, seed %d, budget exceeded: %d/%d cells collapsed)\n",
			outputPath, outWidth, outHeight, solver.Seed(), solver.CollapsedCount(), outWidth*outHeight)
		return nil
	}

	fmt.Printf("wrote %s (%dx%d, seed %d)\n", outputPath, outWidth, outHeight, solver.Seed())
	return nil
}
