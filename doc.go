// Package overlapwfc is a procedural texture synthesis engine built on the
// overlapping Wave Function Collapse algorithm — from tile harvesting to
// a constraint-propagation solver.
//
// What is overlapwfc?
//
//	A single-threaded, restart-on-contradiction texture synthesizer:
//		• Pattern extraction: tile harvesting, flip/rotation augmentation, dedup
//		• Adjacency rules: direction-aware overlap compiled into a dense matrix
//		• Solver: entropy-ordered cell selection, frequency-weighted collapse,
//		  worklist-driven propagation to fixpoint or contradiction
//		• Compositor: averages surviving candidates into an output raster
//
// Under the hood, everything is organized under five subpackages:
//
//	raster/      — pixel buffers and the pure transforms solving depends on
//	pattern/     — harvest, augment, and deduplicate tiles from an input raster
//	rules/       — compiles the 4-direction allowed-adjacency matrix
//	wfc/         — the solver itself: cells, entropy, collapse, propagation
//	compositor/  — averages a solver's current candidates into pixels
//
// The CLI front-end (cmd/wfc) and image codec boundary (imageio/) are
// external collaborators: the solver package never touches a file.
//
//	go get github.com/textureforge/overlapwfc/wfc
package overlapwfc
