// Package lite is a small software 2D rasterizer for Go.
//
// # Overview
//
// lite draws lines, circles, arcs, pies, rectangles and rounded rectangles
// straight into an in-memory RGB8 buffer. Every shape comes in an aliased
// and an antialiased variant, and every shape takes a Color: either a solid
// RGBA or a DirectionalGradient sampled per pixel.
//
// # Quick Start
//
//	import "github.com/gogpu/lite"
//
//	c := lite.NewCanvas(320, 240)
//	c.FillCircleAA(lite.Pt(160, 120), 80, lite.Red)
//	c.LineAA(lite.Pt(0, 0), lite.Pt(319, 239), lite.Black)
//	c.SavePNG("output.png")
//
// # Architecture
//
// The library is organized into:
//   - Geometry: Offset, Size, Rect
//   - Color: RGBA, DirectionalGradient, hex and named color parsing
//   - Surfaces: Canvas (RGB8) and Overlay (premultiplied RGBA layer)
//   - Internal: blend (8-bit compositing), color (integer lerps)
//   - Outside the core: sketch (TOML/YAML scenes), present (terminal output)
//
// Every shape method issues only Point calls. Point samples the color at
// the absolute pixel position and blends it into the pixel store, so a
// gradient is continuous across shapes and subregions.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Arc angles in radians, 0 is right, increasing counter-clockwise as
//     seen on screen
//
// # Blending
//
// Canvas blends each channel as (src - dst) * a / 255 + dst, truncating.
// Overlay keeps premultiplied color and accumulated alpha, and composites
// onto its canvas once in Write, so overlapping translucent shapes drawn
// through an overlay round only once.
//
// # Concurrency
//
// Drawing is single-threaded. Handles that share a pixel store (a canvas
// and its overlays) must not be used from different goroutines at the same
// time; a re-entrant access panics with ErrStoreBorrowed.
package lite

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
