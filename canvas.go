package lite

import (
	"github.com/gogpu/lite/internal/blend"
)

// Drawable is a surface the shape methods can draw on. Canvas and Overlay
// both implement it.
type Drawable interface {
	// Size returns the size of the underlying pixel store.
	Size() Size

	// Subregion limits drawing to r, relative to the active subregion.
	// Every later coordinate, including further subregions, is relative
	// to the new one.
	Subregion(r Rect)

	// EndSubregion restores the previous subregion. At the root it does
	// nothing.
	EndSubregion()

	// CurrentSubregion returns the active subregion in absolute coordinates.
	CurrentSubregion() Rect

	// Point blends one pixel. Points outside the active subregion are
	// dropped.
	Point(x, y int, c Color)
}

// Canvas is an RGB8 pixel buffer with a stack of clip subregions.
// All shape methods funnel through Point.
//
// A new Canvas is opaque white. Several handles may share one pixel store
// (see Overlay.Write); each keeps its own subregion stack.
type Canvas struct {
	raster

	store   *pixelStore
	width   int
	height  int
	regions regionStack
}

var _ Drawable = (*Canvas)(nil)

// NewCanvas creates a white canvas. Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	store := newPixelStore(width * height * 3)
	for i := range store.pix {
		store.pix[i] = 255
	}
	Logger().Debug("lite: canvas created", "width", width, "height", height)
	return canvasOnStore(store, width, height)
}

// canvasOnStore returns a fresh handle over an existing store, with only
// the root subregion.
func canvasOnStore(store *pixelStore, width, height int) *Canvas {
	c := &Canvas{
		store:   store,
		width:   width,
		height:  height,
		regions: newRegionStack(R(0, 0, width, height)),
	}
	c.raster = raster{dst: c}
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size implements Drawable.
func (c *Canvas) Size() Size {
	return Size{W: c.width, H: c.height}
}

// Subregion implements Drawable.
func (c *Canvas) Subregion(r Rect) {
	c.regions.push(r)
}

// EndSubregion implements Drawable.
func (c *Canvas) EndSubregion() {
	c.regions.pop()
}

// CurrentSubregion implements Drawable.
func (c *Canvas) CurrentSubregion() Rect {
	return c.regions.top()
}

// Point implements Drawable. The color is sampled at the absolute pixel
// position. An opaque sample overwrites the pixel; otherwise each channel
// becomes (src - dst) * a / 255 + dst.
func (c *Canvas) Point(x, y int, col Color) {
	p, ok := c.regions.locate(x, y)
	if !ok {
		return
	}
	s := col.At(p)
	i := (p.Y*c.width + p.X) * 3
	c.store.borrow(func(pix []byte) {
		blend.OverRGB(pix[i:i+3], s.R, s.G, s.B, s.A)
	})
}

// RGBAt returns the opaque color of the pixel at absolute (x, y), or
// Transparent outside the canvas.
func (c *Canvas) RGBAt(x, y int) RGBA {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Transparent
	}
	var out RGBA
	i := (y*c.width + x) * 3
	c.store.borrow(func(pix []byte) {
		out = RGB(pix[i], pix[i+1], pix[i+2])
	})
	return out
}

// Clear sets every pixel to the color's r, g and b, ignoring alpha and
// subregions.
func (c *Canvas) Clear(col RGBA) {
	c.store.borrow(func(pix []byte) {
		for i := 0; i+2 < len(pix); i += 3 {
			pix[i+0] = col.R
			pix[i+1] = col.G
			pix[i+2] = col.B
		}
	})
}

// Pix returns a copy of the raw pixel bytes: row-major RGB, no padding,
// stride Width()*3.
func (c *Canvas) Pix() []byte {
	var out []byte
	c.store.borrow(func(pix []byte) {
		out = append([]byte(nil), pix...)
	})
	return out
}

// View lends the live pixel bytes to fn without copying. fn must not
// retain or modify them, and must not draw on any handle sharing this
// canvas' store.
func (c *Canvas) View(fn func(width, height int, pix []byte)) {
	c.store.borrow(func(pix []byte) {
		fn(c.width, c.height, pix)
	})
}
