package lite

import (
	"github.com/gogpu/lite/internal/blend"
)

// Overlay accumulates drawing in a premultiplied RGBA layer and composites
// it onto a base canvas in a single pass.
//
// Drawing many overlapping translucent shapes straight onto a canvas
// truncates at every blend. An overlay blends them with each other first,
// then lands on the base once, so the base pixels are touched only by
// Write.
//
// Overlay coordinates start at the destination rectangle's corner. Colors
// are sampled at base canvas positions, so a gradient looks the same
// whether it is drawn through an overlay or directly.
type Overlay struct {
	raster

	base       *pixelStore
	baseWidth  int
	baseHeight int

	layer   *pixelStore // premultiplied RGBA, dst.W*dst.H*4 bytes
	dst     Rect
	regions regionStack
	written bool
}

var _ Drawable = (*Overlay)(nil)

// NewOverlay creates an empty overlay that will be written onto base at r.
func NewOverlay(base *Canvas, r Rect) *Overlay {
	r = R(r.X, r.Y, r.W, r.H)
	o := &Overlay{
		base:       base.store,
		baseWidth:  base.width,
		baseHeight: base.height,
		layer:      newPixelStore(r.W * r.H * 4),
		dst:        r,
		regions:    newRegionStack(RectAt(Offset{}, r.Size())),
	}
	o.raster = raster{dst: o}
	Logger().Debug("lite: overlay created", "rect", r)
	return o
}

// SetOffset moves the destination rectangle's corner on the base canvas.
func (o *Overlay) SetOffset(p Offset) {
	o.dst.X, o.dst.Y = p.X, p.Y
}

// Bounds returns the destination rectangle on the base canvas.
func (o *Overlay) Bounds() Rect {
	return o.dst
}

// Size implements Drawable. It is the size of the base canvas.
func (o *Overlay) Size() Size {
	return Size{W: o.baseWidth, H: o.baseHeight}
}

// Subregion implements Drawable.
func (o *Overlay) Subregion(r Rect) {
	o.regions.push(r)
}

// EndSubregion implements Drawable.
func (o *Overlay) EndSubregion() {
	o.regions.pop()
}

// CurrentSubregion implements Drawable. The result is in overlay
// coordinates.
func (o *Overlay) CurrentSubregion() Rect {
	return o.regions.top()
}

// Point implements Drawable. Color channels blend onto the layer with the
// same (src - dst) * a / 255 + dst as Canvas.Point, and alpha accumulates:
// dst.a = (255 - a) * dst.a / 255 + a.
func (o *Overlay) Point(x, y int, col Color) {
	if o.written {
		Logger().Warn("lite: drawing on an overlay that was already written")
		return
	}
	p, ok := o.regions.locate(x, y)
	if !ok {
		return
	}
	s := col.At(p.Add(o.dst.Offset()))
	i := (p.Y*o.dst.W + p.X) * 4
	o.layer.borrow(func(pix []byte) {
		blend.OverLayer(pix[i:i+4], s.R, s.G, s.B, s.A)
	})
}

// Write composites the overlay onto the base canvas and returns a new
// canvas handle over the same pixels. Only the part of the destination
// rectangle that lies on the base is written.
//
// An overlay is written once. Later calls return a new handle without
// compositing again, and later draws are dropped.
func (o *Overlay) Write() *Canvas {
	out := canvasOnStore(o.base, o.baseWidth, o.baseHeight)
	if o.written {
		Logger().Warn("lite: overlay already written")
		return out
	}
	o.written = true

	clip := o.dst.Clamp(R(0, 0, o.baseWidth, o.baseHeight))
	if clip.Empty() {
		return out
	}
	src := o.dst.Offset().Min(Offset{}).Neg()

	o.base.borrow(func(base []byte) {
		o.layer.borrow(func(layer []byte) {
			for j := clip.Y; j < clip.Y+clip.H; j++ {
				ly := src.Y + j - clip.Y
				for i := clip.X; i < clip.X+clip.W; i++ {
					lx := src.X + i - clip.X
					bi := (j*o.baseWidth + i) * 3
					li := (ly*o.dst.W + lx) * 4
					blend.CompositePremul(base[bi:bi+3], layer[li:li+4])
				}
			}
		})
	})
	return out
}
