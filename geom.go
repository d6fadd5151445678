package lite

import "image"

// Offset is an integer pixel position or displacement.
type Offset struct {
	X, Y int
}

// Pt is a convenience function to create an Offset.
func Pt(x, y int) Offset {
	return Offset{X: x, Y: y}
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(q Offset) Offset {
	return Offset{X: o.X + q.X, Y: o.Y + q.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(q Offset) Offset {
	return Offset{X: o.X - q.X, Y: o.Y - q.Y}
}

// AddSize moves the offset by a size.
func (o Offset) AddSize(s Size) Offset {
	return Offset{X: o.X + s.W, Y: o.Y + s.H}
}

// SubSize moves the offset back by a size.
func (o Offset) SubSize(s Size) Offset {
	return Offset{X: o.X - s.W, Y: o.Y - s.H}
}

// Neg returns the offset mirrored through the origin.
func (o Offset) Neg() Offset {
	return Offset{X: -o.X, Y: -o.Y}
}

// Min returns the component-wise minimum.
func (o Offset) Min(q Offset) Offset {
	return Offset{X: min(o.X, q.X), Y: min(o.Y, q.Y)}
}

// Max returns the component-wise maximum.
func (o Offset) Max(q Offset) Offset {
	return Offset{X: max(o.X, q.X), Y: max(o.Y, q.Y)}
}

// Size is a non-negative pixel extent.
type Size struct {
	W, H int
}

// Sz creates a Size, clamping negative components to zero.
func Sz(w, h int) Size {
	return Size{W: max(w, 0), H: max(h, 0)}
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Rect is an integer rectangle: top-left corner plus extent.
type Rect struct {
	X, Y int
	W, H int
}

// R creates a Rect, clamping a negative width or height to zero.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// RectAt creates a Rect from its corner and size.
func RectAt(o Offset, s Size) Rect {
	return R(o.X, o.Y, s.W, s.H)
}

// Offset returns the top-left corner.
func (r Rect) Offset() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Offset2 returns the exclusive bottom-right corner.
func (r Rect) Offset2() Offset {
	return r.Offset().AddSize(r.Size())
}

// Size returns the extent of the rectangle.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Size().Empty()
}

// Translate returns the rectangle moved by o.
func (r Rect) Translate(o Offset) Rect {
	return Rect{X: r.X + o.X, Y: r.Y + o.Y, W: r.W, H: r.H}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.W && p.Y < r.Y+r.H
}

// Clamp returns the intersection of r and other. When the two do not
// overlap the result is other's corner with a zero size.
func (r Rect) Clamp(other Rect) Rect {
	p1 := r.Offset().Max(other.Offset())
	p2 := r.Offset2().Min(other.Offset2())
	if p2.X <= p1.X || p2.Y <= p1.Y {
		return Rect{X: other.X, Y: other.Y}
	}
	return Rect{X: p1.X, Y: p1.Y, W: p2.X - p1.X, H: p2.Y - p1.Y}
}

// Image converts the rectangle to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(ir image.Rectangle) Rect {
	ir = ir.Canon()
	return Rect{X: ir.Min.X, Y: ir.Min.Y, W: ir.Dx(), H: ir.Dy()}
}
