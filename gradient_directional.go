package lite

import (
	"github.com/chewxy/math32"
)

// DirectionalGradient is a linear gradient along a direction.
// It implements the Color interface.
//
// The color of a pixel is found by projecting its offset from the origin
// onto the gradient direction and dividing by the scale, giving the ramp
// position: 0 at the origin, 1 one scale-length further along.
//
// Example:
//
//	g := lite.NewDirectionalGradient([]lite.Stop{
//	    {Pos: 0, Color: lite.Red},
//	    {Pos: 1, Color: lite.Blue},
//	}, 150, lite.WithOrigin(lite.Pt(100, 100)))
//	c.FillRect(lite.R(100, 100, 150, 100), g)
type DirectionalGradient struct {
	ramp   gradientRamp
	angle  float32
	scale  float32
	origin Offset
}

var _ Color = (*DirectionalGradient)(nil)

// NewDirectionalGradient creates a gradient spanning scale pixels.
// Without options the gradient runs left to right from (0, 0), clamps
// outside the ramp and interpolates linearly.
func NewDirectionalGradient(stops []Stop, scale float32, opts ...GradientOption) *DirectionalGradient {
	o := defaultGradientOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &DirectionalGradient{
		ramp:   newRamp(quantizeStops(stops), o.repeat, o.interp),
		angle:  normalizeAngle(o.angle),
		scale:  scale,
		origin: o.origin,
	}
}

// Angle returns the direction in radians, in [0, 2π), counter-clockwise
// from the positive x axis.
func (g *DirectionalGradient) Angle() float32 {
	return g.angle
}

// Scale returns the length in pixels of one full ramp.
func (g *DirectionalGradient) Scale() float32 {
	return g.scale
}

// Origin returns the pixel where the ramp starts.
func (g *DirectionalGradient) Origin() Offset {
	return g.origin
}

// Repeating reports whether the ramp wraps instead of clamping.
func (g *DirectionalGradient) Repeating() bool {
	return g.ramp.repeat
}

// At implements Color.
func (g *DirectionalGradient) At(pos Offset) RGBA {
	sin, cos := math32.Sincos(g.angle)
	d := pos.Sub(g.origin)
	along := float32(d.X)*cos - float32(d.Y)*sin
	return g.ramp.at(along / g.scale)
}

// WithAlpha implements Color.
func (g *DirectionalGradient) WithAlpha(a uint8) Color {
	out := *g
	out.ramp = g.ramp.withAlpha(a)
	return &out
}

func (*DirectionalGradient) colorMarker() {}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(a float32) float32 {
	a = remEuclid(a, tau32)
	if a >= tau32 {
		return 0
	}
	return a
}
