package lite

import (
	"image/color"

	icolor "github.com/gogpu/lite/internal/color"
)

// Color is a per-pixel color source. The set of implementations is closed:
// RGBA for solid colors and *DirectionalGradient for gradients.
type Color interface {
	// At returns the color for the pixel at the absolute position pos.
	At(pos Offset) RGBA

	// WithAlpha returns the same kind of color with every alpha scaled by a/255.
	WithAlpha(a uint8) Color

	colorMarker()
}

// RGBA is an 8-bit straight-alpha color. It is also the solid Color.
type RGBA struct {
	R, G, B, A uint8
}

var (
	_ Color       = RGBA{}
	_ color.Color = RGBA{}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// FromArray3 creates an opaque color from {r, g, b}.
func FromArray3(v [3]uint8) RGBA {
	return RGBA{R: v[0], G: v[1], B: v[2], A: 255}
}

// FromArray4 creates a color from {r, g, b, a}.
func FromArray4(v [4]uint8) RGBA {
	return RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Array3 returns {r, g, b}.
func (c RGBA) Array3() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Array4 returns {r, g, b, a}.
func (c RGBA) Array4() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit values.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// SetA scales the alpha by a/255.
func (c RGBA) SetA(a uint8) RGBA {
	c.A = uint8(uint16(a) * uint16(c.A) / 255)
	return c
}

// Lerp interpolates linearly toward other. t=0 returns c, t=255 returns other.
//
// Formula per channel: (other - c) * t / 255 + c
func (c RGBA) Lerp(other RGBA, t uint8) RGBA {
	return RGBA{
		R: icolor.Lerp(c.R, other.R, t),
		G: icolor.Lerp(c.G, other.G, t),
		B: icolor.Lerp(c.B, other.B, t),
		A: icolor.Lerp(c.A, other.A, t),
	}
}

// GammaLerp interpolates toward other with approximate gamma correction.
//
// Formula for r, g, b: isqrt((other² - c²) * t / 255 + c²). Alpha is linear.
func (c RGBA) GammaLerp(other RGBA, t uint8) RGBA {
	return RGBA{
		R: icolor.GammaLerp(c.R, other.R, t),
		G: icolor.GammaLerp(c.G, other.G, t),
		B: icolor.GammaLerp(c.B, other.B, t),
		A: icolor.Lerp(c.A, other.A, t),
	}
}

// Intensity returns the average of R, G and B.
func (c RGBA) Intensity() uint8 {
	return uint8((int(c.R) + int(c.G) + int(c.B)) / 3)
}

// Opaque reports whether the alpha is 255.
func (c RGBA) Opaque() bool {
	return c.A == 255
}

// At implements Color.
func (c RGBA) At(Offset) RGBA {
	return c
}

// WithAlpha implements Color.
func (c RGBA) WithAlpha(a uint8) Color {
	return c.SetA(a)
}

func (RGBA) colorMarker() {}
