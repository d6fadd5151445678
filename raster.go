package lite

import (
	"math"

	"github.com/chewxy/math32"
)

// plotter is the single primitive every shape is built from.
type plotter interface {
	Point(x, y int, c Color)
}

// raster implements the shape methods shared by Canvas and Overlay on top
// of their Point. Each method only issues Point calls.
type raster struct {
	dst plotter
}

const (
	pi32      float32 = math.Pi
	halfPi32          = pi32 / 2
	tau32             = 2 * pi32
	threeHalf         = 3 * halfPi32
)

// plot draws c at (x, y) with its alpha scaled by cov/255.
func (r raster) plot(x, y int, c Color, cov uint8) {
	if cov == 255 {
		r.dst.Point(x, y, c)
		return
	}
	r.dst.Point(x, y, c.WithAlpha(cov))
}

// quadrants mirrors (x, y) around (cx, cy) across both axes. Points on an
// axis (x == 0 or y == 0) are plotted once.
func (r raster) quadrants(cx, cy, x, y int, c Color, cov uint8) {
	if x != 0 {
		if y != 0 {
			r.plot(cx-x, cy-y, c, cov)
		}
		r.plot(cx-x, cy+y, c, cov)
	}
	if y != 0 {
		r.plot(cx+x, cy-y, c, cov)
	}
	r.plot(cx+x, cy+y, c, cov)
}

// quadrantsAngled is quadrants for arcs: fn receives each mirrored point
// with its angle in (0, 2π], counter-clockwise from the positive x axis.
// angle is atan2(y, x) of the unmirrored point.
func quadrantsAngled(cx, cy, x, y int, angle float32, fn func(px, py int, theta float32)) {
	if x != 0 {
		if y != 0 {
			fn(cx-x, cy-y, pi32-angle)
		}
		fn(cx-x, cy+y, angle+pi32)
	}
	if y != 0 {
		fn(cx+x, cy-y, angle)
	}
	fn(cx+x, cy+y, tau32-angle)
}

// octants mirrors a point of the first octant (x >= y) into all eight.
// Points on an axis or diagonal are plotted once. fn receives the angle of
// each mirrored point, derived from angle = atan2(y, x).
func octants(cx, cy, x, y int, angle float32, fn func(px, py int, theta float32)) {
	if y != 0 {
		if x != y {
			fn(cx-y, cy+x, threeHalf-angle)
			fn(cx+y, cy-x, halfPi32-angle)
		}
		fn(cx-x, cy+y, angle+pi32)
		fn(cx+x, cy-y, angle)
	}
	if x != y {
		fn(cx+y, cy+x, angle+threeHalf)
		fn(cx-y, cy-x, angle+halfPi32)
	}
	fn(cx+x, cy+y, tau32-angle)
	fn(cx-x, cy-y, pi32-angle)
}

// ringCoverage classifies a squared distance against the two
// antialiasing bands of a circle outline: [r(r-2), r²) ramps up and
// [r², r(r+2)) ramps down. ok is false outside both bands.
func ringCoverage(sqd, radius int) (cov uint8, ok bool) {
	rmin := radius * (radius - 2)
	rmid := radius * radius
	rmax := radius * (radius + 2)
	switch {
	case sqd >= rmid && sqd < rmax:
		return bandCoverage(rmax-sqd, radius), true
	case sqd < rmid && sqd >= rmin:
		return bandCoverage(sqd-rmin, radius), true
	default:
		return 0, false
	}
}

// diskCoverage is ringCoverage for a filled disk: solid below r², ramping
// down in [r², r(r+2)).
func diskCoverage(sqd, radius int) (cov uint8, ok bool) {
	rmid := radius * radius
	rmax := radius * (radius + 2)
	switch {
	case sqd < rmid:
		return 255, true
	case sqd < rmax:
		return bandCoverage(rmax-sqd, radius), true
	default:
		return 0, false
	}
}

// bandCoverage is min(255, d * 256 / (2r)).
func bandCoverage(d, radius int) uint8 {
	c := d * 256 / (2 * radius)
	return uint8(min(max(c, 0), 255))
}

// unitCoverage converts a fraction in [0, 1] to a coverage byte,
// truncating. NaN maps to zero.
func unitCoverage(f float32) uint8 {
	v := f * 255
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// pointAngle returns atan2(y, x) in float32.
func pointAngle(x, y int) float32 {
	return math32.Atan2(float32(y), float32(x))
}
