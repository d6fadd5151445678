package lite

import "github.com/chewxy/math32"

// arcSpan is the half-open angle range (lo, hi] in radians. lo is in
// [0, 2π) and hi is in (lo, lo+2π]. A span that wraps past angle 0 has
// hi > 2π and covers (lo, 2π] plus (0, hi-2π].
type arcSpan struct {
	lo, hi float32
	full   bool
}

// newArcSpan normalizes the arc from angle1 to angle2, counter-clockwise.
// A difference of 2π or more is the full circle. When angle2 is equal to
// angle1 modulo 2π the arc is empty and ok is false, as it is for NaN.
func newArcSpan(angle1, angle2 float32) (span arcSpan, ok bool) {
	if angle2-angle1 >= tau32 {
		return arcSpan{lo: 0, hi: tau32, full: true}, true
	}
	lo, hi := normalizeAngle(angle1), normalizeAngle(angle2)
	if math32.IsNaN(lo) || math32.IsNaN(hi) || lo == hi {
		return arcSpan{}, false
	}
	if hi == 0 {
		hi = tau32
	}
	if hi < lo {
		hi += tau32
	}
	return arcSpan{lo: lo, hi: hi}, true
}

// fold returns theta, theta+2π or theta-2π, whichever falls inside
// (lo-pad, hi+pad]. theta is in (0, 2π].
func (s arcSpan) fold(theta, pad float32) (float32, bool) {
	for _, t := range [3]float32{theta, theta + tau32, theta - tau32} {
		if s.lo-pad < t && t <= s.hi+pad {
			return t, true
		}
	}
	return 0, false
}

func (s arcSpan) contains(theta float32) bool {
	_, ok := s.fold(theta, 0)
	return ok
}

// CircleArc draws an aliased circle arc from angle1 to angle2, in radians
// counter-clockwise from the positive x axis. It draws the same pixels as
// Circle, keeping those whose angle lies in (angle1, angle2]. An arc with
// angle2 before angle1 wraps through angle 0; an arc of 2π or more is the
// whole circle; an arc with angle2 equal to angle1 (mod 2π) is empty.
func (r raster) CircleArc(center Offset, radius int, angle1, angle2 float32, c Color) {
	span, ok := newArcSpan(angle1, angle2)
	if !ok {
		return
	}
	r.midpoint(center, radius, func(px, py int, theta float32) {
		if span.contains(theta) {
			r.dst.Point(px, py, c)
		}
	})
}

// CircleArcAA draws an antialiased circle arc. It draws the pixels of
// CircleAA whose angle lies in the arc; see CircleArc for the angles.
func (r raster) CircleArcAA(center Offset, radius int, angle1, angle2 float32, c Color) {
	span, ok := newArcSpan(angle1, angle2)
	if !ok {
		return
	}
	for y := 0; y <= radius; y++ {
		sqy := y * y
		for x := 0; x <= radius; x++ {
			cov, ok := ringCoverage(x*x+sqy, radius)
			if !ok {
				continue
			}
			quadrantsAngled(center.X, center.Y, x, y, pointAngle(x, y), func(px, py int, theta float32) {
				if span.contains(theta) {
					r.plot(px, py, c, cov)
				}
			})
		}
	}
}

// CirclePie draws an aliased filled circle sector between angle1 and
// angle2: the pixels of FillCircle whose angle lies in the arc, plus the
// center. See CircleArc for the angles.
func (r raster) CirclePie(center Offset, radius int, angle1, angle2 float32, c Color) {
	span, ok := newArcSpan(angle1, angle2)
	if !ok {
		return
	}
	limit := radius * (radius + 1)
	for y := 0; y <= radius; y++ {
		sqy := y * y
		for x := 0; x <= radius; x++ {
			if x*x+sqy > limit {
				continue
			}
			if x == 0 && y == 0 {
				r.dst.Point(center.X, center.Y, c)
				continue
			}
			quadrantsAngled(center.X, center.Y, x, y, pointAngle(x, y), func(px, py int, theta float32) {
				if span.contains(theta) {
					r.dst.Point(px, py, c)
				}
			})
		}
	}
}

// CirclePieAA draws an antialiased filled circle sector. The round edge is
// antialiased like FillCircleAA. The two straight edges fade over two
// pixel widths, measured as an angle of 1/d on either side of the bounding
// angle, d being the pixel's distance to the center.
func (r raster) CirclePieAA(center Offset, radius int, angle1, angle2 float32, c Color) {
	span, ok := newArcSpan(angle1, angle2)
	if !ok {
		return
	}
	for y := 0; y <= radius; y++ {
		sqy := y * y
		for x := 0; x <= radius; x++ {
			sqd := x*x + sqy
			cov, ok := diskCoverage(sqd, radius)
			if !ok {
				continue
			}
			if span.full {
				r.quadrants(center.X, center.Y, x, y, c, cov)
				continue
			}
			if sqd == 0 {
				// The apex has no angle; cover it by the share of the turn.
				r.plot(center.X, center.Y, c, unitCoverage(float32(cov)/255*(span.hi-span.lo)/tau32))
				continue
			}

			spacing := 1 / math32.Sqrt(float32(sqd))
			quadrantsAngled(center.X, center.Y, x, y, pointAngle(x, y), func(px, py int, theta float32) {
				t, ok := span.fold(theta, spacing)
				if !ok {
					return
				}
				r.plot(px, py, c, unitCoverage(float32(cov)/255*span.edgeRamp(t, spacing)))
			})
		}
	}
}

// edgeRamp returns the coverage in [0, 1] of angle t across the span's two
// soft edges, each 2*spacing wide and centered on lo and hi.
func (s arcSpan) edgeRamp(t, spacing float32) float32 {
	lo1, hi1 := s.lo-spacing, s.lo+spacing
	lo2, hi2 := s.hi-spacing, s.hi+spacing
	switch {
	case hi1 < t && t <= lo2:
		return 1
	case t > lo1 && t <= hi1:
		return min((t-lo1)/(2*spacing), (hi2-t)/(2*spacing), 1)
	case t > lo2 && t <= hi2:
		return (hi2 - t) / (2 * spacing)
	default:
		return 0
	}
}
