package lite

// FillRect fills rect with c.
func (r raster) FillRect(rect Rect, c Color) {
	p1, p2 := rect.Offset(), rect.Offset2()
	for y := p1.Y; y < p2.Y; y++ {
		for x := p1.X; x < p2.X; x++ {
			r.dst.Point(x, y, c)
		}
	}
}

// Rect draws the one pixel border of rect. Every border pixel is drawn
// once, also for rects one pixel wide or high.
func (r raster) Rect(rect Rect, c Color) {
	rc, ok := newRoundedCorners(rect, 0)
	if !ok {
		return
	}
	r.edges(rc, c)
	rc.plot(r, 0, 0, c, 255)
}

// RoundRect draws an aliased rounded rectangle border. The corners are
// midpoint circle quarters of the given radius, clamped so that they fit.
func (r raster) RoundRect(rect Rect, radius int, c Color) {
	rc, ok := newRoundedCorners(rect, radius)
	if !ok {
		return
	}
	r.edges(rc, c)

	e := (1 - rc.radius) / 2
	x, y := rc.radius, 0
	for x >= y {
		if x != y {
			rc.plot(r, y, x, c, 255)
		}
		rc.plot(r, x, y, c, 255)
		y++
		if e >= 0 {
			x--
			e -= x
		}
		e += y
	}
}

// RoundRectAA draws a rounded rectangle border with antialiased corners.
// The straight runs are axis aligned and drawn at full coverage.
func (r raster) RoundRectAA(rect Rect, radius int, c Color) {
	rc, ok := newRoundedCorners(rect, radius)
	if !ok {
		return
	}
	r.edges(rc, c)

	if rc.radius == 0 {
		rc.plot(r, 0, 0, c, 255)
		return
	}
	for y := 0; y <= rc.radius; y++ {
		sqy := y * y
		for x := 0; x <= rc.radius; x++ {
			if cov, ok := ringCoverage(x*x+sqy, rc.radius); ok {
				rc.plot(r, x, y, c, cov)
			}
		}
	}
}

// FillRoundRect fills an aliased rounded rectangle. Corner pixels are kept
// when x² + y² <= r(r+2).
func (r raster) FillRoundRect(rect Rect, radius int, c Color) {
	rc, ok := newRoundedCorners(rect, radius)
	if !ok {
		return
	}
	r.fillBody(rc, c)

	limit := rc.radius * (rc.radius + 2)
	for y := 0; y <= rc.radius; y++ {
		sqy := y * y
		for x := 0; x <= rc.radius; x++ {
			if x*x+sqy <= limit {
				rc.plot(r, x, y, c, 255)
			}
		}
	}
}

// FillRoundRectAA fills a rounded rectangle with antialiased corners,
// banded like FillCircleAA.
func (r raster) FillRoundRectAA(rect Rect, radius int, c Color) {
	rc, ok := newRoundedCorners(rect, radius)
	if !ok {
		return
	}
	r.fillBody(rc, c)

	if rc.radius == 0 {
		rc.plot(r, 0, 0, c, 255)
		return
	}
	for y := 0; y <= rc.radius; y++ {
		sqy := y * y
		for x := 0; x <= rc.radius; x++ {
			if cov, ok := diskCoverage(x*x+sqy, rc.radius); ok {
				rc.plot(r, x, y, c, cov)
			}
		}
	}
}

// roundedCorners is the corner geometry of a rounded rectangle: p1 and p3
// are its top-left and bottom-right pixels, c1 and c3 the centers of the
// top-left and bottom-right corner arcs.
type roundedCorners struct {
	p1, p3 Offset
	c1, c3 Offset
	radius int
}

// newRoundedCorners clamps radius to [0, min((W-1)/2, (H-1)/2)] so that
// opposite corners never overlap. ok is false for an empty rect.
func newRoundedCorners(rect Rect, radius int) (rc roundedCorners, ok bool) {
	if rect.Empty() {
		return rc, false
	}
	radius = max(0, min(radius, (rect.W-1)/2, (rect.H-1)/2))
	p1 := rect.Offset()
	p3 := rect.Offset2().Sub(Offset{X: 1, Y: 1})
	return roundedCorners{
		p1:     p1,
		p3:     p3,
		c1:     p1.Add(Offset{X: radius, Y: radius}),
		c3:     p3.Sub(Offset{X: radius, Y: radius}),
		radius: radius,
	}, true
}

// plot mirrors the corner offset (x, y) into the four corners. Pixels
// shared by two corners are drawn once.
func (rc roundedCorners) plot(r raster, x, y int, c Color, cov uint8) {
	sameCol := x == 0 && rc.c1.X == rc.c3.X
	sameRow := y == 0 && rc.c1.Y == rc.c3.Y
	r.plot(rc.c1.X-x, rc.c1.Y-y, c, cov)
	if !sameCol {
		r.plot(rc.c3.X+x, rc.c1.Y-y, c, cov)
	}
	if sameRow {
		return
	}
	r.plot(rc.c1.X-x, rc.c3.Y+y, c, cov)
	if !sameCol {
		r.plot(rc.c3.X+x, rc.c3.Y+y, c, cov)
	}
}

// edges draws the four straight border runs between the corners.
func (r raster) edges(rc roundedCorners, c Color) {
	for x := rc.c1.X + 1; x < rc.c3.X; x++ {
		r.dst.Point(x, rc.p1.Y, c)
		if rc.p3.Y != rc.p1.Y {
			r.dst.Point(x, rc.p3.Y, c)
		}
	}
	for y := rc.c1.Y + 1; y < rc.c3.Y; y++ {
		r.dst.Point(rc.p1.X, y, c)
		if rc.p3.X != rc.p1.X {
			r.dst.Point(rc.p3.X, y, c)
		}
	}
}

// fillBody fills everything outside the four corner squares: the full
// width band between the corner rows, and the top and bottom runs between
// the corner columns.
func (r raster) fillBody(rc roundedCorners, c Color) {
	for y := rc.c1.Y + 1; y < rc.c3.Y; y++ {
		for x := rc.p1.X; x <= rc.p3.X; x++ {
			r.dst.Point(x, y, c)
		}
	}
	for x := rc.c1.X + 1; x < rc.c3.X; x++ {
		for y := rc.p1.Y; y <= rc.c1.Y; y++ {
			r.dst.Point(x, y, c)
		}
		for y := max(rc.c3.Y, rc.c1.Y+1); y <= rc.p3.Y; y++ {
			r.dst.Point(x, y, c)
		}
	}
}
