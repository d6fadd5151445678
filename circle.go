package lite

// Circle draws an aliased circle outline with the midpoint algorithm.
// A zero radius draws the center pixel; a negative radius draws nothing.
func (r raster) Circle(center Offset, radius int, c Color) {
	r.midpoint(center, radius, func(px, py int, _ float32) {
		r.dst.Point(px, py, c)
	})
}

// midpoint walks the first octant of a midpoint circle and hands every
// mirrored point to fn with its angle.
func (r raster) midpoint(center Offset, radius int, fn func(px, py int, theta float32)) {
	switch {
	case radius < 0:
		return
	case radius == 0:
		fn(center.X, center.Y, tau32)
		return
	}

	e := (1 - radius) / 2
	x, y := radius, 0
	for x >= y {
		octants(center.X, center.Y, x, y, pointAngle(x, y), fn)
		y++
		if e >= 0 {
			x--
			e -= x
		}
		e += y
	}
}

// CircleAA draws an antialiased circle outline. Instead of tracing the
// boundary it scans the bounding quadrant and derives the coverage of each
// pixel from its squared distance to the center, without square roots.
func (r raster) CircleAA(center Offset, radius int, c Color) {
	for y := 0; y <= radius; y++ {
		sqy := y * y
		for x := 0; x <= radius; x++ {
			if cov, ok := ringCoverage(x*x+sqy, radius); ok {
				r.quadrants(center.X, center.Y, x, y, c, cov)
			}
		}
	}
}

// FillCircle draws an aliased filled circle: every pixel with
// x² + y² <= r(r+1).
func (r raster) FillCircle(center Offset, radius int, c Color) {
	limit := radius * (radius + 1)
	for y := 0; y <= radius; y++ {
		sqy := y * y
		for x := 0; x <= radius; x++ {
			if x*x+sqy <= limit {
				r.quadrants(center.X, center.Y, x, y, c, 255)
			}
		}
	}
}

// FillCircleAA draws an antialiased filled circle. Pixels inside r² are
// solid; a single band outside it fades to transparent.
func (r raster) FillCircleAA(center Offset, radius int, c Color) {
	for y := 0; y <= radius; y++ {
		sqy := y * y
		for x := 0; x <= radius; x++ {
			if cov, ok := diskCoverage(x*x+sqy, radius); ok {
				r.quadrants(center.X, center.Y, x, y, c, cov)
			}
		}
	}
}
