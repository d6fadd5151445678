package lite

import "github.com/chewxy/math32"

// Line draws an aliased line from p1 to p2, both ends included, using
// Bresenham's algorithm. Exactly one pixel is drawn per step along the
// longer axis.
func (r raster) Line(p1, p2 Offset, c Color) {
	steep := absDiff(p1.X, p2.X) < absDiff(p1.Y, p2.Y)
	if steep {
		p1.X, p1.Y = p1.Y, p1.X
		p2.X, p2.Y = p2.Y, p2.X
	}
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	yi := 1
	if dy < 0 {
		yi = -1
		dy = -dy
	}

	d := 2*dy - dx
	y := p1.Y
	for x := p1.X; x <= p2.X; x++ {
		if steep {
			r.dst.Point(y, x, c)
		} else {
			r.dst.Point(x, y, c)
		}
		if d > 0 {
			y += yi
			d += 2 * (dy - dx)
		} else {
			d += 2 * dy
		}
	}
}

// LineAA draws an antialiased line from p1 to p2 using Wu's algorithm.
// Both end points are drawn at full coverage. Every column in between
// gets two pixels straddling the ideal line, weighted by the distance
// to it.
func (r raster) LineAA(p1, p2 Offset, c Color) {
	steep := absDiff(p1.X, p2.X) < absDiff(p1.Y, p2.Y)
	if steep {
		p1.X, p1.Y = p1.Y, p1.X
		p2.X, p2.Y = p2.Y, p2.X
	}
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}

	plot := func(x, y int, cov uint8) {
		if steep {
			x, y = y, x
		}
		r.plot(x, y, c, cov)
	}

	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	gradient := float32(1)
	if dx != 0 {
		gradient = float32(dy) / float32(dx)
	}

	plot(p1.X, p1.Y, 255)
	if p2 != p1 {
		plot(p2.X, p2.Y, 255)
	}

	intery := float32(p1.Y) + gradient
	for x := p1.X + 1; x < p2.X; x++ {
		ipart := math32.Floor(intery)
		frac := intery - ipart
		y := int(ipart)
		plot(x, y, 255-unitCoverage(frac))
		plot(x, y+1, unitCoverage(frac))
		intery += gradient
	}
}

// LineH draws a horizontal line of length pixels starting at p and going
// right. A non-positive length draws nothing.
func (r raster) LineH(p Offset, length int, c Color) {
	for x := p.X; x < p.X+length; x++ {
		r.dst.Point(x, p.Y, c)
	}
}

// LineV draws a vertical line of length pixels starting at p and going
// down. A non-positive length draws nothing.
func (r raster) LineV(p Offset, length int, c Color) {
	for y := p.Y; y < p.Y+length; y++ {
		r.dst.Point(p.X, y, c)
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
