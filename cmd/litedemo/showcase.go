package main

import (
	"math"

	"github.com/gogpu/lite"
)

// drawShowcase lays every shape out in a 4x3 grid over a gradient
// backdrop, aliased on the left half of each cell and antialiased on the
// right.
func drawShowcase(c *lite.Canvas) {
	drawBackdrop(c)
	drawCells(c)
}

func drawBackdrop(c *lite.Canvas) {
	w, h := c.Width(), c.Height()
	backdrop := lite.NewDirectionalGradient([]lite.Stop{
		{Pos: 0, Color: lite.MustHex("#1d2b53")},
		{Pos: 0.6, Color: lite.MustHex("#7e2553")},
		{Pos: 1, Color: lite.MustHex("#ff77a8")},
	}, float32(h), lite.WithAngle(math.Pi/2), lite.WithOrigin(lite.Pt(0, h-1)), lite.WithInterpolation(lite.InterpolateLab))
	c.FillRect(lite.R(0, 0, w, h), backdrop)
}

var cells = []func(dc *lite.Canvas, s lite.Size){
	lines, circles, filledCircles, arcs,
	pies, rects, roundRects, filledRoundRects,
	gradientRect, overlayDemo, stripes, palette,
}

func drawCells(c *lite.Canvas) {
	cw, ch := c.Width()/4, c.Height()/3
	for i, fn := range cells {
		cell := lite.R(i%4*cw, i/4*ch, cw, ch)
		c.Subregion(cell)
		fn(c, cell.Size())
		c.EndSubregion()
	}
}

func half(s lite.Size) (left, right lite.Offset, r int) {
	r = max(min(s.W/4, s.H/2)-3, 1)
	return lite.Pt(s.W/4, s.H/2), lite.Pt(3*s.W/4, s.H/2), r
}

func lines(dc *lite.Canvas, s lite.Size) {
	for i := 0; i < 5; i++ {
		y := i * (s.H - 1) / 4
		dc.Line(lite.Pt(2, s.H/2), lite.Pt(s.W/2-2, y), lite.White)
		dc.LineAA(lite.Pt(s.W/2+2, s.H/2), lite.Pt(s.W-3, y), lite.White)
	}
	dc.LineH(lite.Pt(2, s.H-2), s.W-4, lite.Yellow)
	dc.LineV(lite.Pt(s.W/2, 2), s.H-4, lite.Yellow)
}

func circles(dc *lite.Canvas, s lite.Size) {
	l, r, rad := half(s)
	dc.Circle(l, rad, lite.Cyan)
	dc.CircleAA(r, rad, lite.Cyan)
}

func filledCircles(dc *lite.Canvas, s lite.Size) {
	l, r, rad := half(s)
	dc.FillCircle(l, rad, lite.Orange)
	dc.FillCircleAA(r, rad, lite.Orange)
}

func arcs(dc *lite.Canvas, s lite.Size) {
	l, r, rad := half(s)
	for i, c := range []lite.RGBA{lite.Red, lite.Yellow, lite.Green} {
		from := float32(i) * 2 * math.Pi / 3
		to := from + math.Pi/2
		dc.CircleArc(l, rad-2*i, from, to, c)
		dc.CircleArcAA(r, rad-2*i, from, to, c)
	}
}

func pies(dc *lite.Canvas, s lite.Size) {
	l, r, rad := half(s)
	dc.CirclePie(l, rad, math.Pi/4, 2*math.Pi-math.Pi/4, lite.Yellow)
	dc.CirclePieAA(r, rad, math.Pi/4, 2*math.Pi-math.Pi/4, lite.Yellow)
}

func rects(dc *lite.Canvas, s lite.Size) {
	dc.Rect(lite.R(3, 3, s.W/2-6, s.H-6), lite.White)
	dc.FillRect(lite.R(s.W/2+3, 3, s.W/2-6, s.H-6), lite.White.SetA(160))
}

func roundRects(dc *lite.Canvas, s lite.Size) {
	rad := s.H / 5
	dc.RoundRect(lite.R(3, 3, s.W/2-6, s.H-6), rad, lite.Pink)
	dc.RoundRectAA(lite.R(s.W/2+3, 3, s.W/2-6, s.H-6), rad, lite.Pink)
}

func filledRoundRects(dc *lite.Canvas, s lite.Size) {
	rad := s.H / 5
	dc.FillRoundRect(lite.R(3, 3, s.W/2-6, s.H-6), rad, lite.Silver)
	dc.FillRoundRectAA(lite.R(s.W/2+3, 3, s.W/2-6, s.H-6), rad, lite.Silver)
}

func gradientRect(dc *lite.Canvas, s lite.Size) {
	// Gradients are positioned in canvas coordinates.
	origin := dc.CurrentSubregion().Offset()
	stops := []lite.Stop{{Pos: 0, Color: lite.Red}, {Pos: 1, Color: lite.Blue}}
	linear := lite.NewDirectionalGradient(stops, float32(s.W-6), lite.WithOrigin(origin.Add(lite.Pt(3, 0))))
	gamma := lite.NewDirectionalGradient(stops, float32(s.W-6),
		lite.WithOrigin(origin.Add(lite.Pt(3, 0))), lite.WithInterpolation(lite.InterpolateGamma))
	dc.FillRoundRectAA(lite.R(3, 3, s.W-6, s.H/2-4), 4, linear)
	dc.FillRoundRectAA(lite.R(3, s.H/2+1, s.W-6, s.H/2-4), 4, gamma)
}

// overlayDemo blends three translucent disks in one overlay so their
// overlaps mix with each other before touching the canvas.
func overlayDemo(dc *lite.Canvas, s lite.Size) {
	o := lite.NewOverlay(dc, dc.CurrentSubregion())
	rad := max(min(s.W, s.H)/4, 1)
	cx, cy := s.W/2, s.H/2
	o.FillCircleAA(lite.Pt(cx-rad/2, cy-rad/3), rad, lite.Red.SetA(150))
	o.FillCircleAA(lite.Pt(cx+rad/2, cy-rad/3), rad, lite.Green.SetA(150))
	o.FillCircleAA(lite.Pt(cx, cy+rad/2), rad, lite.Blue.SetA(150))
	o.Write()
}

func stripes(dc *lite.Canvas, s lite.Size) {
	origin := dc.CurrentSubregion().Offset()
	g := lite.NewDirectionalGradient([]lite.Stop{
		{Pos: 0, Color: lite.Black},
		{Pos: 0.5, Color: lite.White},
		{Pos: 1, Color: lite.Black},
	}, 12, lite.WithAngle(math.Pi/4), lite.WithOrigin(origin), lite.WithRepeat(true))
	dc.FillCircleAA(lite.Pt(s.W/2, s.H/2), max(min(s.W, s.H)/2-3, 1), g.WithAlpha(200))
}

func palette(dc *lite.Canvas, s lite.Size) {
	colors := []lite.RGBA{
		lite.Red, lite.Orange, lite.Yellow, lite.Green,
		lite.Cyan, lite.Blue, lite.Magenta, lite.Pink,
	}
	sw := max(s.W/len(colors), 1)
	for i, c := range colors {
		dc.FillRect(lite.R(i*sw, s.H/4, sw, s.H/2), c)
	}
}
