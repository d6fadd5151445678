package lite

import "testing"

// BenchmarkCanvas_FillRect benchmarks opaque and translucent fills of
// canvases of various sizes.
func BenchmarkCanvas_FillRect(b *testing.B) {
	sizes := []struct {
		name   string
		width  int
		height int
	}{
		{"100x100", 100, 100},
		{"512x512", 512, 512},
		{"1920x1080", 1920, 1080},
	}

	for _, size := range sizes {
		for _, col := range []RGBA{Red, Red.SetA(128)} {
			name := size.name + "/opaque"
			if !col.Opaque() {
				name = size.name + "/translucent"
			}
			b.Run(name, func(b *testing.B) {
				c := NewCanvas(size.width, size.height)
				r := R(0, 0, size.width, size.height)
				b.ReportAllocs()
				b.SetBytes(int64(size.width * size.height * 3))
				for b.Loop() {
					c.FillRect(r, col)
				}
			})
		}
	}
}

func BenchmarkCanvas_Gradient(b *testing.B) {
	g := NewDirectionalGradient([]Stop{
		{Pos: 0, Color: Red},
		{Pos: 0.5, Color: Yellow},
		{Pos: 1, Color: Blue},
	}, 256, WithAngle(0.3))
	c := NewCanvas(256, 256)
	b.ReportAllocs()
	for b.Loop() {
		c.FillRect(R(0, 0, 256, 256), g)
	}
}

func BenchmarkShapes(b *testing.B) {
	shapes := []struct {
		name string
		draw func(c *Canvas)
	}{
		{"Line", func(c *Canvas) { c.Line(Pt(0, 0), Pt(255, 200), Black) }},
		{"LineAA", func(c *Canvas) { c.LineAA(Pt(0, 0), Pt(255, 200), Black) }},
		{"Circle", func(c *Canvas) { c.Circle(Pt(128, 128), 100, Black) }},
		{"CircleAA", func(c *Canvas) { c.CircleAA(Pt(128, 128), 100, Black) }},
		{"FillCircleAA", func(c *Canvas) { c.FillCircleAA(Pt(128, 128), 100, Black) }},
		{"CircleArcAA", func(c *Canvas) { c.CircleArcAA(Pt(128, 128), 100, 0.5, 4, Black) }},
		{"CirclePieAA", func(c *Canvas) { c.CirclePieAA(Pt(128, 128), 100, 0.5, 4, Black) }},
		{"FillRoundRectAA", func(c *Canvas) { c.FillRoundRectAA(R(20, 20, 200, 150), 30, Black) }},
	}
	for _, s := range shapes {
		b.Run(s.name, func(b *testing.B) {
			c := NewCanvas(256, 256)
			b.ReportAllocs()
			for b.Loop() {
				s.draw(c)
			}
		})
	}
}

func BenchmarkOverlay_Write(b *testing.B) {
	base := NewCanvas(512, 512)
	b.ReportAllocs()
	for b.Loop() {
		o := NewOverlay(base, R(0, 0, 512, 512))
		o.FillCircle(Pt(256, 256), 200, Red.SetA(100))
		o.Write()
	}
}
