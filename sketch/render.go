package sketch

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/gogpu/lite"
)

// surface is what a shape draws on: a canvas or an overlay.
type surface interface {
	lite.Drawable

	Line(p1, p2 lite.Offset, c lite.Color)
	LineAA(p1, p2 lite.Offset, c lite.Color)
	LineH(p lite.Offset, length int, c lite.Color)
	LineV(p lite.Offset, length int, c lite.Color)
	Circle(center lite.Offset, radius int, c lite.Color)
	CircleAA(center lite.Offset, radius int, c lite.Color)
	FillCircle(center lite.Offset, radius int, c lite.Color)
	FillCircleAA(center lite.Offset, radius int, c lite.Color)
	CircleArc(center lite.Offset, radius int, angle1, angle2 float32, c lite.Color)
	CircleArcAA(center lite.Offset, radius int, angle1, angle2 float32, c lite.Color)
	CirclePie(center lite.Offset, radius int, angle1, angle2 float32, c lite.Color)
	CirclePieAA(center lite.Offset, radius int, angle1, angle2 float32, c lite.Color)
	Rect(r lite.Rect, c lite.Color)
	FillRect(r lite.Rect, c lite.Color)
	RoundRect(r lite.Rect, radius int, c lite.Color)
	RoundRectAA(r lite.Rect, radius int, c lite.Color)
	FillRoundRect(r lite.Rect, radius int, c lite.Color)
	FillRoundRectAA(r lite.Rect, radius int, c lite.Color)
}

var (
	_ surface = (*lite.Canvas)(nil)
	_ surface = (*lite.Overlay)(nil)
)

type drawFunc func(s surface, sh *Shape, c lite.Color)

func (sh *Shape) at() lite.Offset  { return lite.Pt(sh.X, sh.Y) }
func (sh *Shape) end() lite.Offset { return lite.Pt(sh.X2, sh.Y2) }
func (sh *Shape) rect() lite.Rect  { return lite.R(sh.X, sh.Y, sh.W, sh.H) }
func (sh *Shape) from() float32    { return radians(sh.From) }
func (sh *Shape) to() float32      { return radians(sh.To) }

// String describes the shape for log output.
func (sh *Shape) String() string {
	return fmt.Sprintf("%s at (%d, %d)", sh.Kind, sh.X, sh.Y)
}

func radians(deg float32) float32 {
	return deg * math.Pi / 180
}

// kinds maps a shape kind to its drawing call.
//
//	point                            x, y
//	line, line_aa                    x, y, x2, y2
//	line_h, line_v                   x, y, length
//	circle, circle_aa, fill_circle*  x, y, radius
//	arc, arc_aa, pie, pie_aa         x, y, radius, from, to
//	rect, fill_rect                  x, y, w, h
//	round_rect*, fill_round_rect*    x, y, w, h, radius
var kinds = map[string]drawFunc{
	"point":   func(s surface, sh *Shape, c lite.Color) { s.Point(sh.X, sh.Y, c) },
	"line":    func(s surface, sh *Shape, c lite.Color) { s.Line(sh.at(), sh.end(), c) },
	"line_aa": func(s surface, sh *Shape, c lite.Color) { s.LineAA(sh.at(), sh.end(), c) },
	"line_h":  func(s surface, sh *Shape, c lite.Color) { s.LineH(sh.at(), sh.Length, c) },
	"line_v":  func(s surface, sh *Shape, c lite.Color) { s.LineV(sh.at(), sh.Length, c) },

	"circle":         func(s surface, sh *Shape, c lite.Color) { s.Circle(sh.at(), sh.Radius, c) },
	"circle_aa":      func(s surface, sh *Shape, c lite.Color) { s.CircleAA(sh.at(), sh.Radius, c) },
	"fill_circle":    func(s surface, sh *Shape, c lite.Color) { s.FillCircle(sh.at(), sh.Radius, c) },
	"fill_circle_aa": func(s surface, sh *Shape, c lite.Color) { s.FillCircleAA(sh.at(), sh.Radius, c) },

	"arc":    func(s surface, sh *Shape, c lite.Color) { s.CircleArc(sh.at(), sh.Radius, sh.from(), sh.to(), c) },
	"arc_aa": func(s surface, sh *Shape, c lite.Color) { s.CircleArcAA(sh.at(), sh.Radius, sh.from(), sh.to(), c) },
	"pie":    func(s surface, sh *Shape, c lite.Color) { s.CirclePie(sh.at(), sh.Radius, sh.from(), sh.to(), c) },
	"pie_aa": func(s surface, sh *Shape, c lite.Color) { s.CirclePieAA(sh.at(), sh.Radius, sh.from(), sh.to(), c) },

	"rect":               func(s surface, sh *Shape, c lite.Color) { s.Rect(sh.rect(), c) },
	"fill_rect":          func(s surface, sh *Shape, c lite.Color) { s.FillRect(sh.rect(), c) },
	"round_rect":         func(s surface, sh *Shape, c lite.Color) { s.RoundRect(sh.rect(), sh.Radius, c) },
	"round_rect_aa":      func(s surface, sh *Shape, c lite.Color) { s.RoundRectAA(sh.rect(), sh.Radius, c) },
	"fill_round_rect":    func(s surface, sh *Shape, c lite.Color) { s.FillRoundRect(sh.rect(), sh.Radius, c) },
	"fill_round_rect_aa": func(s surface, sh *Shape, c lite.Color) { s.FillRoundRectAA(sh.rect(), sh.Radius, c) },
}

// Kinds returns every supported shape kind.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	return out
}

// step is a validated shape ready to draw.
type step struct {
	shape *Shape
	draw  drawFunc
	color lite.Color
	clip  *lite.Rect
}

// Render validates doc and draws it onto a new canvas. Nothing is drawn
// when any shape is invalid.
func Render(doc *Document, opts ...Option) (*lite.Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = lite.Logger()
	}

	if doc.Width <= 0 || doc.Height <= 0 || doc.Width > MaxSide || doc.Height > MaxSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, doc.Width, doc.Height)
	}
	bg := o.background
	if doc.Background != "" {
		c, err := lite.ParseColor(doc.Background)
		if err != nil {
			return nil, fmt.Errorf("%w: background: %w", ErrFormat, err)
		}
		bg = c
	}

	steps := make([]step, len(doc.Shapes))
	for i := range doc.Shapes {
		st, err := compile(&doc.Shapes[i])
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		steps[i] = st
	}

	canvas := lite.NewCanvas(doc.Width, doc.Height)
	canvas.Clear(bg)
	draw(canvas, steps, log)
	return canvas, nil
}

// draw runs the steps in order. Shapes of one overlay group go into a
// shared overlay that is written after the group's last shape.
func draw(canvas *lite.Canvas, steps []step, log *slog.Logger) {
	last := make(map[string]int)
	for i, st := range steps {
		if st.shape.Overlay != "" {
			last[st.shape.Overlay] = i
		}
	}

	overlays := make(map[string]*lite.Overlay)
	for i, st := range steps {
		var s surface = canvas
		if name := st.shape.Overlay; name != "" {
			o, ok := overlays[name]
			if !ok {
				o = lite.NewOverlay(canvas, lite.RectAt(lite.Offset{}, canvas.Size()))
				overlays[name] = o
			}
			s = o
		}

		if st.clip != nil {
			s.Subregion(*st.clip)
		}
		st.draw(s, st.shape, st.color)
		if st.clip != nil {
			s.EndSubregion()
		}
		log.Debug("sketch: shape drawn", "index", i, "shape", st.shape, "overlay", st.shape.Overlay)

		if name := st.shape.Overlay; name != "" && last[name] == i {
			overlays[name].Write()
			log.Debug("sketch: overlay written", "name", name)
		}
	}
}

func compile(sh *Shape) (step, error) {
	fn, ok := kinds[strings.ToLower(sh.Kind)]
	if !ok {
		return step{}, fmt.Errorf("%w: %q", ErrUnknownShape, sh.Kind)
	}
	if err := sh.checkGeometry(); err != nil {
		return step{}, err
	}
	c, err := sh.color()
	if err != nil {
		return step{}, err
	}
	st := step{shape: sh, draw: fn, color: c}
	if sh.Clip != nil {
		if len(sh.Clip) != 4 {
			return step{}, fmt.Errorf("%w: clip wants [x, y, w, h], got %v", ErrFormat, sh.Clip)
		}
		r := lite.R(sh.Clip[0], sh.Clip[1], sh.Clip[2], sh.Clip[3])
		st.clip = &r
	}
	return st, nil
}

// checkGeometry rejects values beyond MaxGeometry. The circle and rect
// scans cost the square of the radius whatever the clip.
func (sh *Shape) checkGeometry() error {
	type field struct {
		name string
		v    int
	}
	fields := []field{
		{"x", sh.X}, {"y", sh.Y}, {"x2", sh.X2}, {"y2", sh.Y2},
		{"w", sh.W}, {"h", sh.H}, {"length", sh.Length}, {"radius", sh.Radius},
	}
	for i, v := range sh.Clip {
		fields = append(fields, field{fmt.Sprintf("clip[%d]", i), v})
	}
	if sh.Gradient != nil {
		for i, v := range sh.Gradient.Origin {
			fields = append(fields, field{fmt.Sprintf("gradient origin[%d]", i), v})
		}
	}
	for _, f := range fields {
		if f.v > MaxGeometry || f.v < -MaxGeometry {
			return fmt.Errorf("%w: %s = %d is beyond ±%d", ErrFormat, f.name, f.v, MaxGeometry)
		}
	}
	return nil
}

func (sh *Shape) color() (lite.Color, error) {
	switch {
	case sh.Color != "" && sh.Gradient != nil:
		return nil, fmt.Errorf("%w: both color and gradient set", ErrFormat)
	case sh.Gradient != nil:
		return sh.Gradient.build()
	case sh.Color != "":
		c, err := lite.ParseColor(sh.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: no color or gradient", ErrFormat)
	}
}

func (g *Gradient) build() (lite.Color, error) {
	if len(g.Stops) == 0 {
		return nil, fmt.Errorf("%w: gradient without stops", ErrFormat)
	}
	if g.Scale == 0 {
		return nil, fmt.Errorf("%w: gradient scale is zero", ErrFormat)
	}
	stops := make([]lite.Stop, len(g.Stops))
	for i, s := range g.Stops {
		c, err := lite.ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: stop %d: %w", ErrFormat, i, err)
		}
		stops[i] = lite.Stop{Pos: s.Pos, Color: c}
	}

	opts := []lite.GradientOption{
		lite.WithAngle(radians(g.Angle)),
		lite.WithRepeat(g.Repeat),
	}
	switch len(g.Origin) {
	case 0:
	case 2:
		opts = append(opts, lite.WithOrigin(lite.Pt(g.Origin[0], g.Origin[1])))
	default:
		return nil, fmt.Errorf("%w: origin wants [x, y], got %v", ErrFormat, g.Origin)
	}
	interp, err := parseInterpolation(g.Interpolation)
	if err != nil {
		return nil, err
	}
	opts = append(opts, lite.WithInterpolation(interp))

	return lite.NewDirectionalGradient(stops, g.Scale, opts...), nil
}

func parseInterpolation(s string) (lite.Interpolation, error) {
	for _, i := range []lite.Interpolation{lite.InterpolateLinear, lite.InterpolateGamma, lite.InterpolateLab} {
		if strings.EqualFold(s, i.String()) {
			return i, nil
		}
	}
	if s == "" {
		return lite.InterpolateLinear, nil
	}
	return 0, fmt.Errorf("%w: interpolation %q", ErrFormat, s)
}
