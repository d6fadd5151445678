package sketch

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/lite"
)

func mustRender(t *testing.T, doc *Document, opts ...Option) *lite.Canvas {
	t.Helper()
	c, err := Render(doc, opts...)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return c
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.toml", TOML, false},
		{"dir/A.TOML", TOML, false},
		{"a.yaml", YAML, false},
		{"a.yml", YAML, false},
		{"a.json", 0, true},
		{"noext", 0, true},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrFormat) {
				t.Errorf("FormatOf(%q) error = %v, want ErrFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatOf(%q) = %v, %v; want %v", tt.path, got, err, tt.want)
		}
	}
}

func TestLoadFormatsAgree(t *testing.T) {
	fromTOML, err := Load(filepath.Join("testdata", "showcase.toml"))
	if err != nil {
		t.Fatalf("Load toml: %v", err)
	}
	fromYAML, err := Load(filepath.Join("testdata", "showcase.yaml"))
	if err != nil {
		t.Fatalf("Load yaml: %v", err)
	}
	if diff := cmp.Diff(fromTOML, fromYAML); diff != "" {
		t.Fatalf("documents differ (-toml +yaml):\n%s", diff)
	}
	if len(fromTOML.Shapes) != 5 {
		t.Fatalf("got %d shapes, want 5", len(fromTOML.Shapes))
	}

	a := mustRender(t, fromTOML)
	b := mustRender(t, fromYAML)
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("renders of the same sketch differ")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
	if _, err := Load("testdata/showcase.txt"); !errors.Is(err, ErrFormat) {
		t.Errorf("Load with a bad extension: err = %v, want ErrFormat", err)
	}
}

func TestDecodeUnknownKey(t *testing.T) {
	tests := []struct {
		format Format
		src    string
	}{
		{TOML, "width = 4\nheight = 4\ncolour = \"red\"\n"},
		{YAML, "width: 4\nheight: 4\ncolour: red\n"},
		{TOML, "width = 4\nheight = 4\n[[shape]]\nkind = \"point\"\nz = 1\n"},
		{YAML, "width: 4\nheight: 4\nshape:\n  - {kind: point, z: 1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			_, err := Parse([]byte(tt.src), tt.format)
			if !errors.Is(err, ErrFormat) {
				t.Errorf("err = %v, want ErrFormat", err)
			}
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	doc, err := Parse(nil, YAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := Render(doc); !errors.Is(err, ErrSize) {
		t.Errorf("Render of an empty sketch: err = %v, want ErrSize", err)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want error
	}{
		{"zero width", Document{Width: 0, Height: 4}, ErrSize},
		{"too tall", Document{Width: 4, Height: MaxSide + 1}, ErrSize},
		{"bad background", Document{Width: 4, Height: 4, Background: "nocolor"}, ErrFormat},
		{"unknown kind", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "triangle", Color: "red"},
		}}, ErrUnknownShape},
		{"no color", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "point"},
		}}, ErrFormat},
		{"color and gradient", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "point", Color: "red", Gradient: &Gradient{Scale: 1, Stops: []Stop{{0, "red"}}}},
		}}, ErrFormat},
		{"gradient without stops", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "point", Gradient: &Gradient{Scale: 1}},
		}}, ErrFormat},
		{"gradient zero scale", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "point", Gradient: &Gradient{Stops: []Stop{{0, "red"}}}},
		}}, ErrFormat},
		{"gradient bad origin", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "point", Gradient: &Gradient{Scale: 1, Stops: []Stop{{0, "red"}}, Origin: []int{1}}},
		}}, ErrFormat},
		{"gradient bad interpolation", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "point", Gradient: &Gradient{Scale: 1, Stops: []Stop{{0, "red"}}, Interpolation: "cubic"}},
		}}, ErrFormat},
		{"huge radius", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "fill_circle", Radius: 2000000000, Color: "red"},
		}}, ErrFormat},
		{"huge negative x", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "line", X: -MaxGeometry - 1, Color: "red"},
		}}, ErrFormat},
		{"huge length", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "line_h", Length: MaxGeometry + 1, Color: "red"},
		}}, ErrFormat},
		{"huge clip", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "point", Color: "red", Clip: []int{0, 0, MaxGeometry + 1, 1}},
		}}, ErrFormat},
		{"short clip", Document{Width: 4, Height: 4, Shapes: []Shape{
			{Kind: "point", Color: "red", Clip: []int{0, 0, 2}},
		}}, ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Render(&tt.doc)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if c != nil {
				t.Error("canvas returned alongside an error")
			}
		})
	}
}

func TestRenderGeometryAtLimit(t *testing.T) {
	doc := &Document{Width: 4, Height: 4, Shapes: []Shape{
		{Kind: "line_h", X: -MaxGeometry, Length: MaxGeometry, Color: "black"},
	}}
	if _, err := Render(doc); err != nil {
		t.Errorf("geometry at MaxGeometry rejected: %v", err)
	}
}

func TestRenderMatchesDirectDrawing(t *testing.T) {
	doc := &Document{Width: 24, Height: 16, Shapes: []Shape{
		{Kind: "line_aa", X: 0, Y: 0, X2: 23, Y2: 15, Color: "black"},
		{Kind: "circle_aa", X: 8, Y: 8, Radius: 5, Color: "#ff0000"},
		{Kind: "arc", X: 16, Y: 8, Radius: 6, From: 0, To: 180, Color: "blue"},
		{Kind: "pie_aa", X: 16, Y: 8, Radius: 4, From: 90, To: 360, Color: "#00800080"},
		{Kind: "round_rect", X: 1, Y: 1, W: 22, H: 14, Radius: 3, Color: "gray"},
		{Kind: "line_h", X: 2, Y: 14, Length: 10, Color: "black"},
	}}
	got := mustRender(t, doc)

	want := lite.NewCanvas(24, 16)
	want.LineAA(lite.Pt(0, 0), lite.Pt(23, 15), lite.Black)
	want.CircleAA(lite.Pt(8, 8), 5, lite.Red)
	want.CircleArc(lite.Pt(16, 8), 6, 0, radians(180), lite.Blue)
	want.CirclePieAA(lite.Pt(16, 8), 4, radians(90), radians(360), lite.MustHex("#00800080"))
	gray, _ := lite.Named("gray")
	want.RoundRect(lite.R(1, 1, 22, 14), 3, gray)
	want.LineH(lite.Pt(2, 14), 10, lite.Black)

	if !bytes.Equal(got.Pix(), want.Pix()) {
		t.Error("rendered sketch differs from direct drawing")
	}
}

func TestRenderBackground(t *testing.T) {
	doc := &Document{Width: 2, Height: 2}
	if got := mustRender(t, doc).RGBAt(1, 1); got != lite.White {
		t.Errorf("default background = %v, want white", got)
	}
	if got := mustRender(t, doc, WithBackground(lite.Black)).RGBAt(1, 1); got != lite.Black {
		t.Errorf("WithBackground = %v, want black", got)
	}
	doc.Background = "#336699"
	if got := mustRender(t, doc, WithBackground(lite.Black)).RGBAt(0, 0); got != lite.RGB(0x33, 0x66, 0x99) {
		t.Errorf("sketch background = %v, want #336699", got)
	}
}

func TestRenderOverlayGroup(t *testing.T) {
	doc := &Document{Width: 12, Height: 8, Shapes: []Shape{
		{Kind: "fill_rect", X: 0, Y: 0, W: 8, H: 8, Color: "#ff000080", Overlay: "a"},
		{Kind: "point", X: 11, Y: 0, Color: "black"},
		{Kind: "fill_rect", X: 4, Y: 0, W: 8, H: 8, Color: "#0000ff80", Overlay: "a"},
	}}
	got := mustRender(t, doc)

	want := lite.NewCanvas(12, 8)
	o := lite.NewOverlay(want, lite.R(0, 0, 12, 8))
	o.FillRect(lite.R(0, 0, 8, 8), lite.MustHex("#ff000080"))
	want.Point(11, 0, lite.Black)
	o.FillRect(lite.R(4, 0, 8, 8), lite.MustHex("#0000ff80"))
	o.Write()

	if !bytes.Equal(got.Pix(), want.Pix()) {
		t.Error("overlay group differs from a hand-built overlay")
	}

	// The overlay is written last, so its blue covers the black point.
	if got.RGBAt(11, 0) == lite.Black {
		t.Error("overlay was written before the group's last shape")
	}
}

func TestRenderClip(t *testing.T) {
	doc := &Document{Width: 8, Height: 8, Shapes: []Shape{
		{Kind: "fill_rect", X: 0, Y: 0, W: 10, H: 10, Color: "black", Clip: []int{2, 3, 3, 2}},
	}}
	c := mustRender(t, doc)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			inside := x >= 2 && x < 5 && y >= 3 && y < 5
			want := lite.White
			if inside {
				want = lite.Black
			}
			if got := c.RGBAt(x, y); got != want {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := c.CurrentSubregion(); got != lite.R(0, 0, 8, 8) {
		t.Errorf("subregion left pushed: %v", got)
	}
}

func TestRenderGradient(t *testing.T) {
	doc := &Document{Width: 16, Height: 2, Shapes: []Shape{{
		Kind: "fill_rect", W: 16, H: 2,
		Gradient: &Gradient{
			Scale:         16,
			Angle:         90,
			Origin:        []int{0, 1},
			Repeat:        true,
			Interpolation: "Lab",
			Stops:         []Stop{{0, "red"}, {1, "#0000ff"}},
		},
	}}}
	got := mustRender(t, doc)

	g := lite.NewDirectionalGradient([]lite.Stop{
		{Pos: 0, Color: lite.Red},
		{Pos: 1, Color: lite.Blue},
	}, 16,
		lite.WithAngle(radians(90)),
		lite.WithOrigin(lite.Pt(0, 1)),
		lite.WithRepeat(true),
		lite.WithInterpolation(lite.InterpolateLab),
	)
	want := lite.NewCanvas(16, 2)
	want.FillRect(lite.R(0, 0, 16, 2), g)

	if !bytes.Equal(got.Pix(), want.Pix()) {
		t.Error("gradient fill differs from direct drawing")
	}
}

func TestRenderLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	doc := &Document{Width: 4, Height: 4, Shapes: []Shape{
		{Kind: "point", X: 1, Y: 1, Color: "red", Overlay: "o"},
		{Kind: "point", X: 2, Y: 2, Color: "red"},
	}}
	mustRender(t, doc, WithLogger(log))

	out := buf.String()
	if n := strings.Count(out, "sketch: shape drawn"); n != 2 {
		t.Errorf("got %d shape lines, want 2:\n%s", n, out)
	}
	if n := strings.Count(out, "sketch: overlay written"); n != 1 {
		t.Errorf("got %d overlay lines, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, "point at (1, 1)") {
		t.Errorf("shape not described in log:\n%s", out)
	}
}

func TestKindsCaseInsensitive(t *testing.T) {
	doc := &Document{Width: 3, Height: 3, Shapes: []Shape{
		{Kind: "FILL_Circle", X: 1, Y: 1, Radius: 1, Color: "black"},
	}}
	if got := mustRender(t, doc).RGBAt(1, 1); got != lite.Black {
		t.Errorf("center = %v, want black", got)
	}
}

func TestKinds(t *testing.T) {
	got := Kinds()
	sort.Strings(got)
	if len(got) != 19 {
		t.Fatalf("Kinds() has %d entries: %v", len(got), got)
	}
	for _, k := range []string{"point", "line_aa", "pie_aa", "fill_round_rect_aa"} {
		if i := sort.SearchStrings(got, k); i == len(got) || got[i] != k {
			t.Errorf("Kinds() lacks %q", k)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	doc, err := Load("testdata/showcase.toml")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Format{TOML, YAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, doc, f); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			back, err := Decode(&buf, f)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, buf.String())
			}
			if diff := cmp.Diff(doc, back); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}
