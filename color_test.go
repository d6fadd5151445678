package lite

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xffff},
		{"opaque white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"opaque red", Red, 0xffff, 0, 0, 0xffff},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"half alpha red", RGBA{255, 0, 0, 128}, 0x8080, 0, 0, 0x8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, %#x)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	if want := (RGBA{10, 20, 30, 40}); got != want {
		t.Errorf("FromColor = %v, want %v", got, want)
	}
	if got := FromColor(Orange); got != Orange {
		t.Errorf("FromColor(Orange) = %v", got)
	}
}

func TestArrays(t *testing.T) {
	c := FromArray4([4]uint8{1, 2, 3, 4})
	if c.Array4() != [4]uint8{1, 2, 3, 4} {
		t.Errorf("Array4 = %v", c.Array4())
	}
	if c.Array3() != [3]uint8{1, 2, 3} {
		t.Errorf("Array3 = %v", c.Array3())
	}
	if got := FromArray3([3]uint8{1, 2, 3}); !got.Opaque() {
		t.Errorf("FromArray3 should be opaque, got %v", got)
	}
}

func TestSetAScales(t *testing.T) {
	tests := []struct {
		c    RGBA
		a    uint8
		want uint8
	}{
		{Red, 255, 255},
		{Red, 128, 128},
		{Red, 0, 0},
		{RGBA{255, 0, 0, 128}, 128, 64},
		{RGBA{255, 0, 0, 200}, 255, 200},
	}
	for _, tt := range tests {
		got := tt.c.SetA(tt.a)
		if got.A != tt.want {
			t.Errorf("%v.SetA(%d).A = %d, want %d", tt.c, tt.a, got.A, tt.want)
		}
		if got.R != tt.c.R || got.G != tt.c.G || got.B != tt.c.B {
			t.Errorf("%v.SetA(%d) changed the color channels: %v", tt.c, tt.a, got)
		}
	}
	if got := Red.WithAlpha(128); got != Color(RGBA{255, 0, 0, 128}) {
		t.Errorf("WithAlpha = %v", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp t=0 = %v", got)
	}
	if got := Black.Lerp(White, 255); got != White {
		t.Errorf("Lerp t=255 = %v", got)
	}
	// (0 - 255) * 128 / 255 + 255 = -128 + 255
	if got := White.Lerp(Black, 128); got != RGB(127, 127, 127) {
		t.Errorf("Lerp t=128 = %v, want 127s", got)
	}
}

func TestGammaLerp(t *testing.T) {
	// isqrt((255² - 0) * 128 / 255) = isqrt(32640) = 180
	got := Black.GammaLerp(White, 128)
	if got != RGB(180, 180, 180) {
		t.Errorf("GammaLerp = %v, want 180s", got)
	}
	if got := Red.GammaLerp(Blue, 255); got != Blue {
		t.Errorf("GammaLerp t=255 = %v", got)
	}
}

func TestIntensity(t *testing.T) {
	if got := RGB(30, 60, 90).Intensity(); got != 60 {
		t.Errorf("Intensity = %d, want 60", got)
	}
	if got := White.Intensity(); got != 255 {
		t.Errorf("Intensity(White) = %d", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#f80", RGBA{0xff, 0x88, 0x00, 0xff}},
		{"#F808", RGBA{0xff, 0x88, 0x00, 0x88}},
		{"#1a2B3c", RGBA{0x1a, 0x2b, 0x3c, 0xff}},
		{"#1a2b3c4d", RGBA{0x1a, 0x2b, 0x3c, 0x4d}},
		{"#000", Black},
		{"#ffffff00", RGBA{0xff, 0xff, 0xff, 0}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "fff", "#ff", "#fffff", "#fffffffff", "#ggg", "# ff", "#12345z"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrMalformedColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrMalformedColor", in, err)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex should panic on malformed input")
		}
	}()
	MustHex("#nope")
}

func TestNamed(t *testing.T) {
	tests := []struct {
		name string
		want RGBA
	}{
		{"red", Red},
		{"Dark_Red", DarkRed},
		{"dark-red", DarkRed},
		// The common palette wins over the SVG keyword.
		{"green", RGB(0, 255, 0)},
		{"teal", RGB(0x00, 0x80, 0x80)},
		{"Light Sea Green", RGB(0x20, 0xb2, 0xaa)},
		{"transparent", Transparent},
	}
	for _, tt := range tests {
		got, ok := Named(tt.name)
		if !ok {
			t.Errorf("Named(%q) not found", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("Named(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if _, ok := Named("no-such-color"); ok {
		t.Error("Named should reject unknown names")
	}
}

func TestParseColor(t *testing.T) {
	if got, err := ParseColor("#00f"); err != nil || got != Blue {
		t.Errorf("ParseColor(#00f) = %v, %v", got, err)
	}
	if got, err := ParseColor("orange"); err != nil || got != Orange {
		t.Errorf("ParseColor(orange) = %v, %v", got, err)
	}
	if _, err := ParseColor("mauve-ish"); !errors.Is(err, ErrMalformedColor) {
		t.Errorf("ParseColor(mauve-ish) error = %v", err)
	}
}
