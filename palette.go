package lite

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Common colors
var (
	Red         = RGB(0xff, 0x00, 0x00)
	Green       = RGB(0x00, 0xff, 0x00)
	Blue        = RGB(0x00, 0x00, 0xff)
	Yellow      = RGB(0xff, 0xff, 0x00)
	Cyan        = RGB(0x00, 0xff, 0xff)
	Magenta     = RGB(0xff, 0x00, 0xff)
	DarkRed     = RGB(0x80, 0x00, 0x00)
	DarkGreen   = RGB(0x00, 0x80, 0x00)
	DarkBlue    = RGB(0x00, 0x00, 0x80)
	DarkYellow  = RGB(0x80, 0x80, 0x00)
	DarkCyan    = RGB(0x00, 0x80, 0x80)
	DarkMagenta = RGB(0x80, 0x00, 0x80)
	Orange      = RGB(0xff, 0xa5, 0x00)
	Pink        = RGB(0xff, 0x80, 0xff)
	Brown       = RGB(0x80, 0x40, 0x00)
	Gray        = RGB(0x80, 0x80, 0x80)
	Silver      = RGB(0xc0, 0xc0, 0xc0)
	Black       = RGB(0x00, 0x00, 0x00)
	White       = RGB(0xff, 0xff, 0xff)
	Transparent = RGBA{}
)

// palette holds the names of the common colors above. They take priority
// over the SVG names of the same spelling ("green" is 0x00ff00 here,
// 0x008000 in SVG).
var palette = map[string]RGBA{
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"darkred":     DarkRed,
	"darkgreen":   DarkGreen,
	"darkblue":    DarkBlue,
	"darkyellow":  DarkYellow,
	"darkcyan":    DarkCyan,
	"darkmagenta": DarkMagenta,
	"orange":      Orange,
	"pink":        Pink,
	"brown":       Brown,
	"gray":        Gray,
	"silver":      Silver,
	"black":       Black,
	"white":       White,
	"transparent": Transparent,
}

// Named looks up a color by name, case-insensitively. Underscores and
// hyphens are ignored, so "dark_red" and "DarkRed" are the same color.
// Names outside the common set fall back to the SVG 1.1 keywords.
func Named(name string) (RGBA, bool) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(name))
	if c, ok := palette[key]; ok {
		return c, true
	}
	if c, ok := colornames.Map[key]; ok {
		return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, true
	}
	return RGBA{}, false
}
