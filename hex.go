package lite

import (
	"errors"
	"fmt"
)

// ErrMalformedColor is returned when a color literal cannot be parsed.
var ErrMalformedColor = errors.New("lite: malformed color literal")

// ParseHex parses a color from a hex string.
// Supports formats: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA", in any case.
// Short forms repeat each digit, so "#f80" is 0xff8800.
func ParseHex(s string) (RGBA, error) {
	if s == "" || s[0] != '#' {
		return RGBA{}, fmt.Errorf("%w: %q: missing '#'", ErrMalformedColor, s)
	}
	digits := s[1:]

	var v [8]uint8
	for i := 0; i < len(digits) && i < len(v); i++ {
		n, ok := hexDigit(digits[i])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: %q: invalid digit %q", ErrMalformedColor, s, digits[i])
		}
		v[i] = n
	}

	switch len(digits) {
	case 3: // RGB
		return RGBA{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: 255}, nil
	case 4: // RGBA
		return RGBA{R: v[0] * 17, G: v[1] * 17, B: v[2] * 17, A: v[3] * 17}, nil
	case 6: // RRGGBB
		return RGBA{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: 255}, nil
	case 8: // RRGGBBAA
		return RGBA{R: v[0]<<4 | v[1], G: v[2]<<4 | v[3], B: v[4]<<4 | v[5], A: v[6]<<4 | v[7]}, nil
	default:
		return RGBA{}, fmt.Errorf("%w: %q: want 3, 4, 6 or 8 digits, got %d", ErrMalformedColor, s, len(digits))
	}
}

// MustHex is like ParseHex but panics on malformed input.
// It is intended for package-level color literals.
func MustHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor accepts either a hex literal or a color name known to Named.
func ParseColor(s string) (RGBA, error) {
	if s != "" && s[0] == '#' {
		return ParseHex(s)
	}
	if c, ok := Named(s); ok {
		return c, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q: unknown color name", ErrMalformedColor, s)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
