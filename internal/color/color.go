// Package color provides the fixed-point channel interpolation used by
// lite's color model and gradients.
package color

// Isqrt returns floor(sqrt(x)) for x >= 0 and 0 for negative x.
func Isqrt(x int32) int32 {
	if x <= 0 {
		return 0
	}
	n := uint32(x)
	var res uint32
	bit := uint32(1) << 30
	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}
	return int32(res)
}

// Lerp interpolates one channel.
//
// Formula: (b - a) * t / 255 + a
func Lerp(a, b, t uint8) uint8 {
	ai := int32(a)
	return uint8((int32(b)-ai)*int32(t)/255 + ai)
}

// GammaLerp interpolates one channel in an approximate gamma 2 space.
//
// Formula: isqrt((b² - a²) * t / 255 + a²)
func GammaLerp(a, b, t uint8) uint8 {
	a2 := int32(a) * int32(a)
	b2 := int32(b) * int32(b)
	return uint8(Isqrt((b2-a2)*int32(t)/255 + a2))
}
