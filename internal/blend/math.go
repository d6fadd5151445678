// Package blend provides the 8-bit integer compositing math used by the
// canvas and overlay.
//
// Every formula truncates toward zero exactly like the reference integer
// expressions it documents. Results must be reproducible to the byte, so
// the shift approximations of div255 are not used here.
package blend

// div255 divides a non-negative x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, exact for all x in [0, 255*255].
func div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// MulDiv255 returns a*b/255, truncated.
func MulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// lerp255 returns (src-dst)*a/255 + dst using signed arithmetic. The
// quotient truncates toward zero, so a negative difference rounds up.
func lerp255(dst, src, a byte) byte {
	d := int32(dst)
	return byte((int32(src)-d)*int32(a)/255 + d)
}
