package blend

// Over blends a straight-alpha source channel over an opaque destination
// channel.
//
// Formula: (S - D) * a / 255 + D
//
// Blending twice at a1 then a2 is not the same as one blend at a combined
// alpha; each step truncates independently.
func Over(dst, src, a byte) byte {
	return lerp255(dst, src, a)
}

// OverRGB blends a straight-alpha source color over an RGB8 pixel in place.
// px must hold at least three bytes. An opaque source overwrites.
func OverRGB(px []byte, r, g, b, a byte) {
	_ = px[2]
	if a == 255 {
		px[0], px[1], px[2] = r, g, b
		return
	}
	px[0] = lerp255(px[0], r, a)
	px[1] = lerp255(px[1], g, a)
	px[2] = lerp255(px[2], b, a)
}

// Premultiply scales a straight-alpha channel by its alpha.
func Premultiply(c, a byte) byte {
	return MulDiv255(c, a)
}

// AccumulateAlpha returns the coverage of a after it lands on da.
//
// Formula: (255 - a) * Da / 255 + a
func AccumulateAlpha(da, a byte) byte {
	return addClamp(MulDiv255(inv255(a), da), a)
}

// OverLayer blends a straight-alpha source onto an overlay layer pixel
// (RGBA, premultiplied) in place. Color channels use the same truncating
// over as OverRGB; alpha accumulates. px must hold at least four bytes.
//
// Formula: (S - D) * a / 255 + D per color channel,
// (255 - a) * Da / 255 + a for alpha.
func OverLayer(px []byte, r, g, b, a byte) {
	_ = px[3]
	if a == 255 {
		px[0], px[1], px[2], px[3] = r, g, b, 255
		return
	}
	px[0] = lerp255(px[0], r, a)
	px[1] = lerp255(px[1], g, a)
	px[2] = lerp255(px[2], b, a)
	px[3] = AccumulateAlpha(px[3], a)
}

// CompositePremul lays a premultiplied RGBA pixel over an opaque RGB8 pixel
// in place. dst must hold three bytes, src four.
//
// Formula: (255 - Sa) * D / 255 + S
func CompositePremul(dst, src []byte) {
	_, _ = dst[2], src[3]
	a := src[3]
	if a == 255 {
		dst[0], dst[1], dst[2] = src[0], src[1], src[2]
		return
	}
	inv := inv255(a)
	dst[0] = addClamp(MulDiv255(inv, dst[0]), src[0])
	dst[1] = addClamp(MulDiv255(inv, dst[1]), src[1])
	dst[2] = addClamp(MulDiv255(inv, dst[2]), src[2])
}
