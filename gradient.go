package lite

import (
	"math"
	"sort"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"

	icolor "github.com/gogpu/lite/internal/color"
)

// Interpolation selects how colors are mixed between two gradient stops.
type Interpolation int

const (
	// InterpolateLinear mixes every channel linearly (default behavior).
	InterpolateLinear Interpolation = iota
	// InterpolateGamma mixes r, g and b in an approximate gamma 2 space
	// using an integer square root. Alpha stays linear.
	InterpolateGamma
	// InterpolateLab mixes r, g and b in CIE L*a*b*. Alpha stays linear.
	InterpolateLab
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpolateLinear:
		return "linear"
	case InterpolateGamma:
		return "gamma"
	case InterpolateLab:
		return "lab"
	default:
		return "unknown"
	}
}

// Stop is a gradient color stop. Pos is in [0, 1]; stops outside that range
// or with a non-finite position are ignored.
type Stop struct {
	Pos   float32
	Color RGBA
}

// rampStop is a stop with its position quantized to [0, 65535].
type rampStop struct {
	pos   uint16
	color RGBA
}

// gradientRamp maps a scalar to a color through sorted stops.
// Invariants: at least two stops, sorted by pos, first at 0, last at 65535.
type gradientRamp struct {
	stops  []rampStop
	repeat bool
	interp Interpolation
}

// newRamp sorts the stops and adds both end stops if missing.
func newRamp(stops []rampStop, repeat bool, interp Interpolation) gradientRamp {
	r := gradientRamp{repeat: repeat, interp: interp}
	switch len(stops) {
	case 0:
		r.stops = []rampStop{{0, Black}, {math.MaxUint16, Black}}
		return r
	case 1:
		r.stops = []rampStop{{0, stops[0].color}, {math.MaxUint16, stops[0].color}}
		return r
	}

	sorted := make([]rampStop, len(stops), len(stops)+2)
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].pos < sorted[j].pos
	})

	if last := sorted[len(sorted)-1]; last.pos < math.MaxUint16 {
		sorted = append(sorted, rampStop{math.MaxUint16, last.color})
	}
	if first := sorted[0]; first.pos != 0 {
		sorted = append([]rampStop{{0, first.color}}, sorted...)
	}
	r.stops = sorted
	return r
}

// quantizeStops converts public stops to ramp stops, dropping invalid ones.
func quantizeStops(stops []Stop) []rampStop {
	out := make([]rampStop, 0, len(stops))
	for _, s := range stops {
		if math32.IsNaN(s.Pos) || math32.IsInf(s.Pos, 0) || s.Pos < 0 || s.Pos > 1 {
			continue
		}
		out = append(out, rampStop{pos: uint16(s.Pos * math.MaxUint16), color: s.Color})
	}
	return out
}

// at returns the ramp color at v. The ramp spans v in [0, 1]; outside
// that range v is clamped, or wrapped when the ramp repeats. Non-finite
// values map to opaque black.
func (r gradientRamp) at(v float32) RGBA {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return Black
	}

	if r.repeat {
		v = remEuclid(v, 1)
	} else {
		v = min(max(v, 0), 1)
	}
	vc := v * math.MaxUint16
	vi := uint16(vc)

	i := sort.Search(len(r.stops), func(i int) bool {
		return r.stops[i].pos >= vi
	})
	if i < len(r.stops) && r.stops[i].pos == vi {
		// Duplicate positions resolve to the last one.
		for i+1 < len(r.stops) && r.stops[i+1].pos == vi {
			i++
		}
		return r.stops[i].color
	}

	under, over := r.stops[i-1], r.stops[i]
	t := uint8((vc - float32(under.pos)) / (float32(over.pos) - float32(under.pos)) * 255)
	return r.mix(under.color, over.color, t)
}

func (r gradientRamp) mix(a, b RGBA, t uint8) RGBA {
	switch r.interp {
	case InterpolateGamma:
		return a.GammaLerp(b, t)
	case InterpolateLab:
		return labLerp(a, b, t)
	default:
		return a.Lerp(b, t)
	}
}

// withAlpha returns a copy with every stop's alpha scaled by a/255.
func (r gradientRamp) withAlpha(a uint8) gradientRamp {
	stops := make([]rampStop, len(r.stops))
	for i, s := range r.stops {
		stops[i] = rampStop{pos: s.pos, color: s.color.SetA(a)}
	}
	r.stops = stops
	return r
}

func labLerp(a, b RGBA, t uint8) RGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, float64(t)/255).Clamped().RGB255()
	return RGBA{R: r, G: g, B: bl, A: icolor.Lerp(a.A, b.A, t)}
}

// remEuclid returns the non-negative remainder of v / m for m > 0. A tiny
// negative v can round up to exactly m.
func remEuclid(v, m float32) float32 {
	r := math32.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}
