package lite

// GradientOption configures a DirectionalGradient during creation.
// Use functional options to customize gradient behavior.
//
// Example:
//
//	// Left to right, clamped
//	g := lite.NewDirectionalGradient(stops, 100)
//
//	// Bottom to top, repeating every 20 pixels, gamma-aware
//	g := lite.NewDirectionalGradient(stops, 20,
//	    lite.WithAngle(math.Pi/2),
//	    lite.WithRepeat(true),
//	    lite.WithInterpolation(lite.InterpolateGamma))
type GradientOption func(*gradientOptions)

// gradientOptions holds optional configuration for gradient creation.
type gradientOptions struct {
	angle  float32
	origin Offset
	repeat bool
	interp Interpolation
}

// defaultGradientOptions returns the default gradient options.
func defaultGradientOptions() gradientOptions {
	return gradientOptions{
		angle:  0,
		origin: Offset{},
		repeat: false,
		interp: InterpolateLinear,
	}
}

// WithAngle sets the gradient direction in radians, counter-clockwise from
// the positive x axis. The angle is normalized to [0, 2π).
func WithAngle(radians float32) GradientOption {
	return func(o *gradientOptions) {
		o.angle = radians
	}
}

// WithOrigin sets the absolute pixel where the ramp starts.
func WithOrigin(p Offset) GradientOption {
	return func(o *gradientOptions) {
		o.origin = p
	}
}

// WithRepeat makes the ramp wrap around instead of clamping to its end
// colors.
func WithRepeat(repeat bool) GradientOption {
	return func(o *gradientOptions) {
		o.repeat = repeat
	}
}

// WithInterpolation selects how colors between stops are mixed.
func WithInterpolation(i Interpolation) GradientOption {
	return func(o *gradientOptions) {
		o.interp = i
	}
}
