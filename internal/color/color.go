// Package color provides the colour math shared by the fx kernels:
// sRGB transfer functions, float/byte conversion and interpolation in
// linear light.
package color

// ColorF32 is a straight-alpha colour with components in [0,1]. Whether
// the colour channels are sRGB or linear depends on where it is used.
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 is a straight-alpha 8-bit colour.
type ColorU8 struct {
	R, G, B, A uint8
}

// Ramp interpolates between two sRGB colors in linear light.
// The endpoints are converted once, so evaluating a ramp per pixel costs
// a few multiplications and table lookups.
type Ramp struct {
	c0, c1 ColorU8  // exact endpoint bytes
	l0, l1 ColorF32 // endpoints in linear space
}

// NewRamp creates a ramp from c0 (t=0) to c1 (t=1). Both colors are sRGB.
func NewRamp(c0, c1 ColorF32) Ramp {
	return Ramp{
		c0: c0.Bytes(),
		c1: c1.Bytes(),
		l0: c0.ToLinear(),
		l1: c1.ToLinear(),
	}
}

// At returns the ramp color at t. t is clamped to [0,1]; the endpoints are
// returned bit-exact.
func (r *Ramp) At(t float32) ColorU8 {
	if t <= 0 {
		return r.c0
	}
	if t >= 1 {
		return r.c1
	}
	return ColorU8{
		R: EncodeByte(lerp(r.l0.R, r.l1.R, t)),
		G: EncodeByte(lerp(r.l0.G, r.l1.G, t)),
		B: EncodeByte(lerp(r.l0.B, r.l1.B, t)),
		A: Byte(lerp(r.l0.A, r.l1.A, t)),
	}
}

func lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}
