package filter

import "github.com/gogpu/fx/internal/parallel"

// ColorMatrix is an affine colour transform stored as four rows of five
// coefficients. Row i computes output channel i (R, G, B, A) as the dot
// product of its first four entries with the input channels plus its fifth
// entry. Channels are straight-alpha bytes in [0, 255]; results are clamped.
type ColorMatrix [20]float32

// Identity returns the color matrix that leaves every pixel unchanged.
func Identity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0, // R
		0, 1, 0, 0, 0, // G
		0, 0, 1, 0, 0, // B
		0, 0, 0, 1, 0, // A
	}
}

// Brightness adds b*255 to every color channel; b = 0 is unchanged.
func Brightness(b float32) ColorMatrix {
	off := b * 255
	return ColorMatrix{
		1, 0, 0, 0, off,
		0, 1, 0, 0, off,
		0, 0, 1, 0, off,
		0, 0, 0, 1, 0,
	}
}

// Contrast scales colour channels around mid-gray (128). Factor 1 is
// unchanged and 0 is flat gray.
func Contrast(factor float32) ColorMatrix {
	pivot := 128 - 128*factor
	return ColorMatrix{
		factor, 0, 0, 0, pivot,
		0, factor, 0, 0, pivot,
		0, 0, factor, 0, pivot,
		0, 0, 0, 1, 0,
	}
}

// Saturation blends each pixel with its Rec. 709 luminance. Factor 0 is
// grayscale, 1 unchanged and values above 1 oversaturate.
func Saturation(factor float32) ColorMatrix {
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)
	inv := 1 - factor
	return ColorMatrix{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Controls combines saturation, brightness and contrast, applied in that
// order.
func Controls(saturation, brightness, contrast float32) ColorMatrix {
	return Saturation(saturation).Then(Brightness(brightness)).Then(Contrast(contrast))
}

// Sepia blends between the identity (intensity 0) and a full sepia tone
// (intensity 1).
func Sepia(intensity float32) ColorMatrix {
	full := ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
	id := Identity()
	var m ColorMatrix
	for i := range m {
		m[i] = id[i] + (full[i]-id[i])*intensity
	}
	return m
}

// Invert returns the matrix that inverts color channels and keeps alpha.
func Invert() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// Then returns the matrix that applies m first and next second.
func (m ColorMatrix) Then(next ColorMatrix) ColorMatrix {
	// Treat both as 5x5 with an implicit [0 0 0 0 1] last row.
	var r ColorMatrix
	for i := range 4 {
		r[i*5+4] = next[i*5+4]
		for k := range 4 {
			w := next[i*5+k]
			for j := range 5 {
				r[i*5+j] += w * m[k*5+j]
			}
		}
	}
	return r
}

// Apply transforms every pixel of src into dst, which must have the same
// size. src and dst may be the same buffer.
func (m *ColorMatrix) Apply(src, dst *Buffer, pool *parallel.WorkerPool) {
	if src == nil || dst == nil || src.Width != dst.Width || src.Height != dst.Height {
		return
	}
	parallel.Rows(pool, src.Height, func(y0, y1 int) {
		for row := y0; row < y1; row++ {
			in, out := src.Row(row), dst.Row(row)
			for i := 0; i+4 <= len(in); i += 4 {
				c := [4]float32{float32(in[i]), float32(in[i+1]), float32(in[i+2]), float32(in[i+3])}
				for ch := range 4 {
					coef := m[ch*5 : ch*5+5]
					out[i+ch] = clampUint8(coef[0]*c[0] + coef[1]*c[1] + coef[2]*c[2] + coef[3]*c[3] + coef[4])
				}
			}
		}
	})
}
