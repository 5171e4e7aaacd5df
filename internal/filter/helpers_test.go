package filter

import "github.com/gogpu/fx/internal/color"

// Test helper functions shared across filter tests.

// fillBuffer creates a buffer filled with c.
func fillBuffer(w, h int, c color.ColorU8) *Buffer {
	b := NewBuffer(w, h)
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i+0] = c.R
		b.Pix[i+1] = c.G
		b.Pix[i+2] = c.B
		b.Pix[i+3] = c.A
	}
	return b
}

// pixelAt returns the color of pixel (x, y).
func pixelAt(b *Buffer, x, y int) color.ColorU8 {
	i := (y*b.Width + x) * 4
	return color.ColorU8{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}
}

// u8Near reports whether a and b differ by at most tol in every channel.
func u8Near(a, b color.ColorU8, tol int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v >= -tol && v <= tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

var (
	white = color.ColorF32{R: 1, G: 1, B: 1, A: 1}
	black = color.ColorF32{R: 0, G: 0, B: 0, A: 1}
	red   = color.ColorF32{R: 1, G: 0, B: 0, A: 1}

	whiteU8 = color.ColorU8{R: 255, G: 255, B: 255, A: 255}
	blackU8 = color.ColorU8{R: 0, G: 0, B: 0, A: 255}
	redU8   = color.ColorU8{R: 255, G: 0, B: 0, A: 255}
)
