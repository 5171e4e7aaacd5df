package filter

import "image"

// Buffer is a packed, non-premultiplied RGBA8 pixel buffer.
// Pixel (x, y) starts at Pix[(y*Width+x)*4].
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer allocates a transparent buffer.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// Row returns the bytes of row y.
func (b *Buffer) Row(y int) []uint8 {
	i := y * b.Width * 4
	return b.Pix[i : i+b.Width*4]
}

// NRGBA returns an image.NRGBA that shares b's pixels.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
