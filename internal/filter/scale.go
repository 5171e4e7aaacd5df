package filter

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Scale resamples src into dst with a Catmull-Rom kernel. The whole of src
// is mapped onto the whole of dst.
func Scale(src, dst *Buffer) {
	if src == nil || dst == nil || src.Width == 0 || src.Height == 0 || dst.Width == 0 || dst.Height == 0 {
		return
	}
	if src.Width == dst.Width && src.Height == dst.Height {
		copy(dst.Pix, src.Pix)
		return
	}
	d := dst.NRGBA()
	s := src.NRGBA()
	xdraw.CatmullRom.Scale(d, d.Rect, s, s.Rect, draw.Src, nil)
}

func scaledDim(n int, f float64) int {
	v := int(float64(n)*f + 0.5)
	if v < 1 {
		return 1
	}
	return v
}

// ScaledSize returns the size of a width x height image scaled by sx and sy,
// rounded to the nearest pixel and never smaller than 1x1.
func ScaledSize(width, height int, sx, sy float64) image.Point {
	return image.Pt(scaledDim(width, sx), scaledDim(height, sy))
}
