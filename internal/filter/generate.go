package filter

import (
	"image"

	"github.com/gogpu/fx/internal/color"
	"github.com/gogpu/fx/internal/parallel"
)

// Shader computes the color of a procedurally generated image.
// Shade is called with the coordinates of a pixel centre and must be safe
// for concurrent use.
type Shader interface {
	Shade(x, y float64) color.ColorU8
}

// Generate fills dst with s. dst covers the region of generator space that
// starts at origin, so dst pixel (i, j) samples s at
// (origin.X+i+0.5, origin.Y+j+0.5).
func Generate(dst *Buffer, origin image.Point, s Shader, pool *parallel.WorkerPool) {
	if dst == nil || s == nil {
		return
	}
	parallel.Rows(pool, dst.Height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := dst.Row(y)
			sy := float64(origin.Y+y) + 0.5
			for x := 0; x < dst.Width; x++ {
				c := s.Shade(float64(origin.X+x)+0.5, sy)
				i := x * 4
				row[i+0] = c.R
				row[i+1] = c.G
				row[i+2] = c.B
				row[i+3] = c.A
			}
		}
	})
}

// Constant is a Shader that returns the same color everywhere.
type Constant struct {
	c color.ColorU8
}

// NewConstant creates a constant-color shader.
func NewConstant(c color.ColorF32) *Constant {
	return &Constant{c: c.Bytes()}
}

// Shade implements Shader.
func (s *Constant) Shade(_, _ float64) color.ColorU8 {
	return s.c
}
