package filter

import (
	"math"

	"github.com/gogpu/fx/internal/color"
)

// Checkerboard alternates two colors in square cells of Width pixels whose
// corner sits at the centre point. Cells with an even index sum use Color0.
type Checkerboard struct {
	CenterX, CenterY float64
	Color0, Color1   color.ColorF32
	Width            float64

	// Sharpness in [0,1]: 1 gives hard cell edges, 0 a sinusoidal blend.
	Sharpness float64
}

// Shader returns the checkerboard as a Shader.
func (c Checkerboard) Shader() Shader {
	return &checkerShader{p: c, ramp: color.NewRamp(c.Color0, c.Color1)}
}

// Stripes alternates two colors in vertical stripes of Width pixels, the
// first Color0 stripe starting at CenterX.
type Stripes struct {
	CenterX        float64
	Color0, Color1 color.ColorF32
	Width          float64
	Sharpness      float64
}

// Shader returns the stripes as a Shader.
func (s Stripes) Shader() Shader {
	return &checkerShader{
		p: Checkerboard{
			CenterX:   s.CenterX,
			Color0:    s.Color0,
			Color1:    s.Color1,
			Width:     s.Width,
			Sharpness: s.Sharpness,
		},
		ramp:    color.NewRamp(s.Color0, s.Color1),
		stripes: true,
	}
}

type checkerShader struct {
	p       Checkerboard
	ramp    color.Ramp
	stripes bool
}

// Shade implements Shader.
func (s *checkerShader) Shade(x, y float64) color.ColorU8 {
	if s.p.Width <= 0 || math.IsNaN(s.p.Width) {
		return s.ramp.At(0)
	}
	u := (x - s.p.CenterX) / s.p.Width
	v := (y - s.p.CenterY) / s.p.Width

	if s.p.Sharpness >= 1 {
		parity := int64(math.Floor(u))
		if !s.stripes {
			parity += int64(math.Floor(v))
		}
		if parity&1 == 0 {
			return s.ramp.At(0)
		}
		return s.ramp.At(1)
	}

	m := squareWave(u, s.p.Sharpness)
	if !s.stripes {
		m *= squareWave(v, s.p.Sharpness)
	}
	return s.ramp.At(float32((1 - m) / 2))
}

// squareWave is +1 on [2k, 2k+1) and -1 on [2k+1, 2k+2), softened by
// steepening a sine: gain 1/(1-sharpness) is clamped back into [-1, 1].
func squareWave(u, sharpness float64) float64 {
	if sharpness < 0 {
		sharpness = 0
	}
	w := math.Sin(math.Pi*u) / (1 - sharpness)
	return math.Max(-1, math.Min(1, w))
}
