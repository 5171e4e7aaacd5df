package filter

import (
	"math"

	"github.com/gogpu/fx/internal/color"
)

// RadialGradient blends Color0 at Radius0 into Color1 at Radius1 around a
// centre. Inside the smaller radius and outside the larger one the end
// colors extend.
type RadialGradient struct {
	CenterX, CenterY float64
	Radius0, Radius1 float64
	Color0, Color1   color.ColorF32
}

// Shader returns the gradient as a Shader.
func (g RadialGradient) Shader() Shader {
	return &radialShader{g: g, ramp: color.NewRamp(g.Color0, g.Color1)}
}

type radialShader struct {
	g    RadialGradient
	ramp color.Ramp
}

// Shade implements Shader.
func (s *radialShader) Shade(x, y float64) color.ColorU8 {
	d := math.Hypot(x-s.g.CenterX, y-s.g.CenterY)
	diff := s.g.Radius1 - s.g.Radius0
	if diff == 0 {
		if d < s.g.Radius0 {
			return s.ramp.At(0)
		}
		return s.ramp.At(1)
	}
	return s.ramp.At(float32((d - s.g.Radius0) / diff))
}

// LinearGradient blends Color0 at Point0 into Color1 at Point1 along the
// line joining them; color is constant on perpendiculars to that line.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Color0, Color1 color.ColorF32
}

// Shader returns the gradient as a Shader.
func (g LinearGradient) Shader() Shader {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	return &linearShader{
		g:    g,
		dx:   dx,
		dy:   dy,
		len2: dx*dx + dy*dy,
		ramp: color.NewRamp(g.Color0, g.Color1),
	}
}

type linearShader struct {
	g      LinearGradient
	dx, dy float64
	len2   float64
	ramp   color.Ramp
}

// Shade implements Shader.
func (s *linearShader) Shade(x, y float64) color.ColorU8 {
	if s.len2 == 0 {
		return s.ramp.At(0)
	}
	t := ((x-s.g.X0)*s.dx + (y-s.g.Y0)*s.dy) / s.len2
	return s.ramp.At(float32(t))
}
