package fx

import "github.com/gogpu/fx/internal/filter"

// RadialGradient blends Color0 at Radius0 from Center into Color1 at
// Radius1. Colors are interpolated in linear light.
type RadialGradient struct {
	Center  Point
	Radius0 float64
	Radius1 float64
	Color0  Color
	Color1  Color
}

// FilterName implements Generator.
func (RadialGradient) FilterName() string { return "RadialGradient" }

// CreateFilter implements Generator. input is ignored.
func (g RadialGradient) CreateFilter(_ *Image) (*Filter, error) {
	return createFilter(g.FilterName(),
		param{KeyCenter, g.Center},
		param{KeyRadius0, g.Radius0},
		param{KeyRadius1, g.Radius1},
		param{KeyColor0, g.Color0},
		param{KeyColor1, g.Color1},
	)
}

// LinearGradient blends Color0 at Point0 into Color1 at Point1.
type LinearGradient struct {
	Point0 Point
	Point1 Point
	Color0 Color
	Color1 Color
}

// FilterName implements Generator.
func (LinearGradient) FilterName() string { return "LinearGradient" }

// CreateFilter implements Generator. input is ignored.
func (g LinearGradient) CreateFilter(_ *Image) (*Filter, error) {
	return createFilter(g.FilterName(),
		param{KeyPoint0, g.Point0},
		param{KeyPoint1, g.Point1},
		param{KeyColor0, g.Color0},
		param{KeyColor1, g.Color1},
	)
}

func init() {
	DefaultRegistry.MustRegister(Kind{
		Name:       "RadialGradient",
		Categories: []Category{CategoryGenerator, CategoryGradient},
		Inputs: []Input{
			{Key: KeyCenter, Type: TypePoint, Default: Pt(150, 150), Doc: "Center of both circles."},
			{Key: KeyRadius0, Type: TypeNumber, Default: 5.0, SliderMin: 0, SliderMax: 800, Doc: "Radius where color 0 ends."},
			{Key: KeyRadius1, Type: TypeNumber, Default: 100.0, SliderMin: 0, SliderMax: 800, Doc: "Radius where color 1 begins."},
			{Key: KeyColor0, Type: TypeColor, Default: White, Doc: "Inner color."},
			{Key: KeyColor1, Type: TypeColor, Default: Black, Doc: "Outer color."},
		},
		Render: func(r *Request) error {
			f := r.Filter
			c := f.PointValue(KeyCenter)
			s := filter.RadialGradient{
				CenterX: float64(c.X),
				CenterY: float64(c.Y),
				Radius0: f.NumberValue(KeyRadius0),
				Radius1: f.NumberValue(KeyRadius1),
				Color0:  f.ColorValue(KeyColor0).f32(),
				Color1:  f.ColorValue(KeyColor1).f32(),
			}.Shader()
			filter.Generate(r.Dst.buffer(), r.Bounds.Min, s, r.pool)
			return nil
		},
	})

	DefaultRegistry.MustRegister(Kind{
		Name:       "LinearGradient",
		Categories: []Category{CategoryGenerator, CategoryGradient},
		Inputs: []Input{
			{Key: KeyPoint0, Type: TypePoint, Default: Pt(0, 0), Doc: "Where color 0 ends."},
			{Key: KeyPoint1, Type: TypePoint, Default: Pt(200, 200), Doc: "Where color 1 begins."},
			{Key: KeyColor0, Type: TypeColor, Default: White, Doc: "Start color."},
			{Key: KeyColor1, Type: TypeColor, Default: Black, Doc: "End color."},
		},
		Render: func(r *Request) error {
			f := r.Filter
			p0, p1 := f.PointValue(KeyPoint0), f.PointValue(KeyPoint1)
			s := filter.LinearGradient{
				X0:     float64(p0.X),
				Y0:     float64(p0.Y),
				X1:     float64(p1.X),
				Y1:     float64(p1.Y),
				Color0: f.ColorValue(KeyColor0).f32(),
				Color1: f.ColorValue(KeyColor1).f32(),
			}.Shader()
			filter.Generate(r.Dst.buffer(), r.Bounds.Min, s, r.pool)
			return nil
		},
	})
}
