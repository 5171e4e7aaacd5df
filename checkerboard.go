package fx

import (
	"github.com/gogpu/fx/internal/filter"
)

// Checkerboard generates a checkerboard of Color0 and Color1 cells of Width
// pixels. A cell corner sits at Center. Sharpness 1 gives hard cell edges,
// lower values blend the colors across them.
type Checkerboard struct {
	Color0    Color
	Color1    Color
	Width     float64
	Center    Point
	Sharpness float64
}

// FilterName implements Generator.
func (Checkerboard) FilterName() string { return "CheckerboardGenerator" }

// CreateFilter implements Generator. input is ignored.
func (c Checkerboard) CreateFilter(_ *Image) (*Filter, error) {
	return createFilter(c.FilterName(),
		param{KeyColor0, c.Color0},
		param{KeyColor1, c.Color1},
		param{KeyWidth, c.Width},
		param{KeyCenter, c.Center},
		param{KeySharpness, c.Sharpness},
	)
}

// Stripes generates vertical stripes of Color0 and Color1, Width pixels
// wide. A Color0 stripe starts at Center.X.
type Stripes struct {
	Color0    Color
	Color1    Color
	Width     float64
	Center    Point
	Sharpness float64
}

// FilterName implements Generator.
func (Stripes) FilterName() string { return "StripesGenerator" }

// CreateFilter implements Generator. input is ignored.
func (s Stripes) CreateFilter(_ *Image) (*Filter, error) {
	return createFilter(s.FilterName(),
		param{KeyColor0, s.Color0},
		param{KeyColor1, s.Color1},
		param{KeyWidth, s.Width},
		param{KeyCenter, s.Center},
		param{KeySharpness, s.Sharpness},
	)
}

func patternInputs() []Input {
	return []Input{
		{Key: KeyCenter, Type: TypePoint, Default: Pt(150, 150), Doc: "Corner of the cell or stripe that starts with color 0."},
		{Key: KeyColor0, Type: TypeColor, Default: White, Doc: "First color."},
		{Key: KeyColor1, Type: TypeColor, Default: Black, Doc: "Second color."},
		{Key: KeyWidth, Type: TypeNumber, Default: 80.0, SliderMin: 0, SliderMax: 800, Doc: "Cell width in pixels."},
		{Key: KeySharpness, Type: TypeNumber, Default: 1.0, SliderMin: 0, SliderMax: 1, Doc: "1 for hard edges, 0 for a sinusoidal blend."},
	}
}

func warnWidth(f *Filter, w float64) {
	if w <= 0 {
		Logger().Warn("fx: non-positive width renders color 0 only", "filter", f.Name(), "width", w)
	}
}

func renderCheckerboard(r *Request) error {
	f := r.Filter
	c := f.PointValue(KeyCenter)
	w := f.NumberValue(KeyWidth)
	warnWidth(f, w)
	s := filter.Checkerboard{
		CenterX:   float64(c.X),
		CenterY:   float64(c.Y),
		Color0:    f.ColorValue(KeyColor0).f32(),
		Color1:    f.ColorValue(KeyColor1).f32(),
		Width:     w,
		Sharpness: f.NumberValue(KeySharpness),
	}.Shader()
	filter.Generate(r.Dst.buffer(), r.Bounds.Min, s, r.pool)
	return nil
}

func renderStripes(r *Request) error {
	f := r.Filter
	w := f.NumberValue(KeyWidth)
	warnWidth(f, w)
	s := filter.Stripes{
		CenterX:   float64(f.PointValue(KeyCenter).X),
		Color0:    f.ColorValue(KeyColor0).f32(),
		Color1:    f.ColorValue(KeyColor1).f32(),
		Width:     w,
		Sharpness: f.NumberValue(KeySharpness),
	}.Shader()
	filter.Generate(r.Dst.buffer(), r.Bounds.Min, s, r.pool)
	return nil
}

func init() {
	DefaultRegistry.MustRegister(Kind{
		Name:       "CheckerboardGenerator",
		Categories: []Category{CategoryGenerator},
		Inputs:     patternInputs(),
		Render:     renderCheckerboard,
	})
	DefaultRegistry.MustRegister(Kind{
		Name:       "StripesGenerator",
		Categories: []Category{CategoryGenerator},
		Inputs:     patternInputs(),
		Render:     renderStripes,
	})
}
