package fx

import "github.com/gogpu/fx/internal/filter"

// ConstantColor generates an infinite image of one color.
type ConstantColor struct {
	Color Color
}

// FilterName implements Generator.
func (ConstantColor) FilterName() string { return "ConstantColorGenerator" }

// CreateFilter implements Generator. input is ignored.
func (c ConstantColor) CreateFilter(_ *Image) (*Filter, error) {
	return createFilter(c.FilterName(), param{KeyColor, c.Color})
}

func init() {
	DefaultRegistry.MustRegister(Kind{
		Name:       "ConstantColorGenerator",
		Categories: []Category{CategoryGenerator},
		Inputs: []Input{
			{Key: KeyColor, Type: TypeColor, Default: Red, Doc: "The color."},
		},
		Render: func(r *Request) error {
			s := filter.NewConstant(r.Filter.ColorValue(KeyColor).f32())
			filter.Generate(r.Dst.buffer(), r.Bounds.Min, s, r.pool)
			return nil
		},
	})
}
