package fx

import "github.com/gogpu/fx/internal/filter"

// GaussianBlur blurs its input with a Gaussian of standard deviation
// Radius. The output has the input's size; edges are clamped.
type GaussianBlur struct {
	Radius float64
}

// FilterName implements Generator.
func (GaussianBlur) FilterName() string { return "GaussianBlur" }

// CreateFilter implements Generator.
func (b GaussianBlur) CreateFilter(input *Image) (*Filter, error) {
	if input == nil {
		return nil, ErrNilImage
	}
	return createFilter(b.FilterName(),
		param{KeyImage, input},
		param{KeyRadius, b.Radius},
	)
}

func init() {
	DefaultRegistry.MustRegister(Kind{
		Name:       "GaussianBlur",
		Categories: []Category{CategoryBlur},
		Inputs: []Input{
			imageInput,
			{Key: KeyRadius, Type: TypeNumber, Default: 10.0, SliderMin: 0, SliderMax: 100, Doc: "Standard deviation in pixels."},
		},
		Render: func(r *Request) error {
			src := r.Filter.ImageValue(KeyImage)
			out := filter.NewBuffer(src.Width(), src.Height())
			filter.Blur(src.buffer(), out, r.Filter.NumberValue(KeyRadius), r.pool)
			r.crop(out)
			return nil
		},
	})
}
