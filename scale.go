package fx

import (
	"image"

	"github.com/gogpu/fx/internal/filter"
)

// ScaleTransform resamples its input with a Catmull-Rom kernel. The output
// is Scale*AspectRatio times as wide and Scale times as tall as the input.
// Zero Scale and AspectRatio keep the default of 1.
type ScaleTransform struct {
	Scale       float64
	AspectRatio float64
}

// FilterName implements Generator.
func (ScaleTransform) FilterName() string { return "ScaleTransform" }

// CreateFilter implements Generator.
func (s ScaleTransform) CreateFilter(input *Image) (*Filter, error) {
	if input == nil {
		return nil, ErrNilImage
	}
	params := []param{{KeyImage, input}}
	if s.Scale != 0 {
		params = append(params, param{KeyScale, s.Scale})
	}
	if s.AspectRatio != 0 {
		params = append(params, param{KeyAspectRatio, s.AspectRatio})
	}
	return createFilter(s.FilterName(), params...)
}

func scaledSize(f *Filter) image.Point {
	src := f.ImageValue(KeyImage)
	if src == nil {
		return image.Point{}
	}
	scale := f.NumberValue(KeyScale)
	return filter.ScaledSize(src.Width(), src.Height(), scale*f.NumberValue(KeyAspectRatio), scale)
}

func init() {
	DefaultRegistry.MustRegister(Kind{
		Name:       "ScaleTransform",
		Categories: []Category{CategoryGeometry},
		Inputs: []Input{
			imageInput,
			{Key: KeyScale, Type: TypeNumber, Default: 1.0, SliderMin: 0.05, SliderMax: 8, Doc: "Vertical scale."},
			{Key: KeyAspectRatio, Type: TypeNumber, Default: 1.0, SliderMin: 0.05, SliderMax: 8, Doc: "Extra horizontal scale."},
		},
		Extent: func(f *Filter) (image.Rectangle, error) {
			return image.Rectangle{Max: scaledSize(f)}, nil
		},
		Render: func(r *Request) error {
			src := r.Filter.ImageValue(KeyImage)
			size := scaledSize(r.Filter)
			out := filter.NewBuffer(size.X, size.Y)
			filter.Scale(src.buffer(), out)
			r.crop(out)
			return nil
		},
	})
}
