package fx

import "github.com/gogpu/fx/internal/filter"

// ColorMatrix multiplies each pixel by a 4x5 matrix. R, G, B and A are the
// rows producing each output channel, applied to the non-premultiplied
// (r, g, b, a) input in [0, 1]; Bias is added afterwards.
//
// The zero value maps every pixel to transparent black. Use
// NewColorMatrix for the identity.
type ColorMatrix struct {
	R, G, B, A Vector
	Bias       Vector
}

// NewColorMatrix returns the identity color matrix.
func NewColorMatrix() ColorMatrix {
	return ColorMatrix{
		R: Vector{1, 0, 0, 0},
		G: Vector{0, 1, 0, 0},
		B: Vector{0, 0, 1, 0},
		A: Vector{0, 0, 0, 1},
	}
}

// FilterName implements Generator.
func (ColorMatrix) FilterName() string { return "ColorMatrix" }

// CreateFilter implements Generator.
func (m ColorMatrix) CreateFilter(input *Image) (*Filter, error) {
	if input == nil {
		return nil, ErrNilImage
	}
	return createFilter(m.FilterName(),
		param{KeyImage, input},
		param{KeyRVector, m.R},
		param{KeyGVector, m.G},
		param{KeyBVector, m.B},
		param{KeyAVector, m.A},
		param{KeyBiasVector, m.Bias},
	)
}

// SepiaTone maps its input to sepia. Intensity 0 leaves it unchanged.
type SepiaTone struct {
	Intensity float64
}

// FilterName implements Generator.
func (SepiaTone) FilterName() string { return "SepiaTone" }

// CreateFilter implements Generator.
func (s SepiaTone) CreateFilter(input *Image) (*Filter, error) {
	if input == nil {
		return nil, ErrNilImage
	}
	return createFilter(s.FilterName(),
		param{KeyImage, input},
		param{KeyIntensity, s.Intensity},
	)
}

// ColorInvert inverts the color channels of its input and keeps alpha.
type ColorInvert struct{}

// FilterName implements Generator.
func (ColorInvert) FilterName() string { return "ColorInvert" }

// CreateFilter implements Generator.
func (c ColorInvert) CreateFilter(input *Image) (*Filter, error) {
	if input == nil {
		return nil, ErrNilImage
	}
	return createFilter(c.FilterName(), param{KeyImage, input})
}

// ColorControls adjusts saturation, then brightness, then contrast.
// Saturation and Contrast are factors (1 is unchanged); Brightness is added
// to every channel (0 is unchanged).
type ColorControls struct {
	Saturation float64
	Brightness float64
	Contrast   float64
}

// FilterName implements Generator.
func (ColorControls) FilterName() string { return "ColorControls" }

// CreateFilter implements Generator.
func (c ColorControls) CreateFilter(input *Image) (*Filter, error) {
	if input == nil {
		return nil, ErrNilImage
	}
	return createFilter(c.FilterName(),
		param{KeyImage, input},
		param{KeySaturation, c.Saturation},
		param{KeyBrightness, c.Brightness},
		param{KeyContrast, c.Contrast},
	)
}

// matrixFromVectors builds a kernel matrix from rows in [0, 1] units.
func matrixFromVectors(r, g, b, a, bias Vector) filter.ColorMatrix {
	var m filter.ColorMatrix
	for row, v := range [4]Vector{r, g, b, a} {
		for col := 0; col < 4; col++ {
			m[row*5+col] = float32(v[col])
		}
		m[row*5+4] = float32(bias[row] * 255)
	}
	return m
}

// renderMatrix returns a Render func applying the matrix produced by mf.
func renderMatrix(mf func(f *Filter) filter.ColorMatrix) func(r *Request) error {
	return func(r *Request) error {
		src := r.Filter.ImageValue(KeyImage)
		out := filter.NewBuffer(src.Width(), src.Height())
		m := mf(r.Filter)
		m.Apply(src.buffer(), out, r.pool)
		r.crop(out)
		return nil
	}
}

func init() {
	DefaultRegistry.MustRegister(Kind{
		Name:       "ColorMatrix",
		Categories: []Category{CategoryColorAdjustment},
		Inputs: []Input{
			imageInput,
			{Key: KeyRVector, Type: TypeVector, Default: Vector{1, 0, 0, 0}, Doc: "Weights of r, g, b, a for red."},
			{Key: KeyGVector, Type: TypeVector, Default: Vector{0, 1, 0, 0}, Doc: "Weights of r, g, b, a for green."},
			{Key: KeyBVector, Type: TypeVector, Default: Vector{0, 0, 1, 0}, Doc: "Weights of r, g, b, a for blue."},
			{Key: KeyAVector, Type: TypeVector, Default: Vector{0, 0, 0, 1}, Doc: "Weights of r, g, b, a for alpha."},
			{Key: KeyBiasVector, Type: TypeVector, Default: Vector{0, 0, 0, 0}, Doc: "Added to r, g, b, a."},
		},
		Render: renderMatrix(func(f *Filter) filter.ColorMatrix {
			return matrixFromVectors(
				f.VectorValue(KeyRVector),
				f.VectorValue(KeyGVector),
				f.VectorValue(KeyBVector),
				f.VectorValue(KeyAVector),
				f.VectorValue(KeyBiasVector),
			)
		}),
	})

	DefaultRegistry.MustRegister(Kind{
		Name:       "SepiaTone",
		Categories: []Category{CategoryColorAdjustment},
		Inputs: []Input{
			imageInput,
			{Key: KeyIntensity, Type: TypeNumber, Default: 1.0, SliderMin: 0, SliderMax: 1, Doc: "0 is unchanged, 1 full sepia."},
		},
		Render: renderMatrix(func(f *Filter) filter.ColorMatrix {
			return filter.Sepia(float32(f.NumberValue(KeyIntensity)))
		}),
	})

	DefaultRegistry.MustRegister(Kind{
		Name:       "ColorInvert",
		Categories: []Category{CategoryColorAdjustment},
		Inputs:     []Input{imageInput},
		Render: renderMatrix(func(*Filter) filter.ColorMatrix {
			return filter.Invert()
		}),
	})

	DefaultRegistry.MustRegister(Kind{
		Name:       "ColorControls",
		Categories: []Category{CategoryColorAdjustment},
		Inputs: []Input{
			imageInput,
			{Key: KeySaturation, Type: TypeNumber, Default: 1.0, SliderMin: 0, SliderMax: 2, Doc: "0 is grayscale, 1 unchanged."},
			{Key: KeyBrightness, Type: TypeNumber, Default: 0.0, SliderMin: -1, SliderMax: 1, Doc: "Added to every channel."},
			{Key: KeyContrast, Type: TypeNumber, Default: 1.0, SliderMin: 0, SliderMax: 4, Doc: "0 is mid gray, 1 unchanged."},
		},
		Render: renderMatrix(func(f *Filter) filter.ColorMatrix {
			return filter.Controls(
				float32(f.NumberValue(KeySaturation)),
				float32(f.NumberValue(KeyBrightness)),
				float32(f.NumberValue(KeyContrast)),
			)
		}),
	})
}
