package fx

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/fx/internal/cache"
	"github.com/gogpu/fx/internal/filter"
)

// TextImage renders text with one of the built-in Go fonts. Lines are
// separated by '\n'; mixed left-to-right and right-to-left text is laid
// out in visual order.
//
// The output's extent is the laid out text plus Padding on every side.
// Zero FontName, FontSize and ScaleFactor keep the kind's defaults
// ("Go-Regular", 12 and 1).
type TextImage struct {
	Text        string
	FontName    string
	FontSize    float64
	ScaleFactor float64
	Padding     float64
	Color       Color
}

// FilterName implements Generator.
func (TextImage) FilterName() string { return "TextImageGenerator" }

// CreateFilter implements Generator. input is ignored.
func (t TextImage) CreateFilter(_ *Image) (*Filter, error) {
	params := []param{
		{KeyText, t.Text},
		{KeyPadding, t.Padding},
		{KeyColor, t.Color},
	}
	if t.FontName != "" {
		params = append(params, param{KeyFontName, t.FontName})
	}
	if t.FontSize != 0 {
		params = append(params, param{KeyFontSize, t.FontSize})
	}
	if t.ScaleFactor != 0 {
		params = append(params, param{KeyScaleFactor, t.ScaleFactor})
	}
	return createFilter(t.FilterName(), params...)
}

// FontNames returns the names accepted by inputFontName.
func FontNames() []string {
	return filter.FontNames()
}

type layoutKey struct {
	text, font    string
	size, padding float64
}

// layouts holds recent text layouts; Extent and Render of one filter lay
// out the same text.
var layouts = cache.New[layoutKey, *filter.TextLayout](64)

func layoutText(f *Filter) (*filter.TextLayout, error) {
	key := layoutKey{
		text:    f.StringValue(KeyText),
		font:    f.StringValue(KeyFontName),
		size:    f.NumberValue(KeyFontSize) * f.NumberValue(KeyScaleFactor),
		padding: f.NumberValue(KeyPadding),
	}
	if l, ok := layouts.Get(key); ok {
		return l, nil
	}
	font, err := filter.LoadFont(key.font)
	if err != nil {
		return nil, err
	}
	l, err := filter.Text{
		Text:    key.text,
		Font:    font,
		Size:    key.size,
		Padding: key.padding,
	}.Layout()
	if err != nil {
		return nil, err
	}
	layouts.Put(key, l)
	return l, nil
}

func init() {
	DefaultRegistry.MustRegister(Kind{
		Name:       "TextImageGenerator",
		Categories: []Category{CategoryGenerator, CategoryText},
		Inputs: []Input{
			{Key: KeyText, Type: TypeString, Default: "", Doc: "The text to render."},
			{Key: KeyFontName, Type: TypeString, Default: "Go-Regular",
				Doc: fmt.Sprintf("One of %s.", strings.Join(filter.FontNames(), ", "))},
			{Key: KeyFontSize, Type: TypeNumber, Default: 12.0, SliderMin: 1, SliderMax: 200, Doc: "Em size in points."},
			{Key: KeyScaleFactor, Type: TypeNumber, Default: 1.0, SliderMin: 0, SliderMax: 8, Doc: "Pixels per point."},
			{Key: KeyPadding, Type: TypeNumber, Default: 0.0, SliderMin: 0, SliderMax: 200, Doc: "Empty pixels around the text."},
			{Key: KeyColor, Type: TypeColor, Default: Black, Doc: "Text color."},
		},
		Extent: func(f *Filter) (image.Rectangle, error) {
			l, err := layoutText(f)
			if err != nil {
				return image.Rectangle{}, err
			}
			return image.Rectangle{Max: l.Size()}, nil
		},
		Render: func(r *Request) error {
			l, err := layoutText(r.Filter)
			if err != nil {
				return err
			}
			return l.Draw(r.Dst.buffer(), r.Bounds.Min, r.Filter.ColorValue(KeyColor).u8())
		},
	})
}
