package fx

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/internal/imageio"
)

// Image is a rectangular, non-premultiplied RGBA8 pixel buffer whose bounds
// start at the origin. It is the input and output type of every filter.
type Image struct {
	width, height int
	data          []uint8 // R, G, B, A per pixel, rows top to bottom
}

// NewImage returns a transparent width x height image. Negative sizes
// count as zero.
func NewImage(width, height int) *Image {
	w, h := max(width, 0), max(height, 0)
	return &Image{width: w, height: h, data: make([]uint8, 4*w*h)}
}

// buffer returns a kernel view sharing the image's pixels.
func (p *Image) buffer() *filter.Buffer {
	return &filter.Buffer{Width: p.width, Height: p.height, Pix: p.data}
}

// Width returns the number of columns.
func (p *Image) Width() int { return p.width }

// Height returns the number of rows.
func (p *Image) Height() int { return p.height }

// Data returns the pixel bytes, four per pixel in row-major order. The
// slice aliases the image.
func (p *Image) Data() []uint8 { return p.data }

// pixel returns the four bytes of (x, y), or nil outside the image.
func (p *Image) pixel(x, y int) []uint8 {
	if !(image.Point{x, y}).In(p.Bounds()) {
		return nil
	}
	i := 4 * (y*p.width + x)
	return p.data[i : i+4 : i+4]
}

// SetPixel stores c at (x, y). Writes outside the image are dropped.
func (p *Image) SetPixel(x, y int, c Color) {
	if px := p.pixel(x, y); px != nil {
		n := c.nrgba()
		px[0], px[1], px[2], px[3] = n.R, n.G, n.B, n.A
	}
}

// GetPixel returns the color at (x, y), or Transparent outside the image.
func (p *Image) GetPixel(x, y int) Color {
	return FromColor(p.At(x, y))
}

// Fill sets every pixel to c.
func (p *Image) Fill(c Color) {
	n := c.nrgba()
	quad := [4]uint8{n.R, n.G, n.B, n.A}
	for px := p.data; len(px) >= 4; px = px[4:] {
		copy(px, quad[:])
	}
}

// Clone returns a deep copy of the image.
func (p *Image) Clone() *Image {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Image{width: p.width, height: p.height, data: data}
}

// ToNRGBA returns an image.NRGBA that shares the image's pixels.
func (p *Image) ToNRGBA() *image.NRGBA {
	return p.buffer().NRGBA()
}

// FromImage copies any image.Image into a new Image.
func FromImage(img image.Image) *Image {
	if p, ok := img.(*Image); ok {
		return p.Clone()
	}
	n := imageio.ToNRGBA(img)
	b := img.Bounds()
	out := NewImage(b.Dx(), b.Dy())
	for y := 0; y < out.height; y++ {
		copy(out.data[y*out.width*4:(y+1)*out.width*4], n.Pix[y*n.Stride:])
	}
	return out
}

// LoadImage decodes an image file. PNG, JPEG, GIF, BMP, TIFF and WebP are
// recognized by content.
func LoadImage(path string) (*Image, error) {
	n, _, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(n), nil
}

// SavePNG saves the image to a PNG file.
func (p *Image) SavePNG(path string) error {
	return imageio.Save(path, p.ToNRGBA(), imageio.PNG, nil)
}

// Encode writes the image to w in the named format ("png", "jpeg", "gif",
// "bmp" or "tiff").
func (p *Image) Encode(w io.Writer, format string) error {
	f, err := imageio.ParseFormat(format)
	if err != nil {
		return err
	}
	return imageio.Encode(w, p.ToNRGBA(), f, nil)
}

// At returns the color.NRGBA at (x, y), zero outside the image.
func (p *Image) At(x, y int) color.Color {
	px := p.pixel(x, y)
	if px == nil {
		return color.NRGBA{}
	}
	return color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
}

// Bounds returns (0,0)-(Width,Height).
func (p *Image) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// ColorModel returns color.NRGBAModel.
func (p *Image) ColorModel() color.Model { return color.NRGBAModel }
