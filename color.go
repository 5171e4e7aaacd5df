package fx

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	icolor "github.com/gogpu/fx/internal/color"
)

// Color is a non-premultiplied sRGB color. Each component is in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.nrgba().RGBA()
}

func (c Color) nrgba() color.NRGBA {
	return color.NRGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: toByte(c.A)}
}

// f32 converts to the kernel color type.
func (c Color) f32() icolor.ColorF32 {
	return icolor.ColorF32{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}

// u8 converts to kernel bytes.
func (c Color) u8() icolor.ColorU8 {
	n := c.nrgba()
	return icolor.ColorU8{R: n.R, G: n.G, B: n.B, A: n.A}
}

// String formats c as #RRGGBBAA.
func (c Color) String() string {
	n := c.nrgba()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// FromColor converts any color.Color, un-premultiplying it.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA2(float64(n.R)/255, float64(n.G)/255, float64(n.B)/255, float64(n.A)/255)
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color { return RGBA2(r, g, b, 1) }

// RGBA2 returns a color with straight alpha a.
func RGBA2(r, g, b, a float64) Color { return Color{r, g, b, a} }

// Hex parses a "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" color; the '#'
// is optional. Anything else yields opaque black.
func Hex(hex string) Color {
	c, err := parseHexColor(hex)
	if err != nil {
		return Black
	}
	return c
}

func parseHexColor(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("fx: invalid hex color %q", s)
	}
	switch len(digits) {
	case 3:
		v = v<<4 | 0xf
		fallthrough
	case 4:
		v = widenNibbles(v)
	case 6:
		v = v<<8 | 0xff
	case 8:
	default:
		return Color{}, fmt.Errorf("fx: invalid hex color %q", s)
	}
	unit := func(shift uint) float64 { return float64(v>>shift&0xff) / 255 }
	return Color{R: unit(24), G: unit(16), B: unit(8), A: unit(0)}, nil
}

// widenNibbles turns 0xRGBA into 0xRRGGBBAA.
func widenNibbles(v uint64) uint64 {
	var out uint64
	for shift := 12; shift >= 0; shift -= 4 {
		out = out<<8 | (v>>shift&0xf)*0x11
	}
	return out
}

// ParseColor parses a color written as a name ("red"), hex ("#ff000080"),
// comma separated components in [0, 1] ("1,0,0" or "1,0,0,0.5") or
// "hsl(h,s,l)".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")") {
		v, err := parseFloats(s[4:len(s)-1], 3, 3)
		if err != nil {
			return Color{}, fmt.Errorf("fx: invalid color %q: %w", s, err)
		}
		return HSL(v[0], v[1], v[2]), nil
	}
	if strings.Contains(s, ",") {
		v, err := parseFloats(s, 3, 4)
		if err != nil {
			return Color{}, fmt.Errorf("fx: invalid color %q: %w", s, err)
		}
		c := RGB(v[0], v[1], v[2])
		if len(v) == 4 {
			c.A = v[3]
		}
		return c, nil
	}
	return parseHexColor(s)
}

// parseFloats parses between lo and hi comma separated numbers.
func parseFloats(s string, lo, hi int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) < lo || len(parts) > hi {
		return nil, fmt.Errorf("want %d to %d components, got %d", lo, hi, len(parts))
	}
	v := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

// Lerp blends c towards other by t, component by component.
func (c Color) Lerp(other Color, t float64) Color {
	mix := func(a, b float64) float64 { return a + t*(b-a) }
	return Color{R: mix(c.R, other.R), G: mix(c.G, other.G), B: mix(c.B, other.B), A: mix(c.A, other.A)}
}

// toByte maps a unit component to a byte, rounding to nearest.
func toByte(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)

var namedColors = map[string]Color{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"transparent": Transparent,
}

// HSL converts hue h in degrees, saturation s and lightness l (both in
// [0, 1]) to an opaque color.
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	a := s * math.Min(l, 1-l)
	channel := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		return l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
	}
	return RGB(channel(0), channel(8), channel(4))
}
