package fx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soypat/geometry/ms2"
)

// Point is a position in image space. The origin is the top-left corner
// and y grows downwards. Coordinates are float32, unlike the float64 used
// by every other parameter: values converted from float64 lose precision
// past about seven significant digits.
type Point = ms2.Vec

// Pt returns the Point (x, y), rounding both coordinates to float32.
func Pt(x, y float64) Point {
	return Point{X: float32(x), Y: float32(y)}
}

// ParsePoint parses "x,y".
func ParsePoint(s string) (Point, error) {
	v, err := parseFloats(s, 2, 2)
	if err != nil {
		return Point{}, fmt.Errorf("fx: invalid point %q: %w", s, err)
	}
	return Pt(v[0], v[1]), nil
}

// Vector is a four component vector, used for color matrix rows.
type Vector [4]float64

// ParseVector parses one to four comma separated components; missing
// components are zero.
func ParseVector(s string) (Vector, error) {
	v, err := parseFloats(s, 1, 4)
	if err != nil {
		return Vector{}, fmt.Errorf("fx: invalid vector %q: %w", s, err)
	}
	var out Vector
	copy(out[:], v)
	return out, nil
}

// String formats v as comma separated components.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
