package fx

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// hasStorageType reports whether v is stored exactly as t's Go type.
func hasStorageType(t InputType, v any) bool {
	switch t {
	case TypeNumber:
		_, ok := v.(float64)
		return ok
	case TypeColor:
		_, ok := v.(Color)
		return ok
	case TypePoint:
		_, ok := v.(Point)
		return ok
	case TypeVector:
		_, ok := v.(Vector)
		return ok
	case TypeImage:
		img, ok := v.(*Image)
		return ok && img != nil
	case TypeString:
		_, ok := v.(string)
		return ok
	}
	return false
}

// coerce converts v to the storage type of t. Numbers of any Go numeric type,
// standard colors, image.Point, [4]float64 and image.Image are accepted.
func coerce(t InputType, v any) (any, bool) {
	switch t {
	case TypeNumber:
		return toFloat(v)
	case TypeColor:
		switch c := v.(type) {
		case Color:
			return c, true
		case color.Color:
			if c == nil {
				return nil, false
			}
			return FromColor(c), true
		}
	case TypePoint:
		switch p := v.(type) {
		case Point:
			return p, true
		case image.Point:
			return Pt(float64(p.X), float64(p.Y)), true
		}
	case TypeVector:
		switch vec := v.(type) {
		case Vector:
			return vec, true
		case [4]float64:
			return Vector(vec), true
		}
	case TypeImage:
		switch img := v.(type) {
		case *Image:
			if img == nil {
				return nil, false
			}
			return img, true
		case image.Image:
			if img == nil {
				return nil, false
			}
			return FromImage(img), true
		}
	case TypeString:
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return nil, false
}

func toFloat(v any) (any, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return nil, false
}

// parseValue parses the textual form of a value of type t. Image values are
// file paths.
func parseValue(t InputType, s string) (any, error) {
	switch t {
	case TypeNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("fx: invalid number %q", s)
		}
		return f, nil
	case TypeColor:
		return ParseColor(s)
	case TypePoint:
		return ParsePoint(s)
	case TypeVector:
		return ParseVector(s)
	case TypeImage:
		return LoadImage(s)
	case TypeString:
		return s, nil
	}
	return nil, fmt.Errorf("fx: cannot parse %v", t)
}

// FormatValue formats a stored value the way SetValueString parses it.
func FormatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case Point:
		return strconv.FormatFloat(float64(x.X), 'g', -1, 32) + "," + strconv.FormatFloat(float64(x.Y), 'g', -1, 32)
	case *Image:
		return fmt.Sprintf("image %dx%d", x.Width(), x.Height())
	case nil:
		return "none"
	default:
		return fmt.Sprint(x)
	}
}
