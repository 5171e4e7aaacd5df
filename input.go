package fx

import (
	"fmt"
	"strings"
)

// InputType is the type of a filter input.
type InputType uint8

// Input types and the Go type their values are stored as.
const (
	TypeNumber InputType = iota // float64
	TypeColor                   // Color
	TypePoint                   // Point
	TypeVector                  // Vector
	TypeImage                   // *Image
	TypeString                  // string
)

var inputTypeNames = [...]string{"Number", "Color", "Point", "Vector", "Image", "String"}

// String returns the type name.
func (t InputType) String() string {
	if int(t) < len(inputTypeNames) {
		return inputTypeNames[t]
	}
	return fmt.Sprintf("InputType(%d)", t)
}

// Input describes one keyed input of a filter kind.
type Input struct {
	// Key is the name values are set under, e.g. "inputColor0".
	Key  string
	Type InputType

	// Default is the value SetDefaults applies. It must be nil for image
	// inputs and of the type's Go type otherwise.
	Default any

	// SliderMin and SliderMax suggest a range for numeric inputs. They are
	// not enforced.
	SliderMin, SliderMax float64

	Doc string
}

// Category groups filter kinds.
type Category uint8

// Filter categories.
const (
	CategoryGenerator Category = iota
	CategoryGradient
	CategoryBlur
	CategoryColorAdjustment
	CategoryGeometry
	CategoryText
)

var categoryNames = [...]string{"Generator", "Gradient", "Blur", "ColorAdjustment", "Geometry", "Text"}

// String returns the category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// ParseCategory parses a category name, ignoring case.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("fx: unknown category %q", s)
}
