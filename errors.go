package fx

import (
	"errors"

	"github.com/gogpu/fx/internal/filter"
)

// Registry and filter errors.
var (
	// ErrUnknownFilter is returned when a filter name is not registered.
	ErrUnknownFilter = errors.New("fx: unknown filter")

	// ErrDuplicateFilter is returned when registering a name twice.
	ErrDuplicateFilter = errors.New("fx: filter already registered")

	// ErrInvalidKind is returned when registering a malformed Kind.
	ErrInvalidKind = errors.New("fx: invalid filter kind")

	// ErrUnknownInput is returned when setting a key the filter does not expose.
	ErrUnknownInput = errors.New("fx: unknown input")

	// ErrInputType is returned when a value does not match the input's type.
	ErrInputType = errors.New("fx: wrong input type")

	// ErrMissingInput is returned when rendering without a required image.
	ErrMissingInput = errors.New("fx: missing input")

	// ErrNilImage is returned by image-consuming generators given a nil image.
	ErrNilImage = errors.New("fx: nil input image")

	// ErrInfiniteExtent is returned when asking for the output image of a
	// filter that covers the whole plane.
	ErrInfiniteExtent = errors.New("fx: infinite extent")

	// ErrEmptyBounds is returned when rendering an empty region.
	ErrEmptyBounds = errors.New("fx: empty bounds")

	// ErrUnknownFont is returned when inputFontName names no known font.
	ErrUnknownFont = filter.ErrUnknownFont
)
