package fx

import (
	"fmt"
)

// Generator describes a filter to the backend: the name of the filter kind
// it instantiates and how to configure it.
//
// FilterName is a constant of the implementation. CreateFilter returns a new
// filter on every call, created from DefaultRegistry with the kind's
// defaults applied and then overridden by the generator's own parameters.
// The generator keeps no reference to the filter. If the name is not
// registered, CreateFilter returns an error wrapping ErrUnknownFilter and no
// filter.
//
// Pure generators ignore input. Generators that consume an image return
// ErrNilImage when input is nil.
type Generator interface {
	FilterName() string
	CreateFilter(input *Image) (*Filter, error)
}

// param is one keyed value a generator sets.
type param struct {
	key   string
	value any
}

// createFilter instantiates name from DefaultRegistry, applies defaults and
// then params.
func createFilter(name string, params ...param) (*Filter, error) {
	f, err := DefaultRegistry.NewFilter(name)
	if err != nil {
		return nil, err
	}
	f.SetDefaults()
	for _, p := range params {
		if err := f.SetValue(p.key, p.value); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Generate creates g's filter for input and renders it. The rendered region
// is the filter's extent when it is finite, else the bounds of input.
func Generate(g Generator, input *Image, opts ...RenderOption) (*Image, error) {
	f, err := g.CreateFilter(input)
	if err != nil {
		return nil, err
	}
	bounds, err := f.Extent()
	switch {
	case err == nil:
	case isInfinite(err) && input != nil:
		bounds = input.Bounds()
	case isInfinite(err):
		return nil, fmt.Errorf("fx: generate %s without an input image: %w", g.FilterName(), err)
	default:
		return nil, err
	}
	return f.Render(bounds, opts...)
}
