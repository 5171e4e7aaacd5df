package fx

import (
	"errors"
	"fmt"
	"image"
	"maps"
	"time"

	"github.com/gogpu/fx/internal/parallel"
)

// Filter is a configured instance of a filter kind: a set of keyed input
// values and the means to render them.
//
// A Filter is not safe for concurrent mutation. Rendering does not modify
// the filter.
type Filter struct {
	kind   *Kind
	values map[string]any
}

// Name returns the name of the filter's kind.
func (f *Filter) Name() string {
	return f.kind.Name
}

// Kind returns the filter's kind. It must not be modified.
func (f *Filter) Kind() *Kind {
	return f.kind
}

// InputKeys returns the keys of the kind's inputs in declaration order.
func (f *Filter) InputKeys() []string {
	keys := make([]string, len(f.kind.Inputs))
	for i, in := range f.kind.Inputs {
		keys[i] = in.Key
	}
	return keys
}

// SetDefaults sets every input that has a default to that default. Image
// inputs are left untouched.
func (f *Filter) SetDefaults() {
	for _, in := range f.kind.Inputs {
		if in.Default != nil {
			f.values[in.Key] = in.Default
		}
	}
}

// SetValue sets the input key. It fails with ErrUnknownInput if the kind has
// no such input and with ErrInputType if v cannot be stored as the input's
// type.
func (f *Filter) SetValue(key string, v any) error {
	in, ok := f.kind.input(key)
	if !ok {
		return fmt.Errorf("%w: %s has no input %q", ErrUnknownInput, f.kind.Name, key)
	}
	stored, ok := coerce(in.Type, v)
	if !ok {
		return fmt.Errorf("%w: %s.%s wants %v, got %T", ErrInputType, f.kind.Name, key, in.Type, v)
	}
	f.values[key] = stored
	return nil
}

// SetValueString parses s according to the input's type and sets it.
// Numbers use strconv syntax, colors anything ParseColor accepts, points
// "x,y", vectors up to four comma separated numbers and images a file path.
func (f *Filter) SetValueString(key, s string) error {
	in, ok := f.kind.input(key)
	if !ok {
		return fmt.Errorf("%w: %s has no input %q", ErrUnknownInput, f.kind.Name, key)
	}
	v, err := parseValue(in.Type, s)
	if err != nil {
		return fmt.Errorf("%w: %s.%s: %w", ErrInputType, f.kind.Name, key, err)
	}
	f.values[key] = v
	return nil
}

// Value returns the value set for key, if any. Defaults count only after
// SetDefaults.
func (f *Filter) Value(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Values returns a copy of all set values.
func (f *Filter) Values() map[string]any {
	return maps.Clone(f.values)
}

// value returns the set value or the input's default.
func (f *Filter) value(key string) any {
	if v, ok := f.values[key]; ok {
		return v
	}
	if in, ok := f.kind.input(key); ok {
		return in.Default
	}
	return nil
}

// NumberValue returns the number set for key, else its default, else 0.
func (f *Filter) NumberValue(key string) float64 {
	v, _ := f.value(key).(float64)
	return v
}

// ColorValue returns the color set for key, else its default, else
// transparent.
func (f *Filter) ColorValue(key string) Color {
	v, _ := f.value(key).(Color)
	return v
}

// PointValue returns the point set for key, else its default.
func (f *Filter) PointValue(key string) Point {
	v, _ := f.value(key).(Point)
	return v
}

// VectorValue returns the vector set for key, else its default.
func (f *Filter) VectorValue(key string) Vector {
	v, _ := f.value(key).(Vector)
	return v
}

// StringValue returns the string set for key, else its default.
func (f *Filter) StringValue(key string) string {
	v, _ := f.value(key).(string)
	return v
}

// ImageValue returns the image set for key, or nil.
func (f *Filter) ImageValue(key string) *Image {
	v, _ := f.value(key).(*Image)
	return v
}

// Extent returns the region the filter's output covers. Filters that cover
// the whole plane return an error wrapping ErrInfiniteExtent.
// A filter with an unset image input fails with ErrMissingInput.
func (f *Filter) Extent() (image.Rectangle, error) {
	inputs := f.kind.imageInputs()
	for _, key := range inputs {
		if f.ImageValue(key) == nil {
			return image.Rectangle{}, fmt.Errorf("%w: %s.%s", ErrMissingInput, f.kind.Name, key)
		}
	}
	if f.kind.Extent != nil {
		return f.kind.Extent(f)
	}
	if len(inputs) > 0 {
		return f.ImageValue(inputs[0]).Bounds(), nil
	}
	return image.Rectangle{}, fmt.Errorf("%w: %s", ErrInfiniteExtent, f.kind.Name)
}

// Render renders the part of the filter's output inside bounds. The result
// has bounds.Dx() x bounds.Dy() pixels; its pixel (0, 0) is bounds.Min.
// Regions outside the filter's extent are transparent.
func (f *Filter) Render(bounds image.Rectangle, opts ...RenderOption) (*Image, error) {
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrEmptyBounds, bounds)
	}
	for _, key := range f.kind.imageInputs() {
		if f.ImageValue(key) == nil {
			return nil, fmt.Errorf("%w: %s.%s", ErrMissingInput, f.kind.Name, key)
		}
	}

	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	start := time.Now()
	req := &Request{
		Filter: f,
		Dst:    NewImage(bounds.Dx(), bounds.Dy()),
		Bounds: bounds,
		pool:   pool,
	}
	if err := f.kind.Render(req); err != nil {
		return nil, fmt.Errorf("fx: render %s: %w", f.kind.Name, err)
	}

	Logger().Debug("fx: render",
		"filter", f.kind.Name,
		"bounds", bounds,
		"workers", o.workers,
		"elapsed", time.Since(start))
	return req.Dst, nil
}

// OutputImage renders the filter's whole extent.
func (f *Filter) OutputImage(opts ...RenderOption) (*Image, error) {
	extent, err := f.Extent()
	if err != nil {
		return nil, err
	}
	if extent.Empty() {
		return nil, fmt.Errorf("%w: %s has an empty extent", ErrEmptyBounds, f.kind.Name)
	}
	return f.Render(extent, opts...)
}

// isInfinite reports whether err marks an infinite extent.
func isInfinite(err error) bool {
	return errors.Is(err, ErrInfiniteExtent)
}
