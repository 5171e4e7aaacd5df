package fx

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/fx/internal/filter"
	"github.com/gogpu/fx/internal/parallel"
)

// Kind is a registered filter type: its name, its inputs and how it renders.
type Kind struct {
	Name       string
	Categories []Category
	Inputs     []Input

	// Extent returns the region the filter's output covers, or an error
	// wrapping ErrInfiniteExtent. It is only called with every image input
	// set. If nil, a kind with an image input covers the first such image
	// and any other kind is infinite.
	Extent func(f *Filter) (image.Rectangle, error)

	// Render fills r.Dst. It is only called with non-empty bounds and with
	// every image input set.
	Render func(r *Request) error
}

// Request is one render of a filter.
type Request struct {
	Filter *Filter

	// Dst receives the output. Dst pixel (0, 0) is Bounds.Min in filter
	// space.
	Dst    *Image
	Bounds image.Rectangle

	pool *parallel.WorkerPool
}

// crop copies the part of full, whose pixel (0, 0) is the filter space
// origin, that falls inside the request bounds.
func (r *Request) crop(full *filter.Buffer) {
	src := image.Rect(0, 0, full.Width, full.Height)
	overlap := src.Intersect(r.Bounds)
	if overlap.Empty() {
		return
	}
	dst := r.Dst.buffer()
	n := overlap.Dx() * 4
	for y := overlap.Min.Y; y < overlap.Max.Y; y++ {
		si := (y*full.Width + overlap.Min.X) * 4
		di := ((y-r.Bounds.Min.Y)*dst.Width + overlap.Min.X - r.Bounds.Min.X) * 4
		copy(dst.Pix[di:di+n], full.Pix[si:si+n])
	}
}

// input returns the input with the given key.
func (k *Kind) input(key string) (*Input, bool) {
	for i := range k.Inputs {
		if k.Inputs[i].Key == key {
			return &k.Inputs[i], true
		}
	}
	return nil, false
}

// imageInputs returns the keys of image inputs.
func (k *Kind) imageInputs() []string {
	var keys []string
	for _, in := range k.Inputs {
		if in.Type == TypeImage {
			keys = append(keys, in.Key)
		}
	}
	return keys
}

// HasCategory reports whether the kind belongs to c.
func (k *Kind) HasCategory(c Category) bool {
	return slices.Contains(k.Categories, c)
}

// validate checks that the kind can be registered.
func (k *Kind) validate() error {
	if k.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidKind)
	}
	if k.Render == nil {
		return fmt.Errorf("%w: %s: nil Render", ErrInvalidKind, k.Name)
	}
	seen := make(map[string]bool, len(k.Inputs))
	for _, in := range k.Inputs {
		if in.Key == "" {
			return fmt.Errorf("%w: %s: input with empty key", ErrInvalidKind, k.Name)
		}
		if seen[in.Key] {
			return fmt.Errorf("%w: %s: duplicate input %q", ErrInvalidKind, k.Name, in.Key)
		}
		seen[in.Key] = true

		if int(in.Type) >= len(inputTypeNames) {
			return fmt.Errorf("%w: %s: input %q has unknown type %v", ErrInvalidKind, k.Name, in.Key, in.Type)
		}
		if in.Type == TypeImage {
			if in.Default != nil {
				return fmt.Errorf("%w: %s: image input %q has a default", ErrInvalidKind, k.Name, in.Key)
			}
			continue
		}
		if in.Default == nil {
			return fmt.Errorf("%w: %s: input %q has no default", ErrInvalidKind, k.Name, in.Key)
		}
		if !hasStorageType(in.Type, in.Default) {
			return fmt.Errorf("%w: %s: default of %q is %T, want %v", ErrInvalidKind, k.Name, in.Key, in.Default, in.Type)
		}
	}
	return nil
}
