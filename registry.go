package fx

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps filter names to kinds. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]*Kind
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*Kind)}
}

// DefaultRegistry holds the built-in filter kinds. Generators create their
// filters from it.
var DefaultRegistry = NewRegistry()

// Register adds k. It fails with ErrInvalidKind for a malformed kind and
// with ErrDuplicateFilter if the name is taken.
func (r *Registry) Register(k Kind) error {
	if err := k.validate(); err != nil {
		return err
	}
	k.Categories = slices.Clone(k.Categories)
	k.Inputs = slices.Clone(k.Inputs)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.kinds[k.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFilter, k.Name)
	}
	r.kinds[k.Name] = &k

	Logger().Debug("fx: registered filter", "filter", k.Name, "inputs", len(k.Inputs))
	return nil
}

// MustRegister is like Register but panics on error. It is intended for
// package initialization.
func (r *Registry) MustRegister(k Kind) {
	if err := r.Register(k); err != nil {
		panic(err)
	}
}

// Lookup returns the kind registered under name. The returned kind must not
// be modified.
func (r *Registry) Lookup(name string) (*Kind, error) {
	r.mu.RLock()
	k, ok := r.kinds[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
	return k, nil
}

// NewFilter creates an unconfigured filter of the named kind. No values
// are set; call SetDefaults to apply the kind's defaults.
func (r *Registry) NewFilter(name string) (*Filter, error) {
	k, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &Filter{kind: k, values: make(map[string]any, len(k.Inputs))}, nil
}

// Names returns the sorted names of kinds belonging to every given category.
func (r *Registry) Names(categories ...Category) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.kinds))
	for name, k := range r.kinds {
		if hasAll(k, categories) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func hasAll(k *Kind, categories []Category) bool {
	for _, c := range categories {
		if !k.HasCategory(c) {
			return false
		}
	}
	return true
}

// Register adds k to DefaultRegistry.
func Register(k Kind) error {
	return DefaultRegistry.Register(k)
}

// NewFilter creates an unconfigured filter from DefaultRegistry.
func NewFilter(name string) (*Filter, error) {
	return DefaultRegistry.NewFilter(name)
}

// FilterNames lists DefaultRegistry names in the given categories.
func FilterNames(categories ...Category) []string {
	return DefaultRegistry.Names(categories...)
}
