package describe

import "slices"

// Registry maps values of one comparable type to display text. Build it
// once with New + Register, then read it freely; reads take no locks and
// never mutate. The zero Registry is not usable — always construct via New.
type Registry[K comparable] struct {
	text     map[K]string
	order    []K // registration order, drives Keys()
	fallback Fallback[K]
}

// New creates an empty Registry, applying any construction options.
func New[K comparable](opts ...Option[K]) *Registry[K] {
	r := &Registry[K]{
		text:     make(map[K]string),
		fallback: defaultFallback[K],
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register binds display text to k. Registering the same value twice
// returns ErrDuplicate and keeps the original text.
func (r *Registry[K]) Register(k K, text string) error {
	if _, exists := r.text[k]; exists {
		return ErrDuplicate
	}
	r.text[k] = text
	r.order = append(r.order, k)

	return nil
}

// Lookup returns the registered text for k, two-case: (text, true) when
// registered, ("", false) otherwise — no fallback applied.
func (r *Registry[K]) Lookup(k K) (string, bool) {
	text, ok := r.text[k]

	return text, ok
}

// Describe returns the registered text for k, or the fallback formatter's
// rendering when k was never registered. Never fails.
func (r *Registry[K]) Describe(k K) string {
	if text, ok := r.text[k]; ok {
		return text
	}

	return r.fallback(k)
}

// Keys returns the registered values in registration order. The slice is a
// copy; callers may reorder or mutate it freely.
func (r *Registry[K]) Keys() []K {
	return slices.Clone(r.order)
}

// Len reports how many values are registered.
func (r *Registry[K]) Len() int {
	return len(r.order)
}
