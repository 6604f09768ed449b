// Package describe defines options and sentinel errors for the display-text
// registry.
package describe

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned when a value is registered twice; the first
// registration wins and the registry is left unchanged.
var ErrDuplicate = errors.New("describe: value already registered")

// Fallback renders display text for values absent from the registry.
type Fallback[K comparable] func(k K) string

// Option configures a Registry at construction time.
type Option[K comparable] func(*Registry[K])

// WithFallback sets the formatter used by Describe for unregistered values.
// A nil fn is ignored and the default (fmt.Sprint) stays in effect.
func WithFallback[K comparable](fn Fallback[K]) Option[K] {
	return func(r *Registry[K]) {
		if fn != nil {
			r.fallback = fn
		}
	}
}

// defaultFallback renders an unregistered value with fmt.Sprint, so named
// constant types fall back to their numeric (or Stringer) form.
func defaultFallback[K comparable](k K) string {
	return fmt.Sprint(k)
}
