// Package grid - Grid storage (row-major) & safe accessors.
package grid

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for Grid construction and access.
var (
	// ErrNegativeDims indicates a constructor received a negative dimension.
	// Zero is a valid dimension; only negatives are rejected.
	ErrNegativeDims = errors.New("grid: dimensions must be non-negative")

	// ErrOutOfRange indicates an At/Set coordinate outside rows×cols.
	ErrOutOfRange = errors.New("grid: cell index out of range")
)

// gridErrorf attaches the method name and coordinates to a sentinel error.
func gridErrorf(method string, r, c int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, r, c, err)
}

// Grid is a rectangular rows×cols matrix backed by a flat row-major buffer
// (offset = r*cols + c). Logically absent cells hold T's zero value. Zero
// dimensions are valid shapes. A Grid is not safe for concurrent mutation;
// callers sharing one instance across goroutines must serialize access.
type Grid[T any] struct {
	rows, cols int
	data       []T // len == rows*cols, row-major
}

// New creates a rows×cols Grid with every cell set to T's zero value.
// Returns ErrNegativeDims if either dimension is negative; zero dimensions
// produce a valid, empty-shaped grid.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrNegativeDims
	}

	return &Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Rows reports the number of rows. A nil receiver reports 0.
func (g *Grid[T]) Rows() int {
	if g == nil {
		return 0
	}

	return g.rows
}

// Cols reports the number of columns. A nil receiver reports 0.
func (g *Grid[T]) Cols() int {
	if g == nil {
		return 0
	}

	return g.cols
}

// At returns the value at (r, c), or ErrOutOfRange for coordinates outside
// the grid (including any access on a nil receiver).
func (g *Grid[T]) At(r, c int) (T, error) {
	var zero T
	if g == nil || r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return zero, gridErrorf("At", r, c, ErrOutOfRange)
	}

	return g.data[r*g.cols+c], nil
}

// Set stores v at (r, c), or returns ErrOutOfRange for coordinates outside
// the grid (including any access on a nil receiver).
func (g *Grid[T]) Set(r, c int, v T) error {
	if g == nil || r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return gridErrorf("Set", r, c, ErrOutOfRange)
	}
	g.data[r*g.cols+c] = v

	return nil
}

// Clone returns an independent deep copy of g; mutations of either side
// never reach the other. Clone of nil is nil.
func (g *Grid[T]) Clone() *Grid[T] {
	if g == nil {
		return nil
	}

	return &Grid[T]{rows: g.rows, cols: g.cols, data: slices.Clone(g.data)}
}

// Equal reports whether a and b have the same shape and cell-for-cell equal
// contents. Two nils are equal; nil never equals a non-nil grid, even an
// empty-shaped one.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.rows == b.rows && a.cols == b.cols && slices.Equal(a.data, b.data)
}
