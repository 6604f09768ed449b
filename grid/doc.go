// Package grid converts two-dimensional data between a rectangular layout
// (every row the same length, flat row-major storage) and a jagged layout
// (a slice of independently-sized rows), and transposes both.
//
// 🚀 What is grid?
//
//	Layout and geometry code constantly flips between two shapes of the
//	same data: a fixed rows×cols block that is cheap to index, and a
//	per-row-variable [][]T that is cheap to build incrementally. grid owns
//	the conversions between them so the padding and shape rules live in
//	exactly one place.
//
// ✨ Key features:
//   - Grid[T] — generic rectangular matrix over a flat row-major buffer
//     (offset = r*cols + c), with error-returning At/Set — no panics
//   - ToRows / FromRows — rectangular ↔ jagged conversion; jagged input is
//     padded with T's zero value up to the widest row
//   - Transpose — rows/columns swap, an involution on rectangular input
//   - TransposeRows — jagged transpose, defined as the composition
//     FromRows → Transpose → ToRows, so the output is always rectangular
//     in shape even when the input was ragged
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlkit/grid"
//
//	g := grid.FromRows([][]int{{1, 2}, {3}})   // 2×2, gap filled with 0
//	t := grid.Transpose(g)                     // 2×2, t(r,c) = g(c,r)
//	rows := grid.ToRows(t)                     // [[1 3] [2 0]]
//
// Shape rules (total, never an error):
//   - nil input to any conversion yields nil output — "no data" propagates
//   - zero rows or zero columns are valid shapes: ToRows of a rows×0 grid
//     yields rows empty-but-present row slices, never omitted rows
//   - FromRows treats a nil row exactly like an empty row
//
// All four conversions are pure: inputs are never mutated, outputs share no
// memory with inputs.
//
// Performance: every conversion is a single O(rows·cols) pass over the
// rectangular shape of the result; Grid accessors are O(1).
package grid
