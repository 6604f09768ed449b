// Package grid - layout conversions between rectangular and jagged shapes.
//
// All four conversions are total over their input domain: nil propagates to
// nil, zero-dimension shapes convert to empty-but-present sequences, and no
// conversion ever mutates its input or returns an error.
package grid

// ToRows converts a rectangular grid to a jagged [][]T.
//
// The result has exactly g.Rows() rows, each of length exactly g.Cols();
// when cols is zero every row is an empty, present slice — rows are never
// omitted. ToRows(nil) is nil. The rows share no memory with g.
//
// Complexity: O(rows·cols) time and space.
func ToRows[T any](g *Grid[T]) [][]T {
	if g == nil {
		return nil
	}

	out := make([][]T, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]T, g.cols)
		copy(row, g.data[r*g.cols:(r+1)*g.cols])
		out[r] = row
	}

	return out
}

// FromRows converts a jagged [][]T to a rectangular grid.
//
// The result has len(rows) rows and max-row-length columns (0 when there
// are no rows). Cells beyond the end of a short source row — and every cell
// of a nil row — hold T's zero value: the grid always pads to the widest
// row. This is deliberately asymmetric with ToRows, whose output rows are
// always equal-length. FromRows(nil) is nil. The grid shares no memory with
// the input.
//
// Complexity: O(rows·maxLen) time and space.
func FromRows[T any](rows [][]T) *Grid[T] {
	if rows == nil {
		return nil
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	g := &Grid[T]{rows: len(rows), cols: cols, data: make([]T, len(rows)*cols)}
	for r, row := range rows {
		copy(g.data[r*cols:], row) // tail past len(row) keeps the zero value
	}

	return g
}

// Transpose returns a new cols×rows grid with out(r, c) = g(c, r).
//
// Transpose is an involution: Transpose(Transpose(g)) equals g. The input
// is never mutated. Transpose(nil) is nil.
//
// Complexity: O(rows·cols) time and space.
func Transpose[T any](g *Grid[T]) *Grid[T] {
	if g == nil {
		return nil
	}

	out := &Grid[T]{rows: g.cols, cols: g.rows, data: make([]T, len(g.data))}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out.data[c*out.cols+r] = g.data[r*g.cols+c]
		}
	}

	return out
}

// TransposeRows transposes a jagged [][]T.
//
// The contract is exactly the composition ToRows(Transpose(FromRows(rows))):
// ragged input is first padded to the widest row with T's zero value, then
// transposed, so the result is always rectangular in shape —
// (max row length) rows of (row count) columns each — never a ragged
// transpose. TransposeRows(nil) is nil.
//
// Complexity: O(rows·maxLen) time and space.
func TransposeRows[T any](rows [][]T) [][]T {
	return ToRows(Transpose(FromRows(rows)))
}
