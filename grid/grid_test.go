package grid_test

import (
	"testing"

	"github.com/katalvlaran/lvlkit/grid"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidatesDimensions(t *testing.T) {
	_, err := grid.New[int](-1, 3)
	require.ErrorIs(t, err, grid.ErrNegativeDims)

	_, err = grid.New[int](3, -1)
	require.ErrorIs(t, err, grid.ErrNegativeDims)

	// Zero dimensions are valid shapes, not errors.
	g, err := grid.New[int](0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, g.Rows())
	require.Equal(t, 5, g.Cols())

	g, err = grid.New[int](5, 0)
	require.NoError(t, err)
	require.Equal(t, 5, g.Rows())
	require.Equal(t, 0, g.Cols())
}

func TestAtSet_RoundTripAndBounds(t *testing.T) {
	g, err := grid.New[string](2, 3)
	require.NoError(t, err)

	// Fresh cells hold the zero value.
	v, err := g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, "", v)

	require.NoError(t, g.Set(1, 2, "x"))
	v, err = g.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, "x", v)

	// Out-of-range coordinates error instead of panicking.
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err = g.At(rc[0], rc[1])
		require.ErrorIs(t, err, grid.ErrOutOfRange)
		require.ErrorIs(t, g.Set(rc[0], rc[1], "y"), grid.ErrOutOfRange)
	}
}

func TestNilReceiver_SafeAccessors(t *testing.T) {
	var g *grid.Grid[int]
	require.Equal(t, 0, g.Rows())
	require.Equal(t, 0, g.Cols())

	_, err := g.At(0, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	require.ErrorIs(t, g.Set(0, 0, 1), grid.ErrOutOfRange)
	require.Nil(t, g.Clone())
}

func TestClone_Independent(t *testing.T) {
	g := grid.FromRows([][]int{{1, 2}, {3, 4}})
	c := g.Clone()
	require.True(t, grid.Equal(g, c))

	require.NoError(t, c.Set(0, 0, 99))
	v, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v, "mutating the clone must not reach the original")
}

func TestEqual(t *testing.T) {
	a := grid.FromRows([][]int{{1, 2}, {3, 4}})
	b := grid.FromRows([][]int{{1, 2}, {3, 4}})
	require.True(t, grid.Equal(a, b))

	require.NoError(t, b.Set(1, 1, 5))
	require.False(t, grid.Equal(a, b))

	// Shape matters even when both are empty of cells.
	e1, _ := grid.New[int](0, 3)
	e2, _ := grid.New[int](3, 0)
	require.False(t, grid.Equal(e1, e2))

	// nil semantics: nil == nil, nil != non-nil.
	require.True(t, grid.Equal[int](nil, nil))
	require.False(t, grid.Equal(nil, a))
}
