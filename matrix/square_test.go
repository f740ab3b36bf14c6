// Package matrix_test contains unit tests for Square construction and
// accessors.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sqmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestZeroValueIsEmpty verifies the default-constructed state.
func TestZeroValueIsEmpty(t *testing.T) {
	var m matrix.Square[float64]
	require.Equal(t, 0, m.Dimension())
	require.Equal(t, [][]float64{}, m.Rows())
	require.True(t, matrix.Empty[float64]().Equal(&m))
}

// TestNewDimension checks New(n).Dimension() == n and zero initialization.
func TestNewDimension(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		m, err := matrix.New[int](n)
		require.NoError(t, err)
		require.Equal(t, n, m.Dimension())
		for _, row := range m.Rows() {
			require.Len(t, row, n)
			for _, x := range row {
				require.Zero(t, x)
			}
		}
	}
}

// TestNewInvalidDimension ensures negative dimensions are rejected.
func TestNewInvalidDimension(t *testing.T) {
	m, err := matrix.New[int](-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	require.Nil(t, m)

	_, err = matrix.Identity[int](-2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
}

func TestFromRows(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, 2, m.Dimension())
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Rows())

	_, err := matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.FromRows[int](nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Dimension())
}

// TestFromRowsCopies ensures the literal is not aliased.
func TestFromRowsCopies(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	m := MustFromRows(t, src)
	src[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Rows())
}

// TestSetDimensionDiscardsContents covers the non-preserving resize.
func TestSetDimensionDiscardsContents(t *testing.T) {
	m := sample2(t)

	require.NoError(t, m.SetDimension(2)) // same dimension still clears
	require.Equal(t, [][]int{{0, 0}, {0, 0}}, m.Rows())

	require.NoError(t, m.SetDimension(3))
	require.Equal(t, 3, m.Dimension())
	require.Equal(t, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, m.Rows())

	require.NoError(t, m.SetDimension(0))
	require.Equal(t, 0, m.Dimension())
}

// TestSetDimensionInvalidLeavesMatrix ensures a failed resize is a no-op.
func TestSetDimensionInvalidLeavesMatrix(t *testing.T) {
	m := sample2(t)
	err := m.SetDimension(-4)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Rows())
}

// TestAtSetOutOfRange ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := sample2(t)

	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		_, err := m.At(c[0], c[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", c[0], c[1])
		require.ErrorIs(t, m.Set(c[0], c[1], 7), matrix.ErrOutOfRange, "Set(%d,%d)", c[0], c[1])
	}
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Rows()) // no write happened
}

func TestSetGet(t *testing.T) {
	m := MustNew[float64](t, 3)
	require.NoError(t, m.Set(2, 1, 7.5))

	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)
}

// TestRowOutOfRange checks row access at -1 and at Dimension().
func TestRowOutOfRange(t *testing.T) {
	m := sample2(t)

	_, err := m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(m.Dimension())
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Empty[int]().Row(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestZeroRow checks the Row returned alongside an error is inert.
func TestZeroRow(t *testing.T) {
	r, err := sample2(t).Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.Equal(t, 0, r.Len())
	_, err = r.At(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, r.Set(0, 1), matrix.ErrOutOfRange)
	require.Empty(t, r.Values())
	require.Equal(t, "", r.String())
}

// TestRowWriteThrough verifies Row is a view into the matrix storage.
func TestRowWriteThrough(t *testing.T) {
	m := sample2(t)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 2, row.Len())
	require.Equal(t, []int{3, 4}, row.Values())
	require.Equal(t, "3 4", row.String())

	require.NoError(t, row.Set(0, 30))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 30, v)

	require.NoError(t, m.Set(1, 1, 40))
	x, err := row.At(1)
	require.NoError(t, err)
	require.Equal(t, 40, x)

	_, err = row.At(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, row.Set(-1, 0), matrix.ErrOutOfRange)
}

// TestRowDetachedAfterResize documents that SetDimension replaces storage.
func TestRowDetachedAfterResize(t *testing.T) {
	m := sample2(t)
	row, err := m.Row(0)
	require.NoError(t, err)

	require.NoError(t, m.SetDimension(2))
	require.NoError(t, row.Set(0, 5))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := sample2(t)
	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 0, 100))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.False(t, m.Equal(c))

	require.Equal(t, 0, matrix.Empty[int]().Clone().Dimension())
}

func TestEqual(t *testing.T) {
	var nilM *matrix.Square[int]
	require.True(t, nilM.Equal(nil))
	require.False(t, sample2(t).Equal(nil))
	require.False(t, sample2(t).Equal(MustNew[int](t, 3)))
	require.True(t, sample2(t).Equal(sample2(t)))
}

// TestRowsIsACopy ensures Rows() returns a snapshot.
func TestRowsIsACopy(t *testing.T) {
	m := sample2(t)
	rows := m.Rows()
	rows[0][0] = -1

	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
}
