// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row vectors) & safe accessors.
//
// Purpose:
//   - Hold n row vectors of length n each; the invariant len(rows) == dim and
//     rows[i].Len() == dim holds after every constructor and every resize.
//   - Guarantee safety at the public surface: Row/At/Set return errors
//     instead of panicking.
//   - Keep value semantics: Clone and every operator allocate fresh rows,
//     nothing aliases the receiver's storage except the Row view.
//
// Complexity quicksheet:
//   - New/SetDimension/Clone: O(n²); Dimension/Row/At/Set: O(1).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/sqmatrix/nvector"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxSetDim   = "SetDimension"
	ctxRow      = "Row"
	ctxRowAt    = "Row.At"
	ctxRowSet   = "Row.Set"
	ctxAt       = "At"
	ctxSet      = "Set"
)

// Square is an n×n matrix of T stored as n row vectors.
//
// The zero value is a valid 0×0 matrix (the default-constructed state).
// Square is not safe for concurrent mutation.
type Square[T Number] struct {
	dim  int                  // number of rows == number of columns (>= 0)
	rows []*nvector.Vector[T] // len(rows) == dim, each row has Len() == dim
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square[float64])(nil)

// Empty returns a 0×0 matrix, equivalent to new(Square[T]).
func Empty[T Number]() *Square[T] { return &Square[T]{} }

// New creates an n×n matrix with every element equal to T's zero value.
// MAIN DESCRIPTION:
//   - Sized constructor with strict dimension validation.
//
// Implementation:
//   - Stage 1: validate n >= 0; else ErrInvalidDimension.
//   - Stage 2: allocate n zero-filled rows of length n.
//
// Behavior highlights:
//   - New(0) is legal and equals the zero value.
//   - Nothing is allocated when validation fails.
//
// Errors:
//   - ErrInvalidDimension (n < 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New[T Number](n int) (*Square[T], error) {
	if err := validateDimension(n); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return &Square[T]{dim: n, rows: allocRows[T](n)}, nil
}

// FromRows builds a matrix from a row-major literal, copying every element.
// MAIN DESCRIPTION:
//   - Convenience constructor for literals, decoders and tests.
//
// Behavior highlights:
//   - len(rows) defines the dimension; each row must have exactly that length.
//   - A nil or empty slice yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch when any row length differs from len(rows).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func FromRows[T Number](rows [][]T) (*Square[T], error) {
	n := len(rows)
	out := make([]*nvector.Vector[T], n)
	for i, r := range rows {
		if len(r) != n {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has length %d, want %d: %w", i, len(r), n, ErrDimensionMismatch))
		}
		out[i] = nvector.FromSlice(r)
	}

	return &Square[T]{dim: n, rows: out}, nil
}

// Identity returns the n×n identity matrix (ones on the diagonal).
//
// Errors:
//   - ErrInvalidDimension (n < 0).
func Identity[T Number](n int) (*Square[T], error) {
	m, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = m.rows[i].Set(i, T(1)) // safe: i < n
	}

	return m, nil
}

// allocRows allocates n zero rows of length n. n must already be validated.
func allocRows[T Number](n int) []*nvector.Vector[T] {
	rows := make([]*nvector.Vector[T], n)
	for i := range rows {
		rows[i], _ = nvector.New[T](n) // safe: n >= 0
	}

	return rows
}

// Dimension returns the number of rows (== number of columns). No side effects.
func (m *Square[T]) Dimension() int { return m.dim }

// SetDimension discards the current contents and reallocates an n×n grid
// of zero values.
// MAIN DESCRIPTION:
//   - Non-preserving resize: contents are lost even when n == Dimension().
//
// Implementation:
//   - Stage 1: validate n >= 0.
//   - Stage 2: allocate fresh rows, then swap them in.
//
// Behavior highlights:
//   - On error the matrix is left untouched.
//   - Row views obtained before the call keep pointing at the old storage.
//
// Errors:
//   - ErrInvalidDimension (n < 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Square[T]) SetDimension(n int) error {
	if err := validateDimension(n); err != nil {
		return matrixErrorf(ctxSetDim, err)
	}
	m.rows = allocRows[T](n)
	m.dim = n

	return nil
}

// Row returns a write-through view of row i.
//
// Errors:
//   - ErrOutOfRange when i < 0 or i >= Dimension().
//
// Complexity: O(1).
func (m *Square[T]) Row(i int) (Row[T], error) {
	if !validIndex(m.dim, i) {
		return Row[T]{}, squareErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return Row[T]{vec: m.rows[i], idx: i}, nil
}

// At returns the element at (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (m *Square[T]) At(i, j int) (T, error) {
	if !validIndex(m.dim, i) || !validIndex(m.dim, j) {
		var zero T
		return zero, squareErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	x, _ := m.rows[i].At(j) // safe: bounds checked above

	return x, nil
}

// Set stores x at (i, j) or returns ErrOutOfRange without writing.
// Complexity: O(1).
func (m *Square[T]) Set(i, j int, x T) error {
	if !validIndex(m.dim, i) || !validIndex(m.dim, j) {
		return squareErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	_ = m.rows[i].Set(j, x) // safe: bounds checked above

	return nil
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(n²).
func (m *Square[T]) Clone() *Square[T] {
	rows := make([]*nvector.Vector[T], m.dim)
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Square[T]{dim: m.dim, rows: rows}
}

// Equal reports whether m and o have the same dimension and elements.
// A nil matrix equals only another nil matrix.
func (m *Square[T]) Equal(o *Square[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.dim != o.dim {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// Rows returns a row-major copy of the elements. A 0×0 matrix yields an
// empty, non-nil slice.
func (m *Square[T]) Rows() [][]T {
	out := make([][]T, m.dim)
	for i, r := range m.rows {
		out[i] = r.Values()
	}

	return out
}
