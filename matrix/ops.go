// SPDX-License-Identifier: MIT

// Package matrix provides the Square operators: transpose, addition,
// subtraction, matrix/scalar/vector multiplication and negation.
// All operators perform fail-fast validation, never mutate the receiver and
// return a freshly allocated result.
package matrix

import (
	"github.com/katalvlaran/sqmatrix/nvector"
)

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opMul    = "Mul"
	opMulVec = "MulVec"
)

// Transpose returns a new matrix with result[i][j] = m[j][i].
// Never fails: the receiver's dimension is valid by construction.
// A nil receiver yields nil.
// Complexity: O(n²).
func (m *Square[T]) Transpose() *Square[T] {
	if m == nil {
		return nil
	}
	n := m.dim
	res := &Square[T]{dim: n, rows: allocRows[T](n)}

	var (
		i, j int // loop iterators
		v    T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.rows[j].At(i)    // safe: i, j < n
			_ = res.rows[i].Set(j, v) // safe: within bounds
		}
	}

	return res
}

// Add returns the element-wise sum m + rhs.
// Stage 1 (Validate): nil-check and equal dimension.
// Stage 2 (Execute): row-wise nvector.Add.
// Complexity: O(n²) time and memory.
func (m *Square[T]) Add(rhs *Square[T]) (*Square[T], error) {
	if err := validateOperand(m, rhs); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows := make([]*nvector.Vector[T], m.dim)
	for i := range m.rows {
		sum, err := m.rows[i].Add(rhs.rows[i])
		if err != nil {
			return nil, matrixErrorf(opAdd, err)
		}
		rows[i] = sum
	}

	return &Square[T]{dim: m.dim, rows: rows}, nil
}

// Sub returns the element-wise difference m - rhs, computed as m + (-rhs).
// The dimension check runs before any negation or addition.
// Complexity: O(n²) time and memory.
func (m *Square[T]) Sub(rhs *Square[T]) (*Square[T], error) {
	if err := validateOperand(m, rhs); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	res, err := m.Add(rhs.Negate())
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Mul performs the standard square product m × rhs:
// result[i][j] = Σ_k m[i][k] · rhs[k][j], each sum starting at T's zero.
// Stage 1 (Validate): nil-check and equal dimension.
// Stage 2 (Execute): i-j-k triple loop, no shortcuts for special structure.
// Complexity: O(n³) time, O(n²) memory.
func (m *Square[T]) Mul(rhs *Square[T]) (*Square[T], error) {
	if err := validateOperand(m, rhs); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := m.dim
	res := &Square[T]{dim: n, rows: allocRows[T](n)}

	var (
		i, j, k int // loop iterators
		av, bv  T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var acc T // additive identity
			for k = 0; k < n; k++ {
				av, _ = m.rows[i].At(k)
				bv, _ = rhs.rows[k].At(j)
				acc += av * bv
			}
			_ = res.rows[i].Set(j, acc)
		}
	}

	return res, nil
}

// MulScalar returns a new matrix with result[i][j] = T(k) · m[i][j].
// Never fails. ScalarMul(k, m) produces an identical result.
// A nil receiver yields nil.
// Complexity: O(n²).
func (m *Square[T]) MulScalar(k int) *Square[T] {
	if m == nil {
		return nil
	}
	rows := make([]*nvector.Vector[T], m.dim)
	for i, r := range m.rows {
		rows[i] = r.Scale(k)
	}

	return &Square[T]{dim: m.dim, rows: rows}
}

// ScalarMul is the left-hand form k × m of MulScalar.
// It walks the elements directly instead of delegating to row kernels;
// results are element-wise identical to m.MulScalar(k), nil included.
func ScalarMul[T Number](k int, m *Square[T]) *Square[T] {
	if m == nil {
		return nil
	}
	n := m.dim
	res := &Square[T]{dim: n, rows: allocRows[T](n)}
	f := T(k)

	var v T
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = m.rows[i].At(j)
			_ = res.rows[i].Set(j, f*v)
		}
	}

	return res
}

// MulVec multiplies m by the vector v using the column convention:
//
//	result[i] = Σ_j m[j][i] · v[j]
//
// i.e. column i of m is dotted with v (equivalently Transpose(m) × v).
// Each sum starts at T's zero.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrNilVector (nvector) when v is nil.
//   - ErrDimensionMismatch when v.Len() != Dimension(); nothing is allocated.
//
// Complexity: O(n²).
func (m *Square[T]) MulVec(v *nvector.Vector[T]) (*nvector.Vector[T], error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if v == nil {
		return nil, matrixErrorf(opMulVec, nvector.ErrNilVector)
	}
	if v.Len() != m.dim {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}

	n := m.dim
	res, _ := nvector.New[T](n) // safe: n >= 0

	var (
		i, j   int
		av, xv T
	)
	for i = 0; i < n; i++ {
		var acc T
		for j = 0; j < n; j++ {
			av, _ = m.rows[j].At(i) // column i, row j
			xv, _ = v.At(j)
			acc += av * xv
		}
		_ = res.Set(i, acc)
	}

	return res, nil
}

// Negate returns -m, computed as m scaled by -1. A nil receiver yields nil.
// Complexity: O(n²).
func (m *Square[T]) Negate() *Square[T] { return m.MulScalar(-1) }
