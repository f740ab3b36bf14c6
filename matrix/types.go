// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the Square implementation.
// This file contains ONLY the element constraint and the Row view; storage
// and operators live in square.go and ops.go.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/sqmatrix/nvector"
)

// Number is the element constraint of Square: an additive identity (zero
// value), +, -, * and conversions from int and float64.
type Number = nvector.Number

// Row is a write-through view of one matrix row.
//
// Contract:
//   - Set through a Row is immediately visible in the matrix and vice versa.
//   - A Row cannot change the row length, so it cannot break the square
//     invariant.
//   - A Row is only valid until the next SetDimension on its matrix, which
//     replaces the storage; writes after that are not seen by the matrix.
type Row[T Number] struct {
	vec *nvector.Vector[T] // borrowed from the owning Square
	idx int                // row index inside the owner, for error context
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Row[float64]{}

// Len returns the row length, equal to the matrix dimension.
// The zero Row has length 0.
func (r Row[T]) Len() int {
	if r.vec == nil {
		return 0
	}

	return r.vec.Len()
}

// At returns element j of the row or ErrOutOfRange.
func (r Row[T]) At(j int) (T, error) {
	if !validIndex(r.Len(), j) {
		var zero T
		return zero, squareErrorf(ctxRowAt, r.idx, j, ErrOutOfRange)
	}
	x, _ := r.vec.At(j) // safe: bounds checked above

	return x, nil
}

// Set stores x at column j of the row or returns ErrOutOfRange.
func (r Row[T]) Set(j int, x T) error {
	if !validIndex(r.Len(), j) {
		return squareErrorf(ctxRowSet, r.idx, j, ErrOutOfRange)
	}
	_ = r.vec.Set(j, x) // safe: bounds checked above

	return nil
}

// Values returns a copy of the row elements.
func (r Row[T]) Values() []T {
	if r.vec == nil {
		return []T{}
	}

	return r.vec.Values()
}

// String renders the row with the vector formatting rule ("1 2 3").
func (r Row[T]) String() string {
	if r.vec == nil {
		return ""
	}

	return r.vec.String()
}
