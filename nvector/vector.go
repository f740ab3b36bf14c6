// SPDX-License-Identifier: MIT

// Package nvector - contiguous storage & safe accessors.
//
// Purpose:
//   - Hold a flat []T buffer with explicit length and bounds-checked access.
//   - Provide the two kernels the matrix operators rely on: Add and Scale.
//   - Keep loops deterministic (index order 0..n-1, no maps).
//
// Complexity quicksheet:
//   - New/Resize/Clone/Add/Scale: O(n); Len/At/Set: O(1).

package nvector

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxNew    = "New"
	ctxResize = "Resize"
	ctxAdd    = "Add"
)

// ---------- formatting literals ----------

const _fmtSep = " "

// Vector is an ordered, resizable sequence of T.
// The zero value is an empty vector ready to use.
type Vector[T Number] struct {
	data []T // len(data) is the vector length
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New returns a zero-filled vector of length n.
//
// Errors:
//   - ErrInvalidLength when n < 0.
//
// Complexity: O(n).
func New[T Number](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(ctxNew, n, ErrInvalidLength)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// FromSlice returns a vector holding a copy of vals.
// Later changes to vals are not observed by the vector.
func FromSlice[T Number](vals []T) *Vector[T] {
	buf := make([]T, len(vals))
	copy(buf, vals)

	return &Vector[T]{data: buf}
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns the element at index i or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, vectorErrorf(ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxSet, i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Resize changes the length to n.
// The common prefix is preserved; new trailing elements are zero.
//
// Errors:
//   - ErrInvalidLength when n < 0 (vector unchanged).
//
// Complexity: O(n).
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		return vectorErrorf(ctxResize, n, ErrInvalidLength)
	}
	buf := make([]T, n)
	copy(buf, v.data) // copies min(n, len) elements
	v.data = buf

	return nil
}

// Add returns a new vector with out[i] = v[i] + rhs[i].
//
// Errors:
//   - ErrNilVector when rhs is nil.
//   - ErrLengthMismatch when lengths differ; nothing is allocated.
//
// Complexity: O(n).
func (v *Vector[T]) Add(rhs *Vector[T]) (*Vector[T], error) {
	if rhs == nil {
		return nil, vectorErrorf(ctxAdd, 0, ErrNilVector)
	}
	if len(rhs.data) != len(v.data) {
		return nil, vectorErrorf(ctxAdd, len(rhs.data), ErrLengthMismatch)
	}
	out := make([]T, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] + rhs.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// Scale returns a new vector with out[i] = T(k) * v[i].
// Complexity: O(n).
func (v *Vector[T]) Scale(k int) *Vector[T] {
	f := T(k)
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = f * x
	}

	return &Vector[T]{data: out}
}

// Clone returns a deep copy that shares no storage with v.
func (v *Vector[T]) Clone() *Vector[T] { return FromSlice(v.data) }

// Equal reports whether v and w have the same length and elements.
// A nil vector equals only another nil vector.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if v == nil || w == nil {
		return v == w
	}
	if len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// String renders the elements separated by single spaces, e.g. "1 2 3".
// The output is whitespace-tokenized so it can be read back by a scanner.
func (v *Vector[T]) String() string {
	var sb strings.Builder
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%v", x)
	}

	return sb.String()
}
