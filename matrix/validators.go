// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the guards used by constructors,
//    accessors and operators.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly
//    with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package matrix

// validateDimension rejects negative dimensions.
// Returns ErrInvalidDimension if n < 0.
func validateDimension(n int) error {
	if n < 0 {
		return ErrInvalidDimension
	}

	return nil
}

// validIndex reports whether 0 <= i < n.
func validIndex(n, i int) bool {
	return i >= 0 && i < n
}

// validateOperand ensures both operands are non-nil and share a dimension.
// Order: nil check first, then dimension (see ERROR PRIORITY in errors.go).
func validateOperand[T Number](m, rhs *Square[T]) error {
	if m == nil || rhs == nil {
		return ErrNilMatrix
	}
	if m.dim != rhs.dim {
		return ErrDimensionMismatch
	}

	return nil
}
