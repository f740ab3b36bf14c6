// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Public operations
// return them wrapped with an operation tag ("Add: matrix: dimension mismatch")
// and tests match them via errors.Is. No operation panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced in tests):
// nil operand -> dimension mismatch -> computation.
// Nothing is allocated or written before validation succeeds.

var (
	// ErrInvalidDimension is returned by New and SetDimension for n < 0.
	ErrInvalidDimension = errors.New("matrix: dimension must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of incompatible dimensions,
	// or ragged/non-square input to FromRows and the decoders.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Square was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrMalformedInput indicates a token that is not a number in Scan.
	ErrMalformedInput = errors.New("matrix: malformed numeric input")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// squareErrorf wraps an error with Square method context and coordinates.
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}
