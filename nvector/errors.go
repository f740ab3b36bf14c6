// SPDX-License-Identifier: MIT
// Package nvector: sentinel error set.
// Public methods return these (optionally wrapped with an operation tag);
// callers and tests match them via errors.Is.

package nvector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a negative length is requested.
	ErrInvalidLength = errors.New("nvector: length must be >= 0")

	// ErrOutOfRange indicates an index outside [0, Len).
	ErrOutOfRange = errors.New("nvector: index out of range")

	// ErrLengthMismatch indicates operands of different lengths.
	ErrLengthMismatch = errors.New("nvector: length mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("nvector: nil vector")
)

// vectorErrorf wraps err with the method tag, e.g. "Vector.At(3): ...".
func vectorErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, idx, err)
}
