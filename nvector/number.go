// SPDX-License-Identifier: MIT

package nvector

// Number is the element constraint for vectors and matrices.
//
// Every member type provides:
//   - an additive identity (its zero value),
//   - addition, subtraction and multiplication,
//   - conversion from int (scalar multiplication) and float64 (text parsing).
//
// Complex types are excluded: they cannot be converted from float64.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
