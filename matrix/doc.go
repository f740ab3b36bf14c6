// Package matrix provides Square, a generic n×n matrix value type with
// bounds-checked indexing and a small set of linear-algebra operators.
//
// What & Why:
//
//	Square[T] stores n row vectors (nvector.Vector[T]) of length n each and
//	keeps that invariant through every constructor, resize and operator.
//	Operators never mutate their receiver; they validate operands first and
//	return a fresh matrix, or a sentinel error wrapped with the operation name.
//
// Operators:
//
//	Transpose   ~M
//	Negate      -M          (M scaled by -1)
//	Add, Sub    M ± N       (ErrDimensionMismatch on unequal dimensions)
//	Mul         M × N       (i-j-k triple loop)
//	MulScalar   M × k       (ScalarMul(k, M) gives the same result)
//	MulVec      M × v       result[i] = Σ_j M[j][i]·v[j]
//
// Note that MulVec dots COLUMN i of M with v. The convention is part of the
// contract and is intentionally kept.
//
// Text stream format:
//
//	Each row is written on its own line with elements separated by single
//	spaces, followed by one empty line. Scan reads Dimension()² whitespace
//	separated numbers back in row-major order; it never resizes.
//
// Complexity:
//
//	New, SetDimension, Clone, Transpose, Add, Sub, MulScalar, Negate: O(n²).
//	Mul: O(n³). MulVec: O(n²). At, Set, Row: O(1).
package matrix
