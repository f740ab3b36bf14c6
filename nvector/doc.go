// Package nvector provides Vector, the resizable, bounds-checked ordered
// sequence used as row storage and as the vector operand of the matrix
// package.
//
// A Vector is generic over Number, the numeric constraint shared with the
// matrix package. Its zero element is the additive identity of T and every
// public accessor returns a sentinel error instead of panicking.
//
// Complexity:
//
//	New, Resize, Clone, Add, Scale: O(n).
//	Len, At, Set: O(1).
package nvector
