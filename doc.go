// Package sqmatrix is a small, dependency-light library for square-matrix
// arithmetic over any integer or floating-point element type.
//
// What is sqmatrix?
//
//	A generic n×n matrix value type with:
//		• Construction: zero value, sized New, FromRows, Identity, deep Clone
//		• Safe indexing: Row views and At/Set, all bounds-checked
//		• Operators: Transpose, Add, Sub, Mul, MulScalar/ScalarMul, MulVec, Negate
//		• I/O: a whitespace text stream (WriteTo/Scan), YAML and JSON codecs
//
// Everything is organized under two packages plus a CLI:
//
//	nvector/    — Vector, the row storage and vector operand; the Number constraint
//	matrix/     — Square, its operators, stream formatting and codecs
//	cmd/sqmat/  — command-line front end (cobra + viper)
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	sq, _ := m.Mul(m) // [[7 10] [15 22]]
//
//	go get github.com/katalvlaran/sqmatrix
package sqmatrix
