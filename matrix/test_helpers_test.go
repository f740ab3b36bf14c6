// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Square tests.
//   • Fail fast (t.Fatalf) on construction errors so test bodies stay short.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// MustFromRows builds a Square from a literal or fails the test.
func MustFromRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Square[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows(%v): %v", rows, err)
	}

	return m
}

// MustNew allocates an n×n zero Square or fails the test.
func MustNew[T matrix.Number](t testing.TB, n int) *matrix.Square[T] {
	t.Helper()
	m, err := matrix.New[T](n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	return m
}

// sequential returns an n×n int matrix with m[i][j] = i*n + j + 1.
func sequential(t testing.TB, n int) *matrix.Square[int] {
	t.Helper()
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = i*n + j + 1
		}
	}

	return MustFromRows(t, rows)
}

// sample2 is the 2×2 matrix [[1,2],[3,4]] used across scenarios.
func sample2(t testing.TB) *matrix.Square[int] {
	return MustFromRows(t, [][]int{{1, 2}, {3, 4}})
}
