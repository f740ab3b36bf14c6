// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

const (
	ctxUnmarshalYAML = "UnmarshalYAML"
	ctxUnmarshalJSON = "UnmarshalJSON"
)

// Compile-time assertions for codec conformance.
var (
	_ yaml.Marshaler   = (*Square[float64])(nil)
	_ yaml.Unmarshaler = (*Square[float64])(nil)
	_ json.Marshaler   = (*Square[float64])(nil)
	_ json.Unmarshaler = (*Square[float64])(nil)
)

// MarshalYAML encodes the matrix as a sequence of row sequences.
func (m *Square[T]) MarshalYAML() (interface{}, error) {
	return m.Rows(), nil
}

// UnmarshalYAML decodes a sequence of row sequences, validating that the
// result is square (ErrDimensionMismatch otherwise). The matrix is replaced
// only on success.
func (m *Square[T]) UnmarshalYAML(node *yaml.Node) error {
	var rows [][]T
	if err := node.Decode(&rows); err != nil {
		return matrixErrorf(ctxUnmarshalYAML, err)
	}
	built, err := FromRows(rows)
	if err != nil {
		return matrixErrorf(ctxUnmarshalYAML, err)
	}
	*m = *built

	return nil
}

// MarshalJSON encodes the matrix as an array of row arrays ([] when empty).
func (m *Square[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Rows())
}

// UnmarshalJSON decodes an array of row arrays with the same validation as
// UnmarshalYAML.
func (m *Square[T]) UnmarshalJSON(b []byte) error {
	var rows [][]T
	if err := json.Unmarshal(b, &rows); err != nil {
		return matrixErrorf(ctxUnmarshalJSON, err)
	}
	built, err := FromRows(rows)
	if err != nil {
		return matrixErrorf(ctxUnmarshalJSON, err)
	}
	*m = *built

	return nil
}
