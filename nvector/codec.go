// SPDX-License-Identifier: MIT

package nvector

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions for codec conformance.
var (
	_ yaml.Marshaler   = (*Vector[float64])(nil)
	_ yaml.Unmarshaler = (*Vector[float64])(nil)
	_ json.Marshaler   = (*Vector[float64])(nil)
	_ json.Unmarshaler = (*Vector[float64])(nil)
)

// MarshalYAML encodes the vector as a flat sequence.
func (v *Vector[T]) MarshalYAML() (interface{}, error) {
	return v.Values(), nil
}

// UnmarshalYAML replaces the contents with the decoded sequence.
func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	var vals []T
	if err := node.Decode(&vals); err != nil {
		return err
	}
	v.data = vals

	return nil
}

// MarshalJSON encodes the vector as a JSON array.
// An empty vector encodes as [] rather than null.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Values())
}

// UnmarshalJSON replaces the contents with the decoded array.
func (v *Vector[T]) UnmarshalJSON(b []byte) error {
	var vals []T
	if err := json.Unmarshal(b, &vals); err != nil {
		return err
	}
	if vals == nil {
		vals = []T{}
	}
	v.data = vals

	return nil
}
