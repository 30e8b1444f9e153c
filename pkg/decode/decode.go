// Package decode converts loosely typed maps into concrete structs via a
// JSON round trip.
package decode

import "encoding/json"

// FromMap decodes a map into a value of type T using its JSON tags.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}
