package form

import json "github.com/goccy/go-json"

// Results is the value map Show collects, keyed by field name.
type Results map[string]any

// EncodeJSON serializes the collected values for handoff to a host
// application or transport.
func (r Results) EncodeJSON() ([]byte, error) {
	return json.Marshal(r)
}
