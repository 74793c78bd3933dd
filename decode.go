package propath

import (
	"bytes"
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// FromJSON decodes raw JSON into a traversable structure of
// map[string]any, []any and scalars, ready for Has, Get and Invoke.
// Numbers decode as json.Number so large integers survive the trip.
func FromJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// FromYAML decodes a YAML document into a traversable structure.
func FromYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
