package source

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON object. Numbers are kept as json.Number so that
// large integers survive.
func DecodeJSON(data []byte) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Object{}, fmt.Errorf("source: decode json: %w", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Object{}, fmt.Errorf("source: decode json: %w", &LookupError{Kind: ErrType, Want: "object", Got: typeName(v)})
	}
	return Object{fields: m}, nil
}
