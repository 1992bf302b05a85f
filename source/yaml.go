package source

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML mapping. Nested mappings are normalized to
// map[string]any; entries with non-string keys are dropped.
func DecodeYAML(data []byte) (Object, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Object{}, fmt.Errorf("source: decode yaml: %w", err)
	}
	m := yamlAnyToStringMap(v)
	if m == nil {
		return Object{}, fmt.Errorf("source: decode yaml: %w", &LookupError{Kind: ErrType, Want: "object", Got: typeName(v)})
	}
	return Object{fields: m}, nil
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
