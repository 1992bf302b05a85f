// Package source extracts raw field values from decoded JSON or YAML
// documents. Lookups return (value, error) pairs so that a missing or
// mistyped field can be recorded with erracc like any other failure.
package source

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/erracc/i18n"
)

// Lookup error kinds.
var (
	ErrMissing = errors.New("source: missing field")
	ErrType    = errors.New("source: unexpected type")
)

// LookupError reports a missing or mistyped raw value.
type LookupError struct {
	Kind error // ErrMissing or ErrType.
	Key  string
	Want string
	Got  string
}

func (e *LookupError) Error() string {
	if errors.Is(e.Kind, ErrMissing) {
		return i18n.T(i18n.CodeRequired, nil)
	}
	return i18n.T(i18n.CodeInvalidType, map[string]string{"expected": e.Want}) + ", got " + e.Got
}

func (e *LookupError) Unwrap() error { return e.Kind }

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the format from a file extension. Unknown extensions
// are treated as YAML, which is a superset of JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode decodes data in the given format into an Object.
func Decode(data []byte, f Format) (Object, error) {
	switch f {
	case FormatJSON:
		return DecodeJSON(data)
	case FormatYAML:
		return DecodeYAML(data)
	default:
		return Object{}, fmt.Errorf("source: unknown format %q", f)
	}
}

// Object is a decoded mapping of field names to raw values.
type Object struct {
	fields map[string]any
}

// NewObject wraps an already decoded map.
func NewObject(fields map[string]any) Object { return Object{fields: fields} }

// AsObject converts a raw value, such as an array element, into an Object.
func AsObject(v any) (Object, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Object{}, &LookupError{Kind: ErrType, Want: "object", Got: typeName(v)}
	}
	return Object{fields: m}, nil
}

// Keys returns the field names in sorted order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o.fields))
	for k := range o.fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Has reports whether key is present (even if null).
func (o Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Raw returns the undecoded value at key.
func (o Object) Raw(key string) (any, error) {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return nil, &LookupError{Kind: ErrMissing, Key: key}
	}
	return v, nil
}

// String returns the string at key.
func (o Object) String(key string) (string, error) {
	v, err := o.Raw(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", o.typeErr(key, "string", v)
	}
	return s, nil
}

// Bool returns the boolean at key.
func (o Object) Bool(key string) (bool, error) {
	v, err := o.Raw(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, o.typeErr(key, "bool", v)
	}
	return b, nil
}

// Int returns the integer at key. Integral floats and JSON numbers are
// accepted.
func (o Object) Int(key string) (int, error) {
	v, err := o.Raw(key)
	if err != nil {
		return 0, err
	}
	n, ok := toInt(v)
	if !ok {
		return 0, o.typeErr(key, "integer", v)
	}
	return n, nil
}

// Object returns the nested object at key.
func (o Object) Object(key string) (Object, error) {
	v, err := o.Raw(key)
	if err != nil {
		return Object{}, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Object{}, o.typeErr(key, "object", v)
	}
	return Object{fields: m}, nil
}

// Array returns the raw elements of the array at key.
func (o Object) Array(key string) ([]any, error) {
	v, err := o.Raw(key)
	if err != nil {
		return nil, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, o.typeErr(key, "array", v)
	}
	return arr, nil
}

func (o Object) typeErr(key, want string, got any) error {
	return &LookupError{Kind: ErrType, Key: key, Want: want, Got: typeName(got)}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := strconv.Atoi(string(n))
		return i, err == nil
	default:
		return 0, false
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, uint64, float64, json.Number:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
