package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/reoring/erracc"
	"github.com/reoring/erracc/i18n"
)

// ErrDuplicateKey is matched by every *DuplicateKeyError.
var ErrDuplicateKey = errors.New("source: duplicate key")

// DuplicateKeyError reports a key that occurs more than once in one object.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return i18n.T(i18n.CodeDuplicateKey, map[string]string{"key": e.Key})
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// dupFrame tracks one open JSON container while scanning tokens.
type dupFrame struct {
	object       bool
	keys         map[string]struct{}
	expectingKey bool
	key          string

	path  erracc.SourcePath
	base  erracc.SourcePath
	name  erracc.FieldName
	named bool
	next  int
}

// childPath returns the path of the value f expects next. For a value bound to
// an object key it also returns the field name.
func (f *dupFrame) childPath() (erracc.SourcePath, erracc.FieldName, bool) {
	if f == nil {
		return erracc.Root(), erracc.FieldName{}, false
	}
	if f.object {
		name, err := erracc.NewFieldName(f.key)
		if err != nil {
			return f.path, erracc.FieldName{}, false
		}
		return f.path.Join(erracc.Field(name)), name, true
	}
	if f.named {
		return f.base.Join(erracc.Element(f.name, f.next)), erracc.FieldName{}, false
	}
	return f.path, erracc.FieldName{}, false
}

// advance is called after a complete value was read inside f.
func (f *dupFrame) advance() {
	if f == nil {
		return
	}
	if f.object {
		f.expectingKey = true
		return
	}
	f.next++
}

// DuplicateKeysJSON scans data and reports every key that occurs more than once
// in the same object, recorded at the path of that object. Keys that cannot be
// expressed as a field name are attributed to the enclosing path. It returns
// nil when no key is duplicated, and an error wrapping io.ErrUnexpectedEOF when
// the document ends inside an object or array.
func DuplicateKeysJSON(data []byte) (*erracc.AccumulatedError, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var (
		dups  erracc.AccumulatedError
		stack []dupFrame
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if len(stack) > 0 {
				return nil, fmt.Errorf("source: decode json: %w", io.ErrUnexpectedEOF)
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("source: decode json: %w", err)
		}

		var top *dupFrame
		if len(stack) > 0 {
			top = &stack[len(stack)-1]
		}

		if key, ok := tok.(string); ok && top != nil && top.object && top.expectingKey {
			if _, seen := top.keys[key]; seen {
				dups.Append(top.path, &DuplicateKeyError{Key: key})
			}
			top.keys[key] = struct{}{}
			top.key = key
			top.expectingKey = false
			continue
		}

		switch tok {
		case json.Delim('{'):
			p, _, _ := top.childPath()
			stack = append(stack, dupFrame{object: true, keys: map[string]struct{}{}, expectingKey: true, path: p})
		case json.Delim('['):
			p, name, named := top.childPath()
			f := dupFrame{path: p, name: name, named: named}
			if named {
				f.base = top.path
			}
			stack = append(stack, f)
		case json.Delim('}'), json.Delim(']'):
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				stack[len(stack)-1].advance()
			}
		default:
			top.advance()
		}
	}

	if dups.IsEmpty() {
		return nil, nil
	}
	return &dups, nil
}
