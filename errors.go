package erracc

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/erracc/i18n"
)

// PathErrorKind classifies malformed path or field name text.
type PathErrorKind int

const (
	PathInvalidChar     PathErrorKind = iota // Name contains '.', '[' or ']'.
	PathIncompleteArray                      // Segment ends with ']' but has no '['.
	PathInvalidIndex                         // Index between brackets is not a non-negative integer.
	PathEmpty                                // Empty field name or path text (the root renders as "root").
)

func (k PathErrorKind) code() string {
	switch k {
	case PathInvalidChar:
		return i18n.CodePathInvalidChar
	case PathIncompleteArray:
		return i18n.CodePathIncomplete
	case PathInvalidIndex:
		return i18n.CodePathInvalidIndex
	default:
		return i18n.CodePathEmpty
	}
}

// PathError reports a syntax error while parsing a FieldName, PathSegment or
// SourcePath.
type PathError struct {
	Kind  PathErrorKind
	Input string
	Err   error // Optional: underlying strconv error for PathInvalidIndex.
}

func (e *PathError) Error() string {
	return i18n.T(e.Kind.code(), map[string]string{"input": e.Input})
}

func (e *PathError) Unwrap() error { return e.Err }

// Entry is a single recorded error together with the path of its source.
type Entry struct {
	Path SourcePath
	Err  error
}

// AccumulatedError is an ordered list of recorded errors and their source
// paths. Entries keep the order in which they were recorded.
type AccumulatedError struct {
	entries []Entry
}

// Append records err at path.
func (a *AccumulatedError) Append(path SourcePath, err error) {
	a.entries = append(a.entries, Entry{Path: path, Err: err})
}

// Merge appends all entries of other after the receiver's entries, keeping
// other's order.
func (a *AccumulatedError) Merge(other *AccumulatedError) {
	if other == nil {
		return
	}
	a.entries = append(a.entries, other.entries...)
}

// Len returns the number of recorded errors.
func (a *AccumulatedError) Len() int {
	if a == nil {
		return 0
	}
	return len(a.entries)
}

// IsEmpty reports whether no error was recorded.
func (a *AccumulatedError) IsEmpty() bool { return a.Len() == 0 }

// Entries returns a copy of all entries in accumulation order.
func (a *AccumulatedError) Entries() []Entry {
	if a == nil {
		return nil
	}
	return append([]Entry(nil), a.entries...)
}

// All iterates over all entries in accumulation order.
func (a *AccumulatedError) All() iter.Seq2[SourcePath, error] {
	return func(yield func(SourcePath, error) bool) {
		if a == nil {
			return
		}
		for _, e := range a.entries {
			if !yield(e.Path, e.Err) {
				return
			}
		}
	}
}

// ByPath iterates over the errors recorded exactly at path, in accumulation
// order.
func (a *AccumulatedError) ByPath(path SourcePath) iter.Seq[error] {
	return func(yield func(error) bool) {
		for p, err := range a.All() {
			if p.Equal(path) && !yield(err) {
				return
			}
		}
	}
}

// Under iterates over the errors recorded at prefix or anywhere below it.
func (a *AccumulatedError) Under(prefix SourcePath) iter.Seq2[SourcePath, error] {
	return func(yield func(SourcePath, error) bool) {
		for p, err := range a.All() {
			if prefix.IsPrefixOf(p) && !yield(p, err) {
				return
			}
		}
	}
}

// Matching iterates over the entries whose error matches target according to
// errors.Is.
func (a *AccumulatedError) Matching(target error) iter.Seq2[SourcePath, error] {
	return func(yield func(SourcePath, error) bool) {
		for p, err := range a.All() {
			if errors.Is(err, target) && !yield(p, err) {
				return
			}
		}
	}
}

// ByKind iterates over the entries whose error can be extracted as E with
// errors.As, yielding the typed error together with its path.
func ByKind[E error](a *AccumulatedError) iter.Seq2[SourcePath, E] {
	return func(yield func(SourcePath, E) bool) {
		for p, err := range a.All() {
			var typed E
			if errors.As(err, &typed) && !yield(p, typed) {
				return
			}
		}
	}
}

// Error renders a header line followed by one "- <path>: <message>" line per
// entry.
func (a *AccumulatedError) Error() string {
	b := &strings.Builder{}
	b.WriteString(i18n.T(i18n.CodeAccumulatedHeader, nil))
	for p, err := range a.All() {
		fmt.Fprintf(b, "\n- %s: %v", p, err)
	}
	return b.String()
}

// Unwrap exposes the recorded errors to errors.Is and errors.As.
func (a *AccumulatedError) Unwrap() []error {
	if a == nil {
		return nil
	}
	errs := make([]error, 0, len(a.entries))
	for _, e := range a.entries {
		errs = append(errs, e.Err)
	}
	return errs
}

type entryJSON struct {
	Path    string `json:"path"`
	Pointer string `json:"pointer"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// MarshalJSON renders the entries as a JSON array of
// {"path", "pointer", "kind", "message"} objects.
func (a *AccumulatedError) MarshalJSON() ([]byte, error) {
	out := make([]entryJSON, 0, a.Len())
	for p, err := range a.All() {
		out = append(out, entryJSON{
			Path:    p.String(),
			Pointer: p.Pointer(),
			Kind:    fmt.Sprintf("%T", err),
			Message: err.Error(),
		})
	}
	return json.Marshal(out)
}

// AsAccumulated extracts an AccumulatedError from err using errors.As.
func AsAccumulated(err error) (*AccumulatedError, bool) {
	if err == nil {
		return nil, false
	}
	var acc *AccumulatedError
	if errors.As(err, &acc) {
		return acc, true
	}
	return nil, false
}
