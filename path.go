package erracc

import (
	"strconv"
	"strings"
)

const invalidNameChars = ".[]"

// FieldName is the name of a single field of the input. Any non-empty string is
// allowed except the path delimiters '.', '[' and ']'.
type FieldName struct {
	name string
}

// NewFieldName validates name and wraps it into a FieldName.
func NewFieldName(name string) (FieldName, error) {
	if name == "" {
		return FieldName{}, &PathError{Kind: PathEmpty, Input: name}
	}
	if strings.ContainsAny(name, invalidNameChars) {
		return FieldName{}, &PathError{Kind: PathInvalidChar, Input: name}
	}
	return FieldName{name: name}, nil
}

// MustFieldName is like NewFieldName but panics on an invalid name. It is meant
// for package-level field name declarations.
func MustFieldName(name string) FieldName {
	fn, err := NewFieldName(name)
	if err != nil {
		panic(err)
	}
	return fn
}

func (f FieldName) String() string { return f.name }

// PathSegment is one step of a SourcePath: either a plain field or an element
// of an array field.
type PathSegment struct {
	name    FieldName
	index   int
	element bool
}

// Field returns a segment referencing the field name.
func Field(name FieldName) PathSegment { return PathSegment{name: name} }

// Element returns a segment referencing the element at index of the array
// field name. A negative index is a contract violation.
func Element(name FieldName, index int) PathSegment {
	if index < 0 {
		violate(ErrNegativeIndex, Root(), "%s[%d]", name.name, index)
	}
	return PathSegment{name: name, index: index, element: true}
}

// Name returns the field name of the segment.
func (s PathSegment) Name() FieldName { return s.name }

// IsElement reports whether the segment references an array element.
func (s PathSegment) IsElement() bool { return s.element }

// Index returns the array index; it is only meaningful when IsElement is true.
func (s PathSegment) Index() int { return s.index }

func (s PathSegment) String() string {
	if s.element {
		return s.name.name + "[" + strconv.Itoa(s.index) + "]"
	}
	return s.name.name
}

// ParseSegment parses a single segment in its textual form (name or
// name[index]).
func ParseSegment(text string) (PathSegment, error) {
	if !strings.HasSuffix(text, "]") {
		name, err := NewFieldName(text)
		if err != nil {
			return PathSegment{}, err
		}
		return Field(name), nil
	}
	open := strings.IndexByte(text, '[')
	if open < 0 {
		return PathSegment{}, &PathError{Kind: PathIncompleteArray, Input: text}
	}
	name, err := NewFieldName(text[:open])
	if err != nil {
		return PathSegment{}, err
	}
	idxText := text[open+1 : len(text)-1]
	idx, err := strconv.ParseUint(idxText, 10, strconv.IntSize-1)
	if err != nil {
		return PathSegment{}, &PathError{Kind: PathInvalidIndex, Input: text, Err: err}
	}
	return Element(name, int(idx)), nil
}

// SourcePath addresses a location in the input tree. The zero value is the
// root. SourcePath is immutable: Join returns a new path.
type SourcePath struct {
	segments []PathSegment
}

// Root returns the empty path.
func Root() SourcePath { return SourcePath{} }

// PathOf builds a path from the given segments.
func PathOf(segments ...PathSegment) SourcePath {
	return SourcePath{segments: append([]PathSegment(nil), segments...)}
}

// Join returns a new path with seg appended. The receiver is not modified.
func (p SourcePath) Join(seg PathSegment) SourcePath {
	out := make([]PathSegment, len(p.segments), len(p.segments)+1)
	copy(out, p.segments)
	return SourcePath{segments: append(out, seg)}
}

// Len returns the number of segments.
func (p SourcePath) Len() int { return len(p.segments) }

// IsRoot reports whether p has no segments.
func (p SourcePath) IsRoot() bool { return len(p.segments) == 0 }

// Segments returns a copy of the path's segments.
func (p SourcePath) Segments() []PathSegment {
	return append([]PathSegment(nil), p.segments...)
}

// Last returns the final segment; ok is false for the root.
func (p SourcePath) Last() (seg PathSegment, ok bool) {
	if len(p.segments) == 0 {
		return PathSegment{}, false
	}
	return p.segments[len(p.segments)-1], true
}

// Parent returns p without its final segment. The parent of the root is the
// root.
func (p SourcePath) Parent() SourcePath {
	if len(p.segments) <= 1 {
		return Root()
	}
	n := len(p.segments) - 1
	return SourcePath{segments: p.segments[:n:n]}
}

// Equal reports whether both paths consist of the same segments.
func (p SourcePath) Equal(other SourcePath) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether p's segments are a leading, segment-wise prefix
// of candidate. The root is a prefix of every path; a path is a prefix of
// itself.
//
// For example: foo.bar is a prefix of foo.bar.baz but not of foo.barbaz.
func (p SourcePath) IsPrefixOf(candidate SourcePath) bool {
	if len(p.segments) > len(candidate.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != candidate.segments[i] {
			return false
		}
	}
	return true
}

// String renders the canonical textual form: "root" for the empty path,
// otherwise the segments joined by '.'.
func (p SourcePath) String() string {
	if len(p.segments) == 0 {
		return "root"
	}
	b := &strings.Builder{}
	for i, seg := range p.segments {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Pointer renders p as an RFC 6901 JSON Pointer (for example: /hosts/2/url).
func (p SourcePath) Pointer() string {
	if len(p.segments) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range p.segments {
		b.WriteByte('/')
		// escape '~' -> '~0', '/' -> '~1'
		b.WriteString(strings.ReplaceAll(strings.ReplaceAll(seg.name.name, "~", "~0"), "/", "~1"))
		if seg.element {
			b.WriteByte('/')
			b.WriteString(strconv.Itoa(seg.index))
		}
	}
	return b.String()
}

// ParsePath parses the textual form produced by SourcePath.String.
func ParsePath(text string) (SourcePath, error) {
	if text == "root" {
		return Root(), nil
	}
	if text == "" {
		return SourcePath{}, &PathError{Kind: PathEmpty, Input: text}
	}
	parts := strings.Split(text, ".")
	segments := make([]PathSegment, 0, len(parts))
	for _, part := range parts {
		seg, err := ParseSegment(part)
		if err != nil {
			return SourcePath{}, err
		}
		segments = append(segments, seg)
	}
	return SourcePath{segments: segments}, nil
}

// MustParsePath is like ParsePath but panics on malformed input.
func MustParsePath(text string) SourcePath {
	p, err := ParsePath(text)
	if err != nil {
		panic(err)
	}
	return p
}

func (p SourcePath) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *SourcePath) UnmarshalText(text []byte) error {
	parsed, err := ParsePath(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
