package erracc

import "fmt"

// Builder is implemented by every Constructor regardless of its output type.
// Scopes accept a Builder so one struct scope can produce any Go type.
type Builder interface {
	Arity() int
	build(path SourcePath, vals []any) any
}

// Checker is implemented by every Validator regardless of its output type.
type Checker interface {
	Arity() int
	check(path SourcePath, vals []any) (any, error)
}

// Constructor turns the recorded values of an error-free scope into Out. The
// values are passed as separate positional arguments in recording order.
// Build one with Construct0 … Construct12 or Nth.
type Constructor[Out any] struct {
	arity int
	fn    func(SourcePath, []any) Out
}

// Arity returns the number of recorded values the constructor expects.
func (c Constructor[Out]) Arity() int { return c.arity }

func (c Constructor[Out]) build(path SourcePath, vals []any) any { return c.call(path, vals) }

func (c Constructor[Out]) call(path SourcePath, vals []any) Out {
	if c.fn == nil {
		violate(ErrArity, path, "zero Constructor")
	}
	if len(vals) != c.arity {
		violate(ErrArity, path, "constructor takes %d values, %d recorded", c.arity, len(vals))
	}
	return c.fn(path, vals)
}

// Nth returns a Constructor over arity values that yields the value at index.
// It is handy for fields with several validation attempts where only one
// attempt carries the field's value.
func Nth[Out any](arity, index int) Constructor[Out] {
	if index < 0 || index >= arity {
		violate(ErrArity, Root(), "index %d outside arity %d", index, arity)
	}
	return Constructor[Out]{arity: arity, fn: func(p SourcePath, v []any) Out {
		return arg[Out](p, v, index)
	}}
}

// Validator runs a derived check over all values recorded so far in a scope.
// Build one with Check0 … Check12.
type Validator[T any] struct {
	arity int
	fn    func(SourcePath, []any) (T, error)
}

// Arity returns the number of recorded values the validator expects.
func (v Validator[T]) Arity() int { return v.arity }

func (v Validator[T]) check(path SourcePath, vals []any) (any, error) {
	if v.fn == nil {
		violate(ErrArity, path, "zero Validator")
	}
	out, err := v.fn(path, vals)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func arg[T any](path SourcePath, vals []any, i int) T {
	var zero T
	if vals[i] == nil {
		return zero
	}
	typed, ok := vals[i].(T)
	if !ok {
		violate(ErrSlotType, path, "value %d is %T, want %T", i, vals[i], zero)
	}
	return typed
}

// Values is the ordered tuple of values recorded in a scope.
type Values struct {
	items []any
}

// Len returns the number of values.
func (v Values) Len() int { return len(v.items) }

// At returns the value at index i as any.
func (v Values) At(i int) any { return v.items[i] }

// Slice returns a copy of the values.
func (v Values) Slice() []any { return append([]any(nil), v.items...) }

func (v Values) String() string { return fmt.Sprint(v.items) }

// Get returns the value at index i typed as T. A type mismatch or an index out
// of range is a contract violation.
func Get[T any](v Values, i int) T {
	if i < 0 || i >= len(v.items) {
		violate(ErrArity, Root(), "index %d outside %d values", i, len(v.items))
	}
	return arg[T](Root(), v.items, i)
}
