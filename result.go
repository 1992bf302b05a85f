package erracc

// Outcome is a single fallible result handed to a scope for recording.
// Result[T] is the only implementation.
type Outcome interface {
	outcome() (any, error)
}

// Result carries either a value or an error from a parsing or validation step.
// A non-nil Err marks the result as failed and Value is ignored.
type Result[T any] struct {
	Value T
	Err   error
}

// From wraps the common (value, error) return pair, so that calls like
// From(strconv.Atoi(s)) can be recorded directly.
func From[T any](v T, err error) Result[T] { return Result[T]{Value: v, Err: err} }

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

// Fail wraps a failure.
func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

// Then runs fn on the value of r if r succeeded. It chains steps within a single
// attempt; the first failing step wins.
func Then[T, U any](r Result[T], fn func(T) (U, error)) Result[U] {
	if r.Err != nil {
		return Result[U]{Err: r.Err}
	}
	return From(fn(r.Value))
}

// Unpack returns the (value, error) pair.
func (r Result[T]) Unpack() (T, error) { return r.Value, r.Err }

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.Err == nil }

func (r Result[T]) outcome() (any, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Value, nil
}

// MapResults applies fn to each raw element and collects the outcomes, ready
// for ArrayScope.AddValues.
func MapResults[In, E any](in []In, fn func(In) (E, error)) []Result[E] {
	out := make([]Result[E], 0, len(in))
	for _, raw := range in {
		out = append(out, From(fn(raw)))
	}
	return out
}
