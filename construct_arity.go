package erracc

// Code below provides fixed-arity adapters from plain Go funcs to Constructor
// and Validator, for up to 12 recorded values.

// Construct0 adapts a func taking 0 recorded values into a Constructor.
func Construct0[Out any](fn func() Out) Constructor[Out] {
	return Constructor[Out]{arity: 0, fn: func(SourcePath, []any) Out {
		return fn()
	}}
}

// Construct1 adapts a func taking 1 recorded value into a Constructor.
func Construct1[A, Out any](fn func(A) Out) Constructor[Out] {
	return Constructor[Out]{arity: 1, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0))
	}}
}

// Construct2 adapts a func taking 2 recorded values into a Constructor.
func Construct2[A, B, Out any](fn func(A, B) Out) Constructor[Out] {
	return Constructor[Out]{arity: 2, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1))
	}}
}

// Construct3 adapts a func taking 3 recorded values into a Constructor.
func Construct3[A, B, C, Out any](fn func(A, B, C) Out) Constructor[Out] {
	return Constructor[Out]{arity: 3, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2))
	}}
}

// Construct4 adapts a func taking 4 recorded values into a Constructor.
func Construct4[A, B, C, D, Out any](fn func(A, B, C, D) Out) Constructor[Out] {
	return Constructor[Out]{arity: 4, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3))
	}}
}

// Construct5 adapts a func taking 5 recorded values into a Constructor.
func Construct5[A, B, C, D, E, Out any](fn func(A, B, C, D, E) Out) Constructor[Out] {
	return Constructor[Out]{arity: 5, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4))
	}}
}

// Construct6 adapts a func taking 6 recorded values into a Constructor.
func Construct6[A, B, C, D, E, F, Out any](fn func(A, B, C, D, E, F) Out) Constructor[Out] {
	return Constructor[Out]{arity: 6, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5))
	}}
}

// Construct7 adapts a func taking 7 recorded values into a Constructor.
func Construct7[A, B, C, D, E, F, G, Out any](fn func(A, B, C, D, E, F, G) Out) Constructor[Out] {
	return Constructor[Out]{arity: 7, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6))
	}}
}

// Construct8 adapts a func taking 8 recorded values into a Constructor.
func Construct8[A, B, C, D, E, F, G, H, Out any](fn func(A, B, C, D, E, F, G, H) Out) Constructor[Out] {
	return Constructor[Out]{arity: 8, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7))
	}}
}

// Construct9 adapts a func taking 9 recorded values into a Constructor.
func Construct9[A, B, C, D, E, F, G, H, I, Out any](fn func(A, B, C, D, E, F, G, H, I) Out) Constructor[Out] {
	return Constructor[Out]{arity: 9, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7), arg[I](p, v, 8))
	}}
}

// Construct10 adapts a func taking 10 recorded values into a Constructor.
func Construct10[A, B, C, D, E, F, G, H, I, J, Out any](fn func(A, B, C, D, E, F, G, H, I, J) Out) Constructor[Out] {
	return Constructor[Out]{arity: 10, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7), arg[I](p, v, 8), arg[J](p, v, 9))
	}}
}

// Construct11 adapts a func taking 11 recorded values into a Constructor.
func Construct11[A, B, C, D, E, F, G, H, I, J, K, Out any](fn func(A, B, C, D, E, F, G, H, I, J, K) Out) Constructor[Out] {
	return Constructor[Out]{arity: 11, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7), arg[I](p, v, 8), arg[J](p, v, 9), arg[K](p, v, 10))
	}}
}

// Construct12 adapts a func taking 12 recorded values into a Constructor.
func Construct12[A, B, C, D, E, F, G, H, I, J, K, L, Out any](fn func(A, B, C, D, E, F, G, H, I, J, K, L) Out) Constructor[Out] {
	return Constructor[Out]{arity: 12, fn: func(p SourcePath, v []any) Out {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7), arg[I](p, v, 8), arg[J](p, v, 9), arg[K](p, v, 10), arg[L](p, v, 11))
	}}
}

// Check0 adapts a fallible func taking 0 recorded values into a Validator.
func Check0[T any](fn func() (T, error)) Validator[T] {
	return Validator[T]{arity: 0, fn: func(SourcePath, []any) (T, error) {
		return fn()
	}}
}

// Check1 adapts a fallible func taking 1 recorded value into a Validator.
func Check1[A, T any](fn func(A) (T, error)) Validator[T] {
	return Validator[T]{arity: 1, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0))
	}}
}

// Check2 adapts a fallible func taking 2 recorded values into a Validator.
func Check2[A, B, T any](fn func(A, B) (T, error)) Validator[T] {
	return Validator[T]{arity: 2, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1))
	}}
}

// Check3 adapts a fallible func taking 3 recorded values into a Validator.
func Check3[A, B, C, T any](fn func(A, B, C) (T, error)) Validator[T] {
	return Validator[T]{arity: 3, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2))
	}}
}

// Check4 adapts a fallible func taking 4 recorded values into a Validator.
func Check4[A, B, C, D, T any](fn func(A, B, C, D) (T, error)) Validator[T] {
	return Validator[T]{arity: 4, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3))
	}}
}

// Check5 adapts a fallible func taking 5 recorded values into a Validator.
func Check5[A, B, C, D, E, T any](fn func(A, B, C, D, E) (T, error)) Validator[T] {
	return Validator[T]{arity: 5, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4))
	}}
}

// Check6 adapts a fallible func taking 6 recorded values into a Validator.
func Check6[A, B, C, D, E, F, T any](fn func(A, B, C, D, E, F) (T, error)) Validator[T] {
	return Validator[T]{arity: 6, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5))
	}}
}

// Check7 adapts a fallible func taking 7 recorded values into a Validator.
func Check7[A, B, C, D, E, F, G, T any](fn func(A, B, C, D, E, F, G) (T, error)) Validator[T] {
	return Validator[T]{arity: 7, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6))
	}}
}

// Check8 adapts a fallible func taking 8 recorded values into a Validator.
func Check8[A, B, C, D, E, F, G, H, T any](fn func(A, B, C, D, E, F, G, H) (T, error)) Validator[T] {
	return Validator[T]{arity: 8, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7))
	}}
}

// Check9 adapts a fallible func taking 9 recorded values into a Validator.
func Check9[A, B, C, D, E, F, G, H, I, T any](fn func(A, B, C, D, E, F, G, H, I) (T, error)) Validator[T] {
	return Validator[T]{arity: 9, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7), arg[I](p, v, 8))
	}}
}

// Check10 adapts a fallible func taking 10 recorded values into a Validator.
func Check10[A, B, C, D, E, F, G, H, I, J, T any](fn func(A, B, C, D, E, F, G, H, I, J) (T, error)) Validator[T] {
	return Validator[T]{arity: 10, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7), arg[I](p, v, 8), arg[J](p, v, 9))
	}}
}

// Check11 adapts a fallible func taking 11 recorded values into a Validator.
func Check11[A, B, C, D, E, F, G, H, I, J, K, T any](fn func(A, B, C, D, E, F, G, H, I, J, K) (T, error)) Validator[T] {
	return Validator[T]{arity: 11, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7), arg[I](p, v, 8), arg[J](p, v, 9), arg[K](p, v, 10))
	}}
}

// Check12 adapts a fallible func taking 12 recorded values into a Validator.
func Check12[A, B, C, D, E, F, G, H, I, J, K, L, T any](fn func(A, B, C, D, E, F, G, H, I, J, K, L) (T, error)) Validator[T] {
	return Validator[T]{arity: 12, fn: func(p SourcePath, v []any) (T, error) {
		return fn(arg[A](p, v, 0), arg[B](p, v, 1), arg[C](p, v, 2), arg[D](p, v, 3), arg[E](p, v, 4), arg[F](p, v, 5), arg[G](p, v, 6), arg[H](p, v, 7), arg[I](p, v, 8), arg[J](p, v, 9), arg[K](p, v, 10), arg[L](p, v, 11))
	}}
}
