package result

// Result is a discriminated union holding exactly one of a success
// value of type S or a failure value of type F. The zero Result is a
// Failure holding F's zero value; prefer the Success and Failure
// constructors.
//
// Operations which change a type parameter (Fold, Map, MapError, Pure)
// are package-level functions, since Go methods cannot introduce new
// type parameters. Everything else is a method.
type Result[S, F any] struct {
	value     S
	failure   F
	fulfilled bool
}

// Success returns a Result holding the success value.
func Success[S, F any](value S) Result[S, F] {
	return Result[S, F]{value: value, fulfilled: true}
}

// Failure returns a Result holding the failure value.
func Failure[S, F any](failure F) Result[S, F] {
	return Result[S, F]{failure: failure}
}

// IsSuccess returns true if this Result holds a success value.
func (r Result[S, F]) IsSuccess() bool {
	return Fold(r,
		func(S) bool { return true },
		func(F) bool { return false },
	)
}

// IsError returns true if this Result holds a failure value.
func (r Result[S, F]) IsError() bool {
	return !r.IsSuccess()
}

// Swap exchanges the two branches: a Success becomes a Failure holding
// the same value, and vice versa. Swapping twice yields the original.
func (r Result[S, F]) Swap() Result[F, S] {
	return Fold(r,
		func(value S) Result[F, S] { return Failure[F, S](value) },
		func(failure F) Result[F, S] { return Success[F, S](failure) },
	)
}

// GetOrNull returns a pointer to the success value, or nil if this
// Result is a Failure.
func (r Result[S, F]) GetOrNull() *S {
	return Fold(r,
		func(value S) *S { return &value },
		func(F) *S { return nil },
	)
}

// ExceptionOrNull returns a pointer to the failure value, or nil if
// this Result is a Success.
func (r Result[S, F]) ExceptionOrNull() *F {
	return Fold(r,
		func(S) *F { return nil },
		func(failure F) *F { return &failure },
	)
}

// GetOrThrow returns the success value, or panics with a
// *FailureError[F] wrapping the failure value.
func (r Result[S, F]) GetOrThrow() S {
	return Fold(r,
		func(value S) S { return value },
		func(failure F) S { panic(NewFailureError(failure)) },
	)
}

// GetOrElse returns the success value, or the result of calling
// onFailure with the failure value.
func (r Result[S, F]) GetOrElse(onFailure func(F) S) S {
	return Fold(r,
		func(value S) S { return value },
		onFailure,
	)
}

// GetOrDefault returns the success value, or def if this Result is a
// Failure.
func (r Result[S, F]) GetOrDefault(def S) S {
	return r.GetOrElse(func(F) S { return def })
}

// OnSuccess calls fn with the success value, if any, and returns the
// receiver unchanged. Any value fn computes is discarded.
func (r Result[S, F]) OnSuccess(fn func(S)) Result[S, F] {
	return Fold(r,
		func(value S) Result[S, F] { fn(value); return r },
		func(F) Result[S, F] { return r },
	)
}

// OnFailure calls fn with the failure value, if any, and returns the
// receiver unchanged. Any value fn computes is discarded.
func (r Result[S, F]) OnFailure(fn func(F)) Result[S, F] {
	return Fold(r,
		func(S) Result[S, F] { return r },
		func(failure F) Result[S, F] { fn(failure); return r },
	)
}
