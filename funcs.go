package result

// Fold destructures r into a plain value by calling exactly one of the
// two branch functions. Fold is the canonical destructuring primitive:
// every other operation in this package is defined in terms of it, so
// the success/failure branch is decided in exactly one place.
func Fold[S, F, W any](r Result[S, F], onSuccess func(S) W, onFailure func(F) W) W {
	if r.fulfilled {
		return onSuccess(r.value)
	}

	return onFailure(r.failure)
}

// Map transforms the success value with fn. A Failure passes through
// unchanged and fn is never called.
func Map[S, F, W any](r Result[S, F], fn func(S) W) Result[W, F] {
	return Fold(r,
		func(value S) Result[W, F] { return Success[W, F](fn(value)) },
		func(failure F) Result[W, F] { return Failure[W, F](failure) },
	)
}

// MapError transforms the failure value with fn. A Success passes
// through unchanged and fn is never called.
func MapError[S, F, W any](r Result[S, F], fn func(F) W) Result[S, W] {
	return Fold(r,
		func(value S) Result[S, W] { return Success[S, W](value) },
		func(failure F) Result[S, W] { return Failure[S, W](fn(failure)) },
	)
}

// Pure replaces the success value with newValue, discarding the prior
// payload. A Failure stays a Failure.
func Pure[S, F, W any](r Result[S, F], newValue W) Result[W, F] {
	return Map(r, func(S) W { return newValue })
}
