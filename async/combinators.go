package async

import (
	"github.com/jalavosus/goresult"
)

// Every combinator below is lazy: the returned Future awaits the
// receiver on the goroutine that first awaits it, applies the
// transformation there, and memoizes the outcome. For any chain
// a→b→c this means a's full effect, side effects included, is
// observable before b begins evaluating. Transformation functions are
// free to block; a transformation that panics is not caught, the panic
// propagates to the awaiting goroutine.

// FlatMap transforms the success value into a new AsyncResult, which
// is awaited and returned as-is: a Failure produced by fn
// short-circuits the rest of the chain. A Failure in ar passes through
// unchanged and fn is never called.
func FlatMap[S, F, W any](ar AsyncResult[S, F], fn func(S) AsyncResult[W, F]) AsyncResult[W, F] {
	return Suspend(func() result.Result[W, F] {
		return result.Fold(ar.Await(),
			func(value S) result.Result[W, F] { return fn(value).Await() },
			func(failure F) result.Result[W, F] { return result.Failure[W, F](failure) },
		)
	})
}

// FlatMapError transforms the failure value into a new AsyncResult,
// which is awaited and returned as-is. A Success passes through
// unchanged and fn is never called.
func FlatMapError[S, F, W any](ar AsyncResult[S, F], fn func(F) AsyncResult[S, W]) AsyncResult[S, W] {
	return Suspend(func() result.Result[S, W] {
		return result.Fold(ar.Await(),
			func(value S) result.Result[S, W] { return result.Success[S, W](value) },
			func(failure F) result.Result[S, W] { return fn(failure).Await() },
		)
	})
}

// Map transforms the success value with fn. A Failure passes through
// unchanged and fn is never called.
func Map[S, F, W any](ar AsyncResult[S, F], fn func(S) W) AsyncResult[W, F] {
	return Suspend(func() result.Result[W, F] {
		return result.Map(ar.Await(), fn)
	})
}

// MapError transforms the failure value with fn. A Success passes
// through unchanged and fn is never called.
func MapError[S, F, W any](ar AsyncResult[S, F], fn func(F) W) AsyncResult[S, W] {
	return Suspend(func() result.Result[S, W] {
		return result.MapError(ar.Await(), fn)
	})
}

// Pure replaces the success value with newValue, discarding the prior
// payload. A Failure stays a Failure.
func Pure[S, F, W any](ar AsyncResult[S, F], newValue W) AsyncResult[W, F] {
	return Suspend(func() result.Result[W, F] {
		return result.Pure(ar.Await(), newValue)
	})
}

// PureError replaces the failure value with newFailure, discarding the
// prior payload. A Success stays a Success.
func PureError[S, F, W any](ar AsyncResult[S, F], newFailure W) AsyncResult[S, W] {
	return MapError(ar, func(F) W { return newFailure })
}

// Swap exchanges the two branches, preserving values. Swapping twice
// resolves to the original Result.
func Swap[S, F any](ar AsyncResult[S, F]) AsyncResult[F, S] {
	return Suspend(func() result.Result[F, S] {
		return ar.Await().Swap()
	})
}

// Recover transforms the failure value into a new AsyncResult, which
// is awaited and returned as-is and may itself still be a Failure,
// with a new failure type. A Success passes through unchanged and fn
// is never called.
func Recover[S, F, R any](ar AsyncResult[S, F], fn func(F) AsyncResult[S, R]) AsyncResult[S, R] {
	return Suspend(func() result.Result[S, R] {
		return result.Fold(ar.Await(),
			func(value S) result.Result[S, R] { return result.Success[S, R](value) },
			func(failure F) result.Result[S, R] { return fn(failure).Await() },
		)
	})
}

// OnSuccess calls fn with the success value, if any, once ar resolves.
// The resolved Result passes through unchanged regardless of branch.
func OnSuccess[S, F any](ar AsyncResult[S, F], fn func(S)) AsyncResult[S, F] {
	return Suspend(func() result.Result[S, F] {
		return ar.Await().OnSuccess(fn)
	})
}

// OnFailure calls fn with the failure value, if any, once ar resolves.
// The resolved Result passes through unchanged regardless of branch.
func OnFailure[S, F any](ar AsyncResult[S, F], fn func(F)) AsyncResult[S, F] {
	return Suspend(func() result.Result[S, F] {
		return ar.Await().OnFailure(fn)
	})
}

// Fold destructures the eventual Result into a plain value by calling
// exactly one of the two branch functions.
func Fold[S, F, W any](ar AsyncResult[S, F], onSuccess func(S) W, onFailure func(F) W) Future[W] {
	return Suspend(func() W {
		return result.Fold(ar.Await(), onSuccess, onFailure)
	})
}

// GetOrNull resolves to a pointer to the success value, or nil on the
// failure branch.
func GetOrNull[S, F any](ar AsyncResult[S, F]) Future[*S] {
	return Suspend(func() *S {
		return ar.Await().GetOrNull()
	})
}

// ExceptionOrNull resolves to a pointer to the failure value, or nil
// on the success branch.
func ExceptionOrNull[S, F any](ar AsyncResult[S, F]) Future[*F] {
	return Suspend(func() *F {
		return ar.Await().ExceptionOrNull()
	})
}

// IsSuccess resolves to true if the eventual Result holds a success
// value.
func IsSuccess[S, F any](ar AsyncResult[S, F]) Future[bool] {
	return Suspend(func() bool {
		return ar.Await().IsSuccess()
	})
}

// IsError resolves to true if the eventual Result holds a failure
// value.
func IsError[S, F any](ar AsyncResult[S, F]) Future[bool] {
	return Suspend(func() bool {
		return ar.Await().IsError()
	})
}

// GetOrThrow resolves to the success value. On the failure branch,
// awaiting the returned Future panics with a *result.FailureError[F]
// wrapping the failure value.
func GetOrThrow[S, F any](ar AsyncResult[S, F]) Future[S] {
	return Suspend(func() S {
		return ar.Await().GetOrThrow()
	})
}

// GetOrElse resolves to the success value, or to onFailure applied to
// the failure value.
func GetOrElse[S, F any](ar AsyncResult[S, F], onFailure func(F) S) Future[S] {
	return Suspend(func() S {
		return ar.Await().GetOrElse(onFailure)
	})
}

// GetOrDefault resolves to the success value, or to def on the failure
// branch.
func GetOrDefault[S, F any](ar AsyncResult[S, F], def S) Future[S] {
	return Suspend(func() S {
		return ar.Await().GetOrDefault(def)
	})
}
