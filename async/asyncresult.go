// Package async extends Result with a suspension-aware combinator
// layer. An AsyncResult is not a new concrete type, just a Future whose
// eventual resolution is a Result; every combinator awaits the
// receiver, delegates the branch logic to the corresponding result
// operation, and rewraps the outcome in a new suspended computation.
package async

import (
	"github.com/jalavosus/goresult"
)

// AsyncResult is a suspended computation whose eventual resolution is
// a Result. Combinators which change a type parameter cannot be
// interface methods, so the whole combinator set lives at package
// level, receiver first.
type AsyncResult[S, F any] = Future[result.Result[S, F]]

type (
	// SucceedFunc is passed to functions run by Start, to be called
	// with the success value.
	SucceedFunc[S any] func(S)

	// FailFunc is passed to functions run by Start, to be called with
	// the failure value.
	FailFunc[F any] func(F)

	// Func represents a wrapper function, to be wrapped around
	// fallible work run by Start. It must call exactly one of the two
	// callbacks exactly once.
	Func[S, F any] func(SucceedFunc[S], FailFunc[F])
)

// Success returns an already-resolved AsyncResult holding a success
// value.
func Success[S, F any](value S) AsyncResult[S, F] {
	return Resolved(result.Success[S, F](value))
}

// Failure returns an already-resolved AsyncResult holding a failure
// value.
func Failure[S, F any](failure F) AsyncResult[S, F] {
	return Resolved(result.Failure[S, F](failure))
}

// Start calls fn immediately in a goroutine and returns an AsyncResult
// which resolves with whichever callback fn invokes first.
func Start[S, F any](fn Func[S, F]) AsyncResult[S, F] {
	t := newTask[result.Result[S, F]]()
	go fn(succeedFunc(t), failFunc(t))

	return t
}

func succeedFunc[S, F any](t *task[result.Result[S, F]]) SucceedFunc[S] {
	return func(value S) {
		t.set(result.Success[S, F](value))
	}
}

func failFunc[S, F any](t *task[result.Result[S, F]]) FailFunc[F] {
	return func(failure F) {
		t.set(result.Failure[S, F](failure))
	}
}
