package async

import (
	"sync"
	"sync/atomic"
)

// Future provides an interface for suspended computations: work whose
// result is not yet available, but can be waited for. A Future resolves
// exactly once; once resolved, its value never changes and Await may be
// called any number of times.
type Future[T any] interface {
	// Await blocks until this Future's computation finishes and
	// returns its value.
	Await() T

	// AwaitAsync returns a chan with a buffer size of 1 which receives
	// the Future's value once resolved, and can be utilized in any way
	// desired. Each call returns a fresh channel.
	AwaitAsync() <-chan T
}

type task[T any] struct {
	result  atomic.Pointer[T]
	setOnce sync.Once
	done    chan struct{}
}

func newTask[T any]() *task[T] {
	t := new(task[T])
	t.done = make(chan struct{})

	return t
}

// Go returns a Future backed by fn, which is called immediately in its
// own goroutine. A panic in fn is not recovered and will terminate the
// program; fn is expected to report failure through its return value.
func Go[T any](fn func() T) Future[T] {
	t := newTask[T]()
	go t.run(fn)

	return t
}

// Resolved returns an already-resolved Future holding val.
func Resolved[T any](val T) Future[T] {
	t := newTask[T]()
	t.set(val)

	return t
}

func (t *task[T]) run(fn func() T) {
	t.set(fn())
}

func (t *task[T]) set(val T) {
	t.setOnce.Do(func() {
		t.result.Store(&val)
		close(t.done)
	})
}

func (t *task[T]) Await() T {
	if res := t.result.Load(); res != nil {
		return *res
	}

	<-t.done

	return *t.result.Load()
}

func (t *task[T]) AwaitAsync() <-chan T {
	ch := make(chan T, 1)
	go func() {
		ch <- t.Await()
	}()

	return ch
}

// thunk is a lazy Future: fn runs on the goroutine that awaits first,
// exactly once, and the value is memoized for later awaits. Derived
// computations (the combinators) are thunks, which keeps a chain
// evaluating strictly head-to-tail on the awaiting goroutine.
type thunk[T any] struct {
	runOnce sync.Once
	fn      func() T
	val     T
}

// Suspend returns a lazy Future over fn. fn is not called until the
// Future is first awaited; a panic in fn propagates to the awaiting
// goroutine.
func Suspend[T any](fn func() T) Future[T] {
	return &thunk[T]{fn: fn}
}

func (t *thunk[T]) Await() T {
	t.runOnce.Do(func() {
		t.val = t.fn()
		t.fn = nil
	})

	return t.val
}

func (t *thunk[T]) AwaitAsync() <-chan T {
	ch := make(chan T, 1)
	go func() {
		ch <- t.Await()
	}()

	return ch
}
