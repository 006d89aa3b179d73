package async

import (
	"sync/atomic"
)

// Deferred is a Future which isn't initialized with a function;
// instead, a Deferred begins its lifecycle when Run is called.
// Awaiting a Deferred before Run blocks until Run happens and the
// computation resolves.
type Deferred[T any] struct {
	*task[T]
	started atomic.Bool
}

// NewDeferred returns an unstarted Deferred.
func NewDeferred[T any]() *Deferred[T] {
	d := new(Deferred[T])
	d.task = newTask[T]()

	return d
}

// Run calls fn in a goroutine, starting the Deferred's lifecycle.
// Run is multiprocess-safe: after the first call, subsequent calls
// do nothing.
func (d *Deferred[T]) Run(fn func() T) {
	if d.started.CompareAndSwap(false, true) {
		go d.run(fn)
	}
}

// Started returns whether or not Run has been called for this
// Deferred.
func (d *Deferred[T]) Started() bool {
	return d.started.Load()
}
