package async_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jalavosus/goresult/async"
	"github.com/jalavosus/goresult/internal/testutil"
)

func newGoFuture(t *testing.T, fn func() uint) async.Future[uint] {
	t.Helper()
	return async.Go(fn)
}

func runGoFuture(*testing.T, func() uint, async.Future[uint]) {}

func TestGo_Await(t *testing.T) {
	testutil.TestAwait(t, newGoFuture, runGoFuture, false)
}

func TestGo_AwaitAsync(t *testing.T) {
	testutil.TestAwait(t, newGoFuture, runGoFuture, true)
}

func TestResolved(t *testing.T) {
	fut := async.Resolved(uint(7))

	assert.Equal(t, uint(7), fut.Await())
	assert.Equal(t, uint(7), <-fut.AwaitAsync())
}

func TestSuspend(t *testing.T) {
	t.Run("fn not called before first await", func(t *testing.T) {
		var calls atomic.Uint32

		fut := async.Suspend(func() uint {
			calls.Add(1)
			return 1
		})

		assert.Zero(t, calls.Load())

		assert.Equal(t, uint(1), fut.Await())
		assert.Equal(t, uint32(1), calls.Load())
	})

	t.Run("fn called once across repeated awaits", func(t *testing.T) {
		var calls atomic.Uint32

		fut := async.Suspend(func() uint32 {
			return calls.Add(1)
		})

		assert.Equal(t, uint32(1), fut.Await())
		assert.Equal(t, uint32(1), fut.Await())
		assert.Equal(t, uint32(1), <-fut.AwaitAsync())
		assert.Equal(t, uint32(1), calls.Load())
	})

	t.Run("fn called once across concurrent awaits", func(t *testing.T) {
		var calls atomic.Uint32

		fut := async.Suspend(func() uint32 {
			return calls.Add(1)
		})

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, uint32(1), fut.Await())
			}()
		}
		wg.Wait()

		assert.Equal(t, uint32(1), calls.Load())
	})

	t.Run("panic in fn reaches the awaiting goroutine", func(t *testing.T) {
		fut := async.Suspend(func() uint {
			panic("transform blew up")
		})

		assert.PanicsWithValue(t, "transform blew up", func() {
			fut.Await()
		})
	})
}
