package async_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jalavosus/goresult/async"
	"github.com/jalavosus/goresult/internal/testutil"
)

func newDeferredFuture(t *testing.T, _ func() uint) async.Future[uint] {
	t.Helper()
	return async.NewDeferred[uint]()
}

func runDeferredFuture(t *testing.T, fn func() uint, fut async.Future[uint]) {
	t.Helper()

	def := fut.(*async.Deferred[uint])

	assert.False(t, def.Started())

	def.Run(fn)
	assert.True(t, def.Started())
}

func TestDeferred_Await(t *testing.T) {
	testutil.TestAwait(t, newDeferredFuture, runDeferredFuture, false)
}

func TestDeferred_AwaitAsync(t *testing.T) {
	testutil.TestAwait(t, newDeferredFuture, runDeferredFuture, true)
}

func TestDeferred_Run(t *testing.T) {
	const wantVal uint32 = 1

	var (
		counter   atomic.Uint32
		counterCh = make(chan uint32, 2)
	)

	fn := func() uint32 {
		val := counter.Add(1)
		counterCh <- val

		return val
	}

	def := async.NewDeferred[uint32]()

	t.Run("fn called", func(t *testing.T) {
		def.Run(fn)

		assert.Equal(t, wantVal, <-counterCh)
		assert.True(t, def.Started())
		assert.Equal(t, wantVal, counter.Load())
	})

	t.Run("fn not called again", func(t *testing.T) {
		assert.True(t, def.Started())

		def.Run(fn)

		select {
		case val := <-counterCh:
			t.Fatalf("second Run invoked fn, got %d", val)
		case <-time.After(500 * time.Millisecond):
		}

		assert.Equal(t, wantVal, counter.Load())
		assert.Equal(t, wantVal, def.Await())
	})
}
