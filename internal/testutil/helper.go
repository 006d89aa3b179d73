package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalavosus/goresult/async"
)

const awaitTimeout = 2 * time.Second

const wantVal uint = 42

type TestCase struct {
	name   string
	fnWait time.Duration
}

var testCases = []TestCase{
	{
		name:   "resolves-immediately",
		fnWait: 0,
	},
	{
		name:   "resolves-after-delay",
		fnWait: 150 * time.Millisecond,
	},
}

type (
	FutureMaker  func(*testing.T, func() uint) async.Future[uint]
	FutureRunner func(*testing.T, func() uint, async.Future[uint])
)

func makeWork(fnWait time.Duration) func() uint {
	return func() uint {
		if fnWait > 0 {
			time.Sleep(fnWait)
		}

		return wantVal
	}
}

// TestAwait exercises any Future producer against the shared delay
// cases, via either Await or AwaitAsync.
func TestAwait(
	t *testing.T,
	newFut FutureMaker,
	runFut FutureRunner,
	awaitAsync bool,
) {

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var val uint

			work := makeWork(tc.fnWait)
			fut := newFut(t, work)
			runFut(t, work, fut)

			if awaitAsync {
				select {
				case val = <-fut.AwaitAsync():
				case <-time.After(awaitTimeout):
					require.FailNow(t, "future did not resolve before timeout")
				}
			} else {
				val = fut.Await()
			}

			assert.Equal(t, wantVal, val)

			// resolved once; a second await sees the memoized value
			assert.Equal(t, wantVal, fut.Await())
		})
	}
}
