package async_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalavosus/goresult/async"
)

func TestSuccess(t *testing.T) {
	res := async.Success[int, string](2).Await()

	require.True(t, res.IsSuccess())
	assert.Equal(t, 2, *res.GetOrNull())
}

func TestFailure(t *testing.T) {
	res := async.Failure[int, string]("bad").Await()

	require.True(t, res.IsError())
	assert.Equal(t, "bad", *res.ExceptionOrNull())
}

func TestStart(t *testing.T) {
	t.Run("succeed callback resolves success", func(t *testing.T) {
		ar := async.Start(func(succeed async.SucceedFunc[int], _ async.FailFunc[string]) {
			time.Sleep(10 * time.Millisecond)
			succeed(42)
		})

		res := ar.Await()
		require.True(t, res.IsSuccess())
		assert.Equal(t, 42, *res.GetOrNull())
	})

	t.Run("fail callback resolves failure", func(t *testing.T) {
		ar := async.Start(func(_ async.SucceedFunc[int], fail async.FailFunc[string]) {
			fail("nope")
		})

		res := ar.Await()
		require.True(t, res.IsError())
		assert.Equal(t, "nope", *res.ExceptionOrNull())
	})

	t.Run("first callback wins", func(t *testing.T) {
		ar := async.Start(func(succeed async.SucceedFunc[int], fail async.FailFunc[string]) {
			succeed(1)
			fail("too late")
		})

		assert.True(t, ar.Await().IsSuccess())
	})
}
