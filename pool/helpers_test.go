package pool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counted tracks live instances through a shared counter; Drop decrements it.
type counted struct {
	id   int
	live *atomic.Int64
}

func newCounted(id int, live *atomic.Int64) counted {
	live.Add(1)
	return counted{id: id, live: live}
}

func (c *counted) Drop() {
	c.live.Add(-1)
}

func assertStats(t *testing.T, s Stats, head, free, initialized int) {
	t.Helper()
	assert.Equal(t, head, s.Head, "head")
	assert.Equal(t, free, s.Free, "free")
	assert.Equal(t, initialized, s.Initialized, "initialized")
}

func assertPanicsWith(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
