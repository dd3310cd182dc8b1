package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLock_SingleHolder(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()

	first := NewLock(adapter, "lock:orders", time.Minute)
	second := NewLock(adapter, "lock:orders", time.Minute)

	ok, err := first.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, first.Release(ctx))

	ok, err = second.Acquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, second.Release(ctx))
}

func TestLock_ReleaseWithoutAcquire(t *testing.T) {
	adapter, _ := newTestAdapter(t)

	lock := NewLock(adapter, "lock:orders", time.Minute)
	assert.ErrorIs(t, lock.Release(context.Background()), ErrLockNotHeld)
}

func TestLock_ExpiredLeaseIsNotReleasedByOldHolder(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	stale := NewLock(adapter, "lock:orders", time.Second)
	ok, err := stale.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	fresh := NewLock(adapter, "lock:orders", time.Minute)
	ok, err = fresh.Acquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	assert.ErrorIs(t, stale.Release(ctx), ErrLockNotHeld)
	assert.True(t, mr.Exists("lock:orders"))
	assert.NoError(t, fresh.Release(ctx))
}
