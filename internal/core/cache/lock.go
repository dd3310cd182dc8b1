package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotHeld is returned by Release when the lock expired or belongs to someone else.
var ErrLockNotHeld = errors.New("lock not held")

// Lock is a single-holder lease on a cache key. Each Acquire stores a fresh token so a
// holder whose lease expired cannot release a lock taken over by another process.
type Lock struct {
	cache Cache
	key   string
	ttl   time.Duration
	token string
}

// NewLock creates a lock on key with the given lease duration.
func NewLock(c Cache, key string, ttl time.Duration) *Lock {
	return &Lock{cache: c, key: key, ttl: ttl}
}

// Key returns the cache key guarded by the lock.
func (l *Lock) Key() string {
	return l.key
}

// Acquire tries to take the lock without waiting.
func (l *Lock) Acquire(ctx context.Context) (bool, error) {
	token := uuid.NewString()
	ok, err := l.cache.SetNX(ctx, l.key, []byte(token), l.ttl)
	if err != nil {
		return false, fmt.Errorf("acquire %s: %w", l.key, err)
	}
	if ok {
		l.token = token
	}
	return ok, nil
}

// Release frees the lock if this instance still holds it.
func (l *Lock) Release(ctx context.Context) error {
	if l.token == "" {
		return ErrLockNotHeld
	}
	ok, err := l.cache.CompareAndDelete(ctx, l.key, []byte(l.token))
	l.token = ""
	if err != nil {
		return fmt.Errorf("release %s: %w", l.key, err)
	}
	if !ok {
		return ErrLockNotHeld
	}
	return nil
}
