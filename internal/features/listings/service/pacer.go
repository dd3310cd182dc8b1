package service

import (
	"context"
	"time"
)

// Pacer spaces out sequential calls to Hood.de.
type Pacer interface {
	// Wait blocks until the next call may start or ctx is done.
	Wait(ctx context.Context) error
}

// IntervalPacer waits a fixed interval between calls.
type IntervalPacer struct {
	Interval time.Duration
}

// Wait implements Pacer.
func (p IntervalPacer) Wait(ctx context.Context) error {
	if p.Interval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(p.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoPacing never waits. Tests use it.
type NoPacing struct{}

// Wait implements Pacer.
func (NoPacing) Wait(ctx context.Context) error {
	return ctx.Err()
}
