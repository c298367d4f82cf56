package core

// batch_limiter.go bounds how many catalog batches are written at once.
//
// Each batch holds one pooled connection for its whole transaction, so an
// unbounded burst of catalog submissions could starve page reads. Writers
// wait up to maxWait for a slot, then fail with ErrTooManyBatches.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyBatches is returned when every batch slot stayed busy for the
// whole wait.
var ErrTooManyBatches = errors.New("too many catalog submissions in progress")

const (
	DefaultMaxConcurrentBatches = 4
	DefaultBatchWait            = 10 * time.Second
)

// BatchLimiter is a counting semaphore over catalog batch writes.
type BatchLimiter struct {
	slots   chan struct{}
	maxWait time.Duration

	mu     sync.RWMutex
	active int
}

// NewBatchLimiter allows maxConcurrent batches at once. Non-positive
// arguments select the defaults.
func NewBatchLimiter(maxConcurrent int, maxWait time.Duration) *BatchLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentBatches
	}
	if maxWait <= 0 {
		maxWait = DefaultBatchWait
	}
	return &BatchLimiter{
		slots:   make(chan struct{}, maxConcurrent),
		maxWait: maxWait,
	}
}

// Acquire takes a slot, waiting up to maxWait. A successful Acquire must be
// paired with exactly one Release.
func (l *BatchLimiter) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(l.maxWait)
	defer timer.Stop()

	select {
	case l.slots <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrTooManyBatches
	}
}

// Release frees a slot taken by Acquire.
func (l *BatchLimiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()
	<-l.slots
}

// BatchLimiterStatus is a snapshot of the limiter.
type BatchLimiterStatus struct {
	Active        int `json:"active"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"max_concurrent"`
}

// Status returns the current limiter state.
func (l *BatchLimiter) Status() BatchLimiterStatus {
	l.mu.RLock()
	active := l.active
	l.mu.RUnlock()

	return BatchLimiterStatus{
		Active:        active,
		Available:     cap(l.slots) - len(l.slots),
		MaxConcurrent: cap(l.slots),
	}
}

// WaitForDrain blocks until no batch is in flight or ctx is done.
func (l *BatchLimiter) WaitForDrain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if l.Status().Active == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
