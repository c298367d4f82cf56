package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBatchLimiterAcquireRelease(t *testing.T) {
	l := NewBatchLimiter(2, time.Second)
	ctx := context.Background()

	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("first Acquire() error = %v", err)
	}
	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("second Acquire() error = %v", err)
	}
	if got := l.Status(); got.Active != 2 || got.Available != 0 || got.MaxConcurrent != 2 {
		t.Errorf("Status() = %+v", got)
	}

	l.Release()
	l.Release()
	if got := l.Status(); got.Active != 0 || got.Available != 2 {
		t.Errorf("Status() after release = %+v", got)
	}
}

func TestBatchLimiterTimeout(t *testing.T) {
	l := NewBatchLimiter(1, 20*time.Millisecond)
	ctx := context.Background()
	if err := l.Acquire(ctx); err != nil {
		t.Fatal(err)
	}
	defer l.Release()

	if err := l.Acquire(ctx); !errors.Is(err, ErrTooManyBatches) {
		t.Errorf("Acquire() on a full limiter = %v, want ErrTooManyBatches", err)
	}
}

func TestBatchLimiterCancelled(t *testing.T) {
	l := NewBatchLimiter(1, time.Minute)
	if err := l.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer l.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Acquire(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Acquire() with cancelled ctx = %v, want context.Canceled", err)
	}
}

func TestBatchLimiterWaitForDrain(t *testing.T) {
	l := NewBatchLimiter(1, time.Second)
	if err := l.WaitForDrain(context.Background()); err != nil {
		t.Fatalf("idle WaitForDrain() error = %v", err)
	}

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	go func() {
		time.Sleep(30 * time.Millisecond)
		l.Release()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := l.WaitForDrain(ctx); err != nil {
		t.Errorf("WaitForDrain() error = %v", err)
	}

	if err := l.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer l.Release()
	short, cancelShort := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelShort()
	if err := l.WaitForDrain(short); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitForDrain() with busy slot = %v, want DeadlineExceeded", err)
	}
}

func TestNewBatchLimiterDefaults(t *testing.T) {
	l := NewBatchLimiter(0, 0)
	if l.Status().MaxConcurrent != DefaultMaxConcurrentBatches || l.maxWait != DefaultBatchWait {
		t.Errorf("defaults not applied: %+v, wait %s", l.Status(), l.maxWait)
	}
}
