package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEveryRunsImmediatelyAndTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan struct{})
	go func() {
		Every(ctx, 10*time.Millisecond, "test", func(ctx context.Context) error {
			if runs.Add(1) >= 3 {
				cancel()
			}
			return nil
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
	assert.GreaterOrEqual(t, runs.Load(), int32(3))
}

func TestEveryKeepsGoingAfterError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	done := make(chan struct{})
	go func() {
		Every(ctx, 10*time.Millisecond, "test", func(ctx context.Context) error {
			if runs.Add(1) >= 2 {
				cancel()
				return nil
			}
			return errors.New("transient")
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler stopped on task error")
	}
	assert.GreaterOrEqual(t, runs.Load(), int32(2))
}
