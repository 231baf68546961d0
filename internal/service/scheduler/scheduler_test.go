package scheduler

import (
	"bytes"
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sandevgo/secretowatch/internal/service/cycle"
	"github.com/sandevgo/secretowatch/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls    atomic.Int32
	inFlight atomic.Int32
	overlap  atomic.Bool
	delay    time.Duration
}

func (r *countingRunner) RunOnce(ctx context.Context) (cycle.Report, error) {
	if r.inFlight.Add(1) > 1 {
		r.overlap.Store(true)
	}
	defer r.inFlight.Add(-1)

	r.calls.Add(1)
	time.Sleep(r.delay)
	return cycle.Report{}, nil
}

// syncBuffer guards the log buffer shared with the cron goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestScheduler_RunsImmediately(t *testing.T) {
	runner := &countingRunner{}
	s := New(runner, time.Hour)

	ctx, cancel := context.WithCancel(log.NewTestContext(context.Background(), &syncBuffer{}))
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	assert.Eventually(t, func() bool {
		return runner.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	require.NoError(t, s.Shutdown(ctx))
	assert.Equal(t, int32(1), runner.calls.Load())
}

func TestScheduler_NoOverlap(t *testing.T) {
	runner := &countingRunner{delay: 1500 * time.Millisecond}
	s := New(runner, time.Second)

	ctx, cancel := context.WithCancel(log.NewTestContext(context.Background(), &syncBuffer{}))
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(3500 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	require.NoError(t, s.Shutdown(ctx))

	assert.False(t, runner.overlap.Load(), "cycles must never run concurrently")
	assert.GreaterOrEqual(t, runner.calls.Load(), int32(2))
}

func TestScheduler_ShutdownBeforeStart(t *testing.T) {
	s := New(&countingRunner{}, 0)
	assert.Equal(t, defaultInterval, s.Interval)
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestScheduler_StartAfterShutdown(t *testing.T) {
	runner := &countingRunner{}
	s := New(runner, time.Second)
	ctx := log.NewTestContext(context.Background(), &syncBuffer{})

	require.NoError(t, s.Shutdown(ctx))

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Start kept running after Shutdown")
	}

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, runner.calls.Load())
	assert.Nil(t, s.cron)
}
