package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stashkeeper_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	pool := NewPool(1, TestQueueSize)
	pool.Start()

	var ran atomic.Int32
	pool.Enqueue(JobFunc(func(context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(context.Context) error { ran.Add(1); return nil }))

	require.Eventually(t, func() bool { return ran.Load() == 1 }, time.Second, 5*time.Millisecond)
	pool.Stop()
	pool.Stop()
	checker.Check(1)
}

func TestPool_TryEnqueueFullQueue(t *testing.T) {
	pool := NewPool(1, 1)
	// not started, so the queue never drains
	assert.True(t, pool.TryEnqueue(JobFunc(func(context.Context) error { return nil })))
	assert.False(t, pool.TryEnqueue(JobFunc(func(context.Context) error { return nil })))
	pool.Stop()
}

type blockingReloader struct {
	mu      sync.Mutex
	sources []string
	release chan struct{}
	started chan struct{}
}

func (r *blockingReloader) Reload(_ context.Context, source string) error {
	r.mu.Lock()
	r.sources = append(r.sources, source)
	r.mu.Unlock()
	r.started <- struct{}{}
	<-r.release
	return nil
}

func (r *blockingReloader) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sources)
}

func TestReloadQueue_CoalescesBursts(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	reloader := &blockingReloader{release: make(chan struct{}), started: make(chan struct{}, 4)}
	queue := NewReloadQueue(pool, reloader)

	// Burst before workers start: only one job is queued
	queue.Request("notify")
	queue.Request("notify")
	queue.Request("schedule")

	pool.Start()
	defer pool.Stop()

	<-reloader.started
	// A request while the reload runs queues exactly one follow-up
	queue.Request("notify")
	queue.Request("notify")
	reloader.release <- struct{}{}

	<-reloader.started
	reloader.release <- struct{}{}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 2, reloader.count())
}

func TestReloadQueue_JobRequestsReload(t *testing.T) {
	pool := NewPool(1, TestQueueSize)
	reloader := &blockingReloader{release: make(chan struct{}, 1), started: make(chan struct{}, 1)}
	reloader.release <- struct{}{}
	queue := NewReloadQueue(pool, reloader)

	require.NoError(t, queue.Job("schedule").Process(context.Background()))

	pool.Start()
	defer pool.Stop()
	<-reloader.started
	assert.Equal(t, 1, reloader.count())
}
