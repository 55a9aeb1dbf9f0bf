package worker

import (
	"context"
	"sync/atomic"

	"github.com/osse101/Stashkeeper_Go/internal/logger"
)

// Reloader rebuilds in-memory state from its backing store
type Reloader interface {
	Reload(ctx context.Context, source string) error
}

// ReloadQueue turns bursts of reload requests into at most one queued job.
// A request arriving while a job is queued is absorbed by it; a request arriving
// while a job runs queues one more so the newest data is always picked up.
type ReloadQueue struct {
	pool     *Pool
	reloader Reloader
	pending  atomic.Bool
}

// NewReloadQueue creates a ReloadQueue feeding pool
func NewReloadQueue(pool *Pool, reloader Reloader) *ReloadQueue {
	return &ReloadQueue{pool: pool, reloader: reloader}
}

// Request schedules a reload unless one is already waiting to run
func (q *ReloadQueue) Request(source string) {
	log := logger.FromContext(context.Background())
	if !q.pending.CompareAndSwap(false, true) {
		log.Debug(LogMsgReloadCoalesced, "source", source)
		return
	}
	if !q.pool.TryEnqueue(&reloadJob{queue: q, source: source}) {
		q.pending.Store(false)
		return
	}
	log.Debug(LogMsgReloadQueued, "source", source)
}

// Job returns a Job that requests a reload when processed, for use with the scheduler
func (q *ReloadQueue) Job(source string) Job {
	return JobFunc(func(context.Context) error {
		q.Request(source)
		return nil
	})
}

type reloadJob struct {
	queue  *ReloadQueue
	source string
}

func (j *reloadJob) Process(ctx context.Context) error {
	// Clear before running so changes landing mid-reload queue another pass
	j.queue.pending.Store(false)
	return j.queue.reloader.Reload(ctx, j.source)
}
