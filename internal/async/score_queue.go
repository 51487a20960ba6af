package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/ecotrace/carboncore/constants"
)

// ScoreFunc scores one job. The queue only tracks success or failure; the
// handler owns result delivery.
type ScoreFunc func(ctx context.Context, job Job) error

type ScoreQueue struct {
	score   ScoreFunc
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	// mu is held across sends on ch so Shutdown can never close the channel
	// mid-send.
	mu     sync.Mutex
	closed bool

	// statusMu is separate so workers keep draining (and updating statuses)
	// while an Enqueue blocks on a full channel holding mu.
	statusMu sync.Mutex
	status   map[uuid.UUID]constants.ScanStatus
}

type Option func(*ScoreQueue)

func WithWorkers(n int) Option {
	return func(q *ScoreQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ScoreQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ScoreQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewScoreQueue(score ScoreFunc, logger *slog.Logger, opts ...Option) *ScoreQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ScoreQueue{
		score:   score,
		logger:  logger,
		workers: 4,
		timeout: 30 * time.Second,
		ch:      make(chan Job, 256),
		status:  make(map[uuid.UUID]constants.ScanStatus),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ScoreQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					q.setStatus(job.ID, constants.ScanStatusRunning)
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.score(ctx, job)
					cancel()

					if err != nil {
						q.setStatus(job.ID, constants.ScanStatusFailed)
						q.logger.Error("scoring failed", "worker_id", workerID, "job_id", job.ID, "path", job.Path, "error", err)
					} else {
						q.setStatus(job.ID, constants.ScanStatusScored)
						q.logger.Info("scored document", "worker_id", workerID, "job_id", job.ID, "path", job.Path)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ScoreQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.ID)
		return nil
	}
	q.setStatus(job.ID, constants.ScanStatusQueued)
	select {
	case q.ch <- job:
		q.logger.Info("queued document for scoring", "job_id", job.ID, "path", job.Path)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.ID)
		q.ch <- job
	}
	return nil
}

// Status reports the last observed state of a job, or Queued for unknown IDs.
func (q *ScoreQueue) Status(id uuid.UUID) constants.ScanStatus {
	q.statusMu.Lock()
	defer q.statusMu.Unlock()
	if s, ok := q.status[id]; ok {
		return s
	}
	return constants.ScanStatusQueued
}

func (q *ScoreQueue) setStatus(id uuid.UUID, s constants.ScanStatus) {
	q.statusMu.Lock()
	q.status[id] = s
	q.statusMu.Unlock()
}

func (q *ScoreQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
