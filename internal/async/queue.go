// Package async runs background stages over already-durable analyses.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit of background work.
type Job struct {
	AnalysisID  uuid.UUID
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Stage is one background processing step for an analysis.
type Stage interface {
	Run(ctx context.Context, analysisID uuid.UUID) error
}

type StageQueue struct {
	stage   Stage
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*StageQueue)

func WithWorkers(n int) Option {
	return func(q *StageQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *StageQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *StageQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewStageQueue(stage Stage, logger *slog.Logger, opts ...Option) *StageQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &StageQueue{
		stage:   stage,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *StageQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.stage.Run(ctx, job.AnalysisID)
					cancel()

					if err != nil {
						q.logger.Error("stage failed", "worker_id", workerID, "analysis_id", job.AnalysisID, "error", err)
					} else {
						q.logger.Info("stage completed", "worker_id", workerID, "analysis_id", job.AnalysisID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *StageQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "analysis_id", job.AnalysisID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued analysis for detail parsing", "analysis_id", job.AnalysisID)
	default:
		q.logger.Warn("queue full, applying backpressure", "analysis_id", job.AnalysisID)
		q.ch <- job
	}
	return nil
}

func (q *StageQueue) Shutdown(ctx context.Context) {
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
