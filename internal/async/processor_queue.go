package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/carbux/fuel-receipts/internal/ocr"
)

// ProcessorQueue is the in-process delivery collaborator for single-binary
// and dev runs: a buffered channel drained by a worker pool, with bounded
// re-enqueue of retryable failures. It mirrors the at-least-once contract the
// rabbitmq transport provides in deployment.
type ProcessorQueue struct {
	handler     Handler
	logger      *slog.Logger
	workers     int
	timeout     time.Duration
	maxAttempts int
	retryDelay  time.Duration

	ch   chan ProcessImportJobMessage
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan ProcessImportJobMessage, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d >= 0 {
			q.retryDelay = d
		}
	}
}

func NewProcessorQueue(handler Handler, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		handler:     handler,
		logger:      logger,
		workers:     4,
		timeout:     3 * time.Minute,
		maxAttempts: 5,
		retryDelay:  5 * time.Second,
		ch:          make(chan ProcessImportJobMessage, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for msg := range q.ch {
					q.deliver(workerID, msg)
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) deliver(workerID int, msg ProcessImportJobMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	err := q.handler.Handle(ctx, msg)
	cancel()

	switch {
	case err == nil:
		q.logger.Info("job processed", "worker_id", workerID, "job_id", msg.ImportJobID, "attempt", msg.Attempt)
	case ocr.IsPermanent(err):
		// handler already moved the job to FAILED; nothing to redeliver
		q.logger.Warn("job failed permanently", "worker_id", workerID, "job_id", msg.ImportJobID, "error", err)
	default:
		if msg.Attempt >= q.maxAttempts {
			q.logger.Error("retry budget exhausted", "worker_id", workerID, "job_id", msg.ImportJobID, "attempts", msg.Attempt, "error", err)
			ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
			q.handler.Exhausted(ctx, msg, err)
			cancel()
			return
		}
		q.logger.Warn("retryable failure, redelivering", "worker_id", workerID, "job_id", msg.ImportJobID, "attempt", msg.Attempt, "error", err)
		msg.Attempt++
		go func(m ProcessImportJobMessage) {
			time.Sleep(q.retryDelay)
			_ = q.Enqueue(context.Background(), m)
		}(msg)
	}
}

func (q *ProcessorQueue) Enqueue(_ context.Context, msg ProcessImportJobMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", msg.ImportJobID)
		return nil
	}
	select {
	case q.ch <- msg:
		q.logger.Info("queued job for processing", "job_id", msg.ImportJobID, "attempt", msg.Attempt)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", msg.ImportJobID)
		q.ch <- msg
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
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
