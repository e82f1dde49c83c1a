package async

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/carbux/fuel-receipts/internal/ocr"
)

const attemptHeader = "x-attempt"

// RabbitConfig holds broker settings for the import-jobs queue.
type RabbitConfig struct {
	URL         string
	QueueName   string
	DLQName     string
	Prefetch    int
	Workers     int
	MaxAttempts int
	JobTimeout  time.Duration
}

// Rabbit is the broker-backed delivery collaborator: a durable queue with a
// dead-letter queue, persistent messages, and manual acks. It implements
// Queue on the publishing side and runs Handler on the consuming side.
type Rabbit struct {
	cfg     RabbitConfig
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
}

func NewRabbit(cfg RabbitConfig, logger *slog.Logger) (*Rabbit, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Prefetch <= 0 {
		cfg.Prefetch = 10
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = 3 * time.Minute
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	r := &Rabbit{cfg: cfg, conn: conn, channel: channel, logger: logger}
	if err := r.declare(); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, err
	}
	return r, nil
}

func (r *Rabbit) declare() error {
	if _, err := r.channel.QueueDeclare(r.cfg.DLQName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare DLQ: %w", err)
	}
	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": r.cfg.DLQName,
	}
	if _, err := r.channel.QueueDeclare(r.cfg.QueueName, true, false, false, false, args); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	if err := r.channel.Qos(r.cfg.Prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}
	return nil
}

func (r *Rabbit) Enqueue(ctx context.Context, msg ProcessImportJobMessage) error {
	return r.publish(ctx, msg)
}

func (r *Rabbit) publish(ctx context.Context, msg ProcessImportJobMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}
	err = r.channel.PublishWithContext(ctx, "", r.cfg.QueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Headers:      amqp.Table{attemptHeader: int32(msg.Attempt)},
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	r.logger.Info("queued job for processing", "job_id", msg.ImportJobID, "attempt", msg.Attempt)
	return nil
}

// Consume runs the worker pool until ctx is cancelled. Each delivery is
// handled exactly as the in-process queue does: ack on success or permanent
// resolution, republish with an incremented attempt on retryable failure,
// dead-letter once the budget is spent.
func (r *Rabbit) Consume(ctx context.Context, handler Handler) error {
	deliveries, err := r.channel.Consume(r.cfg.QueueName, "import-worker", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r.logger.Info("worker started", "worker_id", workerID)
			for {
				select {
				case <-ctx.Done():
					r.logger.Info("worker stopping", "worker_id", workerID)
					return
				case d, ok := <-deliveries:
					if !ok {
						r.logger.Info("worker stopped (channel closed)", "worker_id", workerID)
						return
					}
					r.deliver(ctx, workerID, handler, d)
				}
			}
		}(i + 1)
	}

	<-ctx.Done()
	wg.Wait()
	return ctx.Err()
}

func (r *Rabbit) deliver(ctx context.Context, workerID int, handler Handler, d amqp.Delivery) {
	var msg ProcessImportJobMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		r.logger.Error("undecodable message, dead-lettering", "worker_id", workerID, "error", err)
		_ = d.Nack(false, false)
		return
	}
	if a, ok := d.Headers[attemptHeader].(int32); ok && int(a) > msg.Attempt {
		msg.Attempt = int(a)
	}

	hctx, cancel := context.WithTimeout(ctx, r.cfg.JobTimeout)
	err := handler.Handle(hctx, msg)
	cancel()

	switch {
	case err == nil:
		_ = d.Ack(false)
		r.logger.Info("job processed", "worker_id", workerID, "job_id", msg.ImportJobID, "attempt", msg.Attempt)
	case ocr.IsPermanent(err):
		// job is already FAILED; the message itself is done
		_ = d.Ack(false)
		r.logger.Warn("job failed permanently", "worker_id", workerID, "job_id", msg.ImportJobID, "error", err)
	default:
		if msg.Attempt >= r.cfg.MaxAttempts {
			r.logger.Error("retry budget exhausted, dead-lettering", "worker_id", workerID, "job_id", msg.ImportJobID, "attempts", msg.Attempt, "error", err)
			ectx, cancel := context.WithTimeout(context.Background(), r.cfg.JobTimeout)
			handler.Exhausted(ectx, msg, err)
			cancel()
			_ = d.Nack(false, false)
			return
		}
		msg.Attempt++
		if perr := r.publish(context.Background(), msg); perr != nil {
			// keep the original delivery alive for broker-side redelivery
			r.logger.Error("republish failed, requeueing delivery", "worker_id", workerID, "job_id", msg.ImportJobID, "error", perr)
			_ = d.Nack(false, true)
			return
		}
		_ = d.Ack(false)
		r.logger.Warn("retryable failure, redelivered", "worker_id", workerID, "job_id", msg.ImportJobID, "attempt", msg.Attempt, "error", err)
	}
}

func (r *Rabbit) Shutdown(_ context.Context) {
	if err := r.channel.Close(); err != nil {
		r.logger.Warn("channel close failed", "error", err)
	}
	if err := r.conn.Close(); err != nil {
		r.logger.Warn("connection close failed", "error", err)
	}
}
