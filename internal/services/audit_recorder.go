package services

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"jadebank/internal/config"
	"jadebank/internal/models"
	"jadebank/internal/repositories"

	"golang.org/x/time/rate"
)

// auditRecorder implements AuditRecorderInterface. Record never blocks the
// calling operation: events go into a bounded buffer and a background worker
// flushes them in batches. When the buffer is full the event is dropped and
// counted; audit is best-effort by contract, money movement never waits on
// it. A circuit breaker and a rate limiter keep a struggling audit store from
// being hammered with retries.
type auditRecorder struct {
	eventRepo repositories.AuditEventRepositoryInterface
	cfg       config.AuditConfig
	breaker   CircuitBreakerInterface
	limiter   *rate.Limiter
	metrics   MetricsRecorderInterface
	logger    *slog.Logger

	buffer   chan models.AuditEvent
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	dropped  atomic.Int64
}

// NewAuditRecorder creates a new audit recorder
func NewAuditRecorder(
	eventRepo repositories.AuditEventRepositoryInterface,
	cfg config.AuditConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuditRecorderInterface {
	return &auditRecorder{
		eventRepo: eventRepo,
		cfg:       cfg,
		breaker:   NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		limiter:   rate.NewLimiter(rate.Limit(cfg.RetryPerSecond), 1),
		metrics:   metrics,
		logger:    logger,
		buffer:    make(chan models.AuditEvent, cfg.BufferSize),
		stopCh:    make(chan struct{}),
	}
}

// Record enqueues an event without blocking. On a saturated buffer the event
// is dropped and the drop is counted and logged.
func (r *auditRecorder) Record(event *models.AuditEvent) {
	if event == nil {
		return
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	select {
	case r.buffer <- *event:
		r.metrics.RecordGauge("audit.buffer_depth", float64(len(r.buffer)), nil)
	default:
		r.dropped.Add(1)
		r.metrics.IncrementCounter("audit.dropped", nil)
		r.logger.Warn("audit buffer saturated, event dropped",
			slog.String("category", event.Category),
			slog.String("action", event.Action),
			slog.String("subject", event.Subject),
			slog.Int64("dropped_total", r.dropped.Load()),
		)
	}
}

// Start launches the background flush worker
func (r *auditRecorder) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.run(ctx)
}

// Stop drains the buffer and stops the worker
func (r *auditRecorder) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	r.wg.Wait()
}

// DroppedCount reports how many events were dropped since start
func (r *auditRecorder) DroppedCount() int64 {
	return r.dropped.Load()
}

func (r *auditRecorder) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]models.AuditEvent, 0, r.cfg.FlushBatchSize)

	for {
		select {
		case <-ctx.Done():
			r.drain(batch)
			return
		case <-r.stopCh:
			r.drain(batch)
			return
		case event := <-r.buffer:
			batch = append(batch, event)
			if len(batch) >= r.cfg.FlushBatchSize {
				batch = r.flush(batch)
			}
		case <-ticker.C:
			batch = r.flush(batch)
		}
	}
}

// drain flushes the pending batch plus whatever is still buffered
func (r *auditRecorder) drain(batch []models.AuditEvent) {
	for {
		select {
		case event := <-r.buffer:
			batch = append(batch, event)
		default:
			r.flush(batch)
			return
		}
	}
}

// flush writes the batch to the store. One rate-limited retry on failure;
// after that the batch is dropped and counted, keeping memory bounded.
func (r *auditRecorder) flush(batch []models.AuditEvent) []models.AuditEvent {
	if len(batch) == 0 {
		return batch
	}

	if r.breaker.IsOpen() {
		r.dropBatch(batch, "circuit breaker open")
		return batch[:0]
	}

	if err := r.eventRepo.CreateBatch(batch); err != nil {
		r.breaker.RecordFailure()

		if r.limiter.Allow() {
			if retryErr := r.eventRepo.CreateBatch(batch); retryErr == nil {
				r.breaker.RecordSuccess()
				r.metrics.RecordGauge("audit.buffer_depth", float64(len(r.buffer)), nil)
				return batch[:0]
			}
			r.breaker.RecordFailure()
		}

		r.dropBatch(batch, err.Error())
		return batch[:0]
	}

	r.breaker.RecordSuccess()
	r.metrics.RecordGauge("audit.buffer_depth", float64(len(r.buffer)), nil)
	return batch[:0]
}

func (r *auditRecorder) dropBatch(batch []models.AuditEvent, cause string) {
	r.dropped.Add(int64(len(batch)))
	for i := 0; i < len(batch); i++ {
		r.metrics.IncrementCounter("audit.dropped", nil)
	}
	r.logger.Error("audit batch dropped",
		slog.Int("events", len(batch)),
		slog.String("cause", cause),
		slog.Int64("dropped_total", r.dropped.Load()),
	)
}
