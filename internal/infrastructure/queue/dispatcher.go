package queue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/castingdesk/casting-api/internal/api/metrics"
	"github.com/castingdesk/casting-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
	maxAttempts    = 3
	retryBackoff   = 5 * time.Second
)

// MailDispatcher fans queued messages out to a pool of delivery workers.
// Enqueue is fire-and-forget: the HTTP request that produced the message has
// already been answered by the time delivery runs.
type MailDispatcher struct {
	mailer  ports.Mailer
	logger  zerolog.Logger
	queue   chan ports.MailMessage
	workers int
	backoff time.Duration
	wg      sync.WaitGroup
}

func NewMailDispatcher(mailer ports.Mailer, workers int, logger zerolog.Logger) *MailDispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &MailDispatcher{
		mailer:  mailer,
		logger:  logger,
		queue:   make(chan ports.MailMessage, channelBuffer),
		workers: workers,
		backoff: retryBackoff,
	}
}

// Start launches the worker pool. Workers drain the queue until ctx is
// cancelled; Wait blocks until in-flight deliveries finish.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.runWorker(ctx)
	}
}

// Wait blocks until every worker has exited.
func (d *MailDispatcher) Wait() {
	d.wg.Wait()
}

// Enqueue hands a message to the pool. When the buffer is full the message is
// dropped and logged rather than stalling the caller.
func (d *MailDispatcher) Enqueue(msg ports.MailMessage) {
	select {
	case d.queue <- msg:
		metrics.MailQueueDepth.Inc()
	default:
		d.logger.Error().Str("to", msg.To).Str("subject", msg.Subject).Msg("mail queue full, message dropped")
		metrics.MailDeliveriesTotal.WithLabelValues("dropped").Inc()
	}
}

func (d *MailDispatcher) runWorker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-d.queue:
			metrics.MailQueueDepth.Dec()
			d.deliver(ctx, msg)
		}
	}
}

// deliver retries transient failures with a linear backoff before giving up.
func (d *MailDispatcher) deliver(ctx context.Context, msg ports.MailMessage) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		lastErr = d.mailer.Send(ctx, msg)
		if lastErr == nil {
			metrics.MailDeliveriesTotal.WithLabelValues("delivered").Inc()
			d.logger.Info().Str("to", msg.To).Str("subject", msg.Subject).Int("attempt", attempt).Msg("mail delivered")
			return
		}

		d.logger.Warn().Err(lastErr).Str("to", msg.To).Int("attempt", attempt).Msg("mail delivery attempt failed")
		if attempt == maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			metrics.MailDeliveriesTotal.WithLabelValues("failed").Inc()
			return
		case <-time.After(time.Duration(attempt) * d.backoff):
		}
	}

	metrics.MailDeliveriesTotal.WithLabelValues("failed").Inc()
	d.logger.Error().Err(lastErr).Str("to", msg.To).Str("subject", msg.Subject).Msg("mail delivery abandoned")
}
