// Package webhook forwards board changes to an external HTTP endpoint. It
// subscribes to the project store, queues one payload per notification and
// delivers them from a single worker through the instrumented HTTP client.
package webhook

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/platform/httpclient"
	"github.com/ianto3/projectboard/internal/platform/logging"
	"github.com/ianto3/projectboard/internal/platform/telemetry"
	"github.com/ianto3/projectboard/internal/ports"
)

// Name identifies the notifier in health checks, traces and metrics.
const Name = "webhook"

// Sender posts one JSON payload. *httpclient.Client implements it.
type Sender interface {
	PostJSON(ctx context.Context, path string, payload any) error
	HealthCheck(ctx context.Context) error
}

var (
	_ Sender              = (*httpclient.Client)(nil)
	_ ports.HealthChecker = (*Notifier)(nil)
)

// Notifier is a store subscriber that delivers change payloads to a webhook.
// Enqueueing never blocks the store; when the queue is full the payload is
// dropped.
type Notifier struct {
	sender  Sender
	queue   chan Payload
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	lastCount int
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithClock overrides the timestamp source for payloads.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// New creates a Notifier with a queue of queueSize payloads. A nil metrics
// skips instrumentation; a nil logger discards output.
func New(sender Sender, queueSize int, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Notifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	n := &Notifier{
		sender:  sender,
		queue:   make(chan Payload, max(queueSize, 1)),
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Attach watches store. The replayed snapshot of records already present
// is the baseline and is not announced.
func (n *Notifier) Attach(store ports.ProjectStore) (unsubscribe func()) {
	baseline := true
	return store.Watch(func(snapshot []project.Project) {
		if baseline {
			baseline = false
			n.mu.Lock()
			n.lastCount = len(snapshot)
			n.mu.Unlock()
			return
		}
		n.Notify(snapshot)
	})
}

// Notify is the store listener. A snapshot that grew announces an added
// project; any other change is a move.
func (n *Notifier) Notify(snapshot []project.Project) {
	n.mu.Lock()
	event := EventProjectMoved
	if len(snapshot) > n.lastCount {
		event = EventProjectAdded
	}
	n.lastCount = len(snapshot)
	n.mu.Unlock()

	p := newPayload(event, snapshot, n.now())
	select {
	case n.queue <- p:
	default:
		n.logger.Warn("webhook queue full, dropping event",
			slog.String("event", event),
			slog.Int("queue_size", cap(n.queue)),
		)
		if n.metrics != nil {
			n.metrics.EventDroppedTotal.Add(context.Background(), 1,
				metric.WithAttributes(telemetry.AttrPeerService.String(Name)))
		}
	}
}

// Pending returns the number of queued payloads.
func (n *Notifier) Pending() int {
	return len(n.queue)
}

// Run delivers queued payloads until ctx is canceled. Delivery failures are
// logged and the payload is discarded; the client has already retried. Run
// returns nil on cancellation.
func (n *Notifier) Run(ctx context.Context) error {
	ctx = logging.WithLogger(ctx, n.logger)
	n.logger.Info("webhook dispatcher started", slog.Int("queue_size", cap(n.queue)))
	defer n.logger.Info("webhook dispatcher stopped", slog.Int("pending", len(n.queue)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case p := <-n.queue:
			n.deliver(ctx, p)
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, p Payload) {
	ctx = logging.With(ctx, slog.String("event", p.Event), slog.Int("projects", len(p.Projects)))
	logger := logging.FromContext(ctx)

	err := n.sender.PostJSON(ctx, "", p)
	switch {
	case err == nil:
		logger.DebugContext(ctx, "webhook delivered")
	case errors.Is(err, context.Canceled):
		logger.DebugContext(ctx, "webhook delivery canceled")
	default:
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
			logger.ErrorContext(ctx, "webhook rejected payload",
				slog.Int("status", statusErr.StatusCode),
			)
			return
		}
		logger.WarnContext(ctx, "webhook delivery failed", slog.Any("error", err))
	}
}

// Name returns "webhook".
func (n *Notifier) Name() string {
	return Name
}

// HealthCheck reports the delivery client's circuit breaker state.
func (n *Notifier) HealthCheck(ctx context.Context) error {
	return n.sender.HealthCheck(ctx)
}
