// Package sse fans board updates out to connected browsers as Server-Sent
// Events. Each client gets a buffered channel. Every event carries a whole
// list fragment, so a client that falls behind has its stale fragments
// replaced by newer ones of the same name instead of stalling the publisher.
package sse

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/platform/telemetry"
)

// ErrClosed is returned by Subscribe after Close.
var ErrClosed = errors.New("event broker closed")

// Event is one SSE message.
type Event struct {
	Name string
	Data string
}

// Client is a single subscriber's event feed.
type Client struct {
	ID string

	mu     sync.Mutex // serializes senders; the reader never takes it
	events chan Event
}

// Events returns the client's feed. It is closed when the client is
// unsubscribed or the broker shuts down.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Broker is the fan-out hub between the board and open event streams.
type Broker struct {
	buffer  int
	metrics *telemetry.Metrics
	logger  *slog.Logger

	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool
}

// New creates a broker whose clients buffer up to buffer events. The buffer
// never drops below one slot per list, so the latest fragment of every list
// always fits. A nil metrics skips instrumentation; a nil logger discards
// output.
func New(buffer int, metrics *telemetry.Metrics, logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Broker{
		buffer:  max(buffer, len(project.Statuses())),
		metrics: metrics,
		logger:  logger,
		clients: make(map[string]*Client),
	}
}

// Subscribe registers a new client. The returned cancel func removes it and
// closes its feed; calling it more than once is safe.
func (b *Broker) Subscribe() (*Client, func(), error) {
	c := &Client{ID: uuid.NewString(), events: make(chan Event, b.buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, nil, ErrClosed
	}
	b.clients[c.ID] = c
	b.mu.Unlock()

	b.countClients(1)

	var once sync.Once
	cancel := func() {
		once.Do(func() { b.remove(c.ID) })
	}
	return c, cancel, nil
}

// Publish queues ev for every client without blocking and returns how many
// kept it. A full client buffer drops superseded events, never ev itself
// unless the client has more distinct event names pending than slots.
func (b *Broker) Publish(ev Event) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for _, c := range b.clients {
		kept, discarded := c.offer(ev)
		if kept {
			delivered++
		}
		if discarded == 0 {
			continue
		}
		b.logger.Debug("replacing stale events for slow client",
			slog.String("client_id", c.ID),
			slog.String("event", ev.Name),
			slog.Int("discarded", discarded),
		)
		if b.metrics != nil {
			b.metrics.EventDroppedTotal.Add(context.Background(), int64(discarded))
		}
	}
	return delivered
}

// offer queues ev. On a full buffer it drains the queue, keeps only the
// newest event per name and requeues them, dropping the oldest names if
// they still outnumber the slots. Callers hold the broker's read lock, so
// the channel cannot be closed underneath.
func (c *Client) offer(ev Event) (kept bool, discarded int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case c.events <- ev:
		return true, 0
	default:
	}

	queued := make([]Event, 0, cap(c.events)+1)
drain:
	for {
		select {
		case q := <-c.events:
			queued = append(queued, q)
		default:
			break drain
		}
	}
	queued = append(queued, ev)

	latest := coalesce(queued)
	if over := len(latest) - cap(c.events); over > 0 {
		latest = latest[over:]
	}
	discarded = len(queued) - len(latest)

	// Only senders hold c.mu and the queue was just emptied, so these sends
	// cannot block.
	for _, q := range latest {
		c.events <- q
		if q == ev {
			kept = true
		}
	}
	return kept, discarded
}

// coalesce keeps the last event of each name at the position its name first
// appeared.
func coalesce(events []Event) []Event {
	at := make(map[string]int, len(events))
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if i, ok := at[ev.Name]; ok {
			out[i] = ev
			continue
		}
		at[ev.Name] = len(out)
		out = append(out, ev)
	}
	return out
}

// PublishFragment publishes a rebuilt list fragment under the list's status.
// Its signature matches the board's render hooks.
func (b *Broker) PublishFragment(status project.Status, fragment template.HTML) {
	b.Publish(Event{Name: status.String(), Data: string(fragment)})
}

// Clients returns the number of connected clients.
func (b *Broker) Clients() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Close disconnects every client. Later subscriptions fail with ErrClosed.
func (b *Broker) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	clients := b.clients
	b.clients = make(map[string]*Client)
	b.mu.Unlock()

	for _, c := range clients {
		close(c.events)
	}
	b.countClients(-int64(len(clients)))
}

// Name identifies the broker in readiness results.
func (b *Broker) Name() string {
	return "events"
}

// HealthCheck fails once the broker is closed.
func (b *Broker) HealthCheck(_ context.Context) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}
	return nil
}

func (b *Broker) remove(id string) {
	b.mu.Lock()
	c, ok := b.clients[id]
	if ok {
		delete(b.clients, id)
		close(c.events)
	}
	b.mu.Unlock()

	if ok {
		b.countClients(-1)
	}
}

func (b *Broker) countClients(delta int64) {
	if b.metrics == nil || delta == 0 {
		return
	}
	b.metrics.EventClientsActive.Add(context.Background(), delta)
}

// WriteEvent frames ev in the text/event-stream format. Multi-line data is
// split across data fields so the client reassembles it intact.
func WriteEvent(w io.Writer, ev Event) error {
	var sb strings.Builder
	if ev.Name != "" {
		fmt.Fprintf(&sb, "event: %s\n", ev.Name)
	}
	for line := range strings.Lines(ev.Data) {
		fmt.Fprintf(&sb, "data: %s\n", strings.TrimRight(line, "\r\n"))
	}
	if ev.Data == "" {
		sb.WriteString("data: \n")
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteComment writes an SSE comment line, used as a heartbeat.
func WriteComment(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, ": %s\n\n", text)
	return err
}
