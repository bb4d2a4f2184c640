package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ianto3/projectboard/internal/adapters/http/sse"
	"github.com/ianto3/projectboard/internal/adapters/web"
	"github.com/ianto3/projectboard/internal/platform/logging"
)

// EventSource hands out event stream subscriptions.
type EventSource interface {
	Subscribe() (*sse.Client, func(), error)
}

// EventsHandler streams list updates to the browser as Server-Sent Events.
type EventsHandler struct {
	events    EventSource
	board     *web.Board
	heartbeat time.Duration
}

// NewEventsHandler creates an EventsHandler. A heartbeat comment is written
// whenever the stream has been idle for the given interval.
func NewEventsHandler(events EventSource, board *web.Board, heartbeat time.Duration) *EventsHandler {
	return &EventsHandler{events: events, board: board, heartbeat: heartbeat}
}

// Stream handles GET /events. The current fragment of every list is sent
// first so a reconnecting client resynchronizes, then each rebuilt fragment
// follows as it is published.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	client, cancel, err := h.events.Subscribe()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	defer cancel()

	ctx := logging.With(r.Context(), slog.String("client_id", client.ID))
	logger := logging.FromContext(ctx)

	rc := http.NewResponseController(w)
	// The stream outlives the server's write timeout.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		logger.WarnContext(ctx, "failed to clear write deadline", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	for _, l := range h.board.Lists() {
		if err := sse.WriteEvent(w, sse.Event{Name: l.Status().String(), Data: string(l.Fragment())}); err != nil {
			return
		}
	}
	if err := rc.Flush(); err != nil {
		logger.WarnContext(ctx, "event stream not flushable", slog.Any("error", err))
		return
	}

	logger.DebugContext(ctx, "event stream opened")
	defer logger.DebugContext(ctx, "event stream closed")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-client.Events():
			if !ok {
				return
			}
			if err := sse.WriteEvent(w, ev); err != nil {
				return
			}
		case <-ticker.C:
			if err := sse.WriteComment(w, "heartbeat"); err != nil {
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
		ticker.Reset(h.heartbeat)
	}
}
