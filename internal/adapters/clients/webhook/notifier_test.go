package webhook_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ianto3/projectboard/internal/adapters/clients/webhook"
	"github.com/ianto3/projectboard/internal/app/store"
	"github.com/ianto3/projectboard/internal/platform/config"
	"github.com/ianto3/projectboard/internal/platform/httpclient"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newStore() *store.ProjectStore {
	var n int
	return store.NewProjectStore(store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}))
}

func newClient(t *testing.T, url string) *httpclient.Client {
	t.Helper()
	return httpclient.New(&config.ClientConfig{
		BaseURL: url,
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}, webhook.Name, nil, slog.New(slog.DiscardHandler))
}

// receiver is a webhook endpoint that forwards decoded payloads.
func receiver(t *testing.T, status int) (*httptest.Server, <-chan webhook.Payload) {
	t.Helper()
	got := make(chan webhook.Payload, 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p webhook.Payload
		if err := json.NewDecoder(r.Body).Decode(&p); err == nil {
			got <- p
		}
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

// runNotifier starts Run and stops it at cleanup.
func runNotifier(t *testing.T, n *webhook.Notifier) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Go(func() {
		assert.NoError(t, n.Run(ctx))
	})
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
}

func receive(t *testing.T, ch <-chan webhook.Payload) webhook.Payload {
	t.Helper()
	select {
	case p := <-ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("no webhook payload received")
		return webhook.Payload{}
	}
}

func TestNotifier_DeliversAddAndMove(t *testing.T) {
	srv, got := receiver(t, http.StatusNoContent)

	s := newStore()
	n := webhook.New(newClient(t, srv.URL), 8, nil, nil, webhook.WithClock(func() time.Time { return fixedNow }))
	unsubscribe := n.Attach(s)
	defer unsubscribe()
	runNotifier(t, n)

	created := s.AddProject("Launch site", "Ship the landing page", 3)

	added := receive(t, got)
	assert.Equal(t, webhook.EventProjectAdded, added.Event)
	assert.True(t, fixedNow.Equal(added.SentAt))
	require.Len(t, added.Projects, 1)

	require.True(t, s.MoveProject(created.ID, "finished"))

	moved := receive(t, got)

	raw, err := json.Marshal(moved)
	require.NoError(t, err)
	var gotMap map[string]any
	require.NoError(t, json.Unmarshal(raw, &gotMap))

	want := map[string]any{
		"event":   "project.moved",
		"sent_at": "2026-03-01T12:00:00Z",
		"projects": []any{map[string]any{
			"id":          "p1",
			"title":       "Launch site",
			"description": "Ship the landing page",
			"people":      float64(3),
			"status":      "finished",
		}},
	}
	if diff := cmp.Diff(want, gotMap); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifier_ExistingRecordsAreBaseline(t *testing.T) {
	srv, got := receiver(t, http.StatusOK)

	s := newStore()
	s.AddProject("Existing one", "Was here first", 2)

	n := webhook.New(newClient(t, srv.URL), 8, nil, nil)
	unsubscribe := n.Attach(s)
	defer unsubscribe()
	runNotifier(t, n)

	s.AddProject("Second one", "Arrives later", 2)

	p := receive(t, got)
	assert.Equal(t, webhook.EventProjectAdded, p.Event)
	assert.Len(t, p.Projects, 2)
}

func TestNotifier_FullQueueDropsWithoutBlocking(t *testing.T) {
	n := webhook.New(fakeSender{}, 1, nil, nil)
	s := newStore()
	unsubscribe := n.Attach(s)
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := range 5 {
			s.AddProject(fmt.Sprintf("Project %d", i), "Some description", 2)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("store blocked on a full webhook queue")
	}
	assert.Equal(t, 1, n.Pending())
}

func TestNotifier_RejectedPayloadDoesNotStopWorker(t *testing.T) {
	srv, got := receiver(t, http.StatusBadRequest)

	s := newStore()
	n := webhook.New(newClient(t, srv.URL), 8, nil, nil)
	unsubscribe := n.Attach(s)
	defer unsubscribe()
	runNotifier(t, n)

	s.AddProject("First project", "Some description", 2)
	receive(t, got)
	s.AddProject("Second project", "Some description", 2)
	receive(t, got)
}

func TestNotifier_RunStopsOnCancel(t *testing.T) {
	n := webhook.New(fakeSender{}, 1, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- n.Run(ctx) }()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

type fakeSender struct {
	healthErr error
}

func (fakeSender) PostJSON(context.Context, string, any) error { return nil }

func (f fakeSender) HealthCheck(context.Context) error { return f.healthErr }

func TestNotifier_HealthCheck(t *testing.T) {
	healthy := webhook.New(fakeSender{}, 1, nil, nil)
	assert.Equal(t, "webhook", healthy.Name())
	assert.NoError(t, healthy.HealthCheck(context.Background()))

	breakerOpen := errors.New("webhook: failing (circuit breaker open)")
	failing := webhook.New(fakeSender{healthErr: breakerOpen}, 1, nil, nil)
	assert.ErrorIs(t, failing.HealthCheck(context.Background()), breakerOpen)
}

type recordingSender struct {
	fakeSender

	mu       sync.Mutex
	payloads []webhook.Payload
}

func (r *recordingSender) PostJSON(_ context.Context, _ string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload.(webhook.Payload))
	return nil
}

func (r *recordingSender) sent() []webhook.Payload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]webhook.Payload(nil), r.payloads...)
}

func TestNotifier_AttachDuringAddsAnnouncesEachAddOnce(t *testing.T) {
	const adds = 20

	sender := &recordingSender{}
	s := newStore()
	n := webhook.New(sender, adds+1, nil, nil)

	var wg sync.WaitGroup
	for i := range adds {
		wg.Go(func() {
			s.AddProject(fmt.Sprintf("Project %d", i), "Some description", 2)
		})
	}
	unsubscribe := n.Attach(s)
	defer unsubscribe()
	wg.Wait()
	s.AddProject("Last project", "Added after attaching", 2)

	runNotifier(t, n)
	require.Eventually(t, func() bool {
		sent := sender.sent()
		return len(sent) > 0 && len(sent[len(sent)-1].Projects) == adds+1
	}, 2*time.Second, 5*time.Millisecond)

	// Every announcement is an add, and consecutive announcements grow by
	// exactly one record: nothing after the baseline was missed or repeated.
	sent := sender.sent()
	for i, p := range sent {
		assert.Equal(t, webhook.EventProjectAdded, p.Event, "payload %d", i)
		if i > 0 {
			assert.Len(t, p.Projects, len(sent[i-1].Projects)+1, "payload %d", i)
		}
	}
}
