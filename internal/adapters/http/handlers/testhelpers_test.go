package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ianto3/projectboard/internal/adapters/http/session"
	"github.com/ianto3/projectboard/internal/adapters/web"
	"github.com/ianto3/projectboard/internal/app/store"
	"github.com/ianto3/projectboard/internal/domain/project"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleProject() project.Project {
	return project.Project{
		ID:          "p1",
		Title:       "Launch site",
		Description: "Ship the landing page",
		People:      3,
		Status:      project.StatusActive,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// newTestBoard wires a real store to one list per status and the form.
func newTestBoard(t *testing.T) (*web.Board, *store.ProjectStore) {
	t.Helper()

	var n int
	s := store.NewProjectStore(store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}))

	lists := make([]*web.ListView, 0, len(project.Statuses()))
	for _, st := range project.Statuses() {
		l, err := web.NewListView(s, st)
		require.NoError(t, err)
		t.Cleanup(l.Close)
		lists = append(lists, l)
	}
	return web.NewBoard(web.NewFormView(s, nil), lists...), s
}

// memFlashes is an in-memory FlashStore for handler tests.
type memFlashes struct {
	mu      sync.Mutex
	pending session.Flash
	setErr  error
}

func (m *memFlashes) SetFlash(_ http.ResponseWriter, _ *http.Request, f session.Flash) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.pending = f
	return nil
}

func (m *memFlashes) PopFlash(_ http.ResponseWriter, _ *http.Request) (session.Flash, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.pending
	m.pending = session.Flash{}
	return f, nil
}

func (m *memFlashes) peek() session.Flash {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}
