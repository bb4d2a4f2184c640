package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/ports"
)

var _ Component = (*ListView)(nil)

// RenderHook receives a ListView's freshly rebuilt item fragment. Hooks run
// synchronously inside the store notification and must not call back into
// the store.
type RenderHook func(status project.Status, fragment template.HTML)

// ListOption configures a ListView.
type ListOption func(*ListView)

// WithRenderHook registers h to receive every rebuilt fragment.
func WithRenderHook(h RenderHook) ListOption {
	return func(l *ListView) {
		l.hooks = append(l.hooks, h)
	}
}

// WithListLogger sets the logger used to report render failures.
func WithListLogger(logger *slog.Logger) ListOption {
	return func(l *ListView) {
		l.logger = logger
	}
}

// ListView shows the records of one status. It keeps its own filtered copy
// of the store, replaced wholesale on every notification, and the HTML of its
// items rebuilt from scratch each time.
type ListView struct {
	store  ports.ProjectStore
	status project.Status
	logger *slog.Logger

	configure   sync.Once
	unsubscribe func()

	mu       sync.RWMutex
	hooks    []RenderHook
	assigned []project.Project
	fragment template.HTML
	notified bool
}

// NewListView builds the list for status, subscribes it to store and renders
// the records already present.
func NewListView(store ports.ProjectStore, status project.Status, opts ...ListOption) (*ListView, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("list view: unknown status %q", status)
	}

	l := &ListView{
		store:       store,
		status:      status,
		logger:      slog.New(slog.DiscardHandler),
		unsubscribe: func() {},
	}
	for _, opt := range opts {
		opt(l)
	}

	l.Configure()
	l.seed(store.Projects())

	return l, nil
}

// Configure subscribes the list to the store. Later calls are no-ops.
func (l *ListView) Configure() {
	l.configure.Do(func() {
		l.unsubscribe = l.store.Subscribe(l.refresh)
	})
}

// Status returns the status this list displays.
func (l *ListView) Status() project.Status {
	return l.status
}

// OnRender adds a hook after construction.
func (l *ListView) OnRender(h RenderHook) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks = append(l.hooks, h)
}

// Projects returns a copy of the records currently shown.
func (l *ListView) Projects() []project.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.assigned)
}

// Fragment returns the current item HTML (the contents of the list's <ul>).
func (l *ListView) Fragment() template.HTML {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fragment
}

// RenderContent writes the list section: heading plus items.
func (l *ListView) RenderContent(w io.Writer) error {
	return render(w, "list.html", listData{
		Status: l.status.String(),
		Items:  l.Fragment(),
	})
}

// Drop is the drag-and-drop target: the record with id moves to this list's
// status. It reports whether the store changed.
func (l *ListView) Drop(id string) bool {
	return l.store.MoveProject(id, l.status)
}

// Close detaches the list from the store.
func (l *ListView) Close() {
	l.unsubscribe()
}

// seed applies the initial snapshot unless a notification already arrived,
// in which case that notification carried newer state.
func (l *ListView) seed(snapshot []project.Project) {
	l.apply(snapshot, false)
}

func (l *ListView) refresh(snapshot []project.Project) {
	l.apply(snapshot, true)
}

func (l *ListView) apply(snapshot []project.Project, fromNotify bool) {
	assigned := project.FilterByStatus(snapshot, l.status)

	fragment, err := renderItems(assigned)
	if err != nil {
		l.logger.Error("failed to render project list",
			slog.String("operation", "ListView.refresh"),
			slog.String("status", l.status.String()),
			slog.Any("error", err),
		)
		return
	}

	l.mu.Lock()
	if !fromNotify && l.notified {
		l.mu.Unlock()
		return
	}
	l.notified = l.notified || fromNotify
	l.assigned = assigned
	l.fragment = fragment
	hooks := slices.Clone(l.hooks)
	l.mu.Unlock()

	if !fromNotify {
		return
	}
	for _, h := range hooks {
		h(l.status, fragment)
	}
}

// renderItems clears and rebuilds the item HTML for records.
func renderItems(records []project.Project) (template.HTML, error) {
	var buf bytes.Buffer
	for _, p := range records {
		if err := NewProjectItem(p).RenderContent(&buf); err != nil {
			return "", err
		}
	}
	//nolint:gosec // built only from auto-escaped templates
	return template.HTML(buf.String()), nil
}

type listData struct {
	Status string
	Items  template.HTML
}
