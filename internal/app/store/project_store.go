package store

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/ports"
)

// Compile-time check that ProjectStore implements ports.ProjectStore.
var _ ports.ProjectStore = (*ProjectStore)(nil)

// maxIDAttempts bounds how often an injected generator may return an ID that
// is already taken before the store falls back to a random UUID.
const maxIDAttempts = 8

// Option configures a ProjectStore.
type Option func(*ProjectStore)

// WithIDGenerator replaces the default UUID v4 generator for new records.
func WithIDGenerator(fn func() string) Option {
	return func(s *ProjectStore) {
		s.newID = fn
	}
}

// ProjectStore owns the ordered project sequence. Records are only ever
// appended; the status of an existing record is changed in place.
//
// Every mutation and the notification that follows it run under one lock,
// so listeners always observe a consistent snapshot and mutations never
// interleave. Listeners must not call back into the store synchronously.
type ProjectStore struct {
	Observable[project.Project]

	mu       sync.Mutex
	projects []project.Project
	newID    func() string
}

// NewProjectStore creates an empty store.
func NewProjectStore(opts ...Option) *ProjectStore {
	s := &ProjectStore{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProject appends a new active record with a fresh ID and notifies every
// listener with the full sequence. The created record is returned.
func (s *ProjectStore) AddProject(title, description string, people int) project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := project.Project{
		ID:          s.uniqueID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      project.StatusActive,
	}
	s.projects = append(s.projects, p)
	s.notify(s.projects)

	return p
}

// MoveProject sets the status of the first record with the given ID. Unknown
// IDs, invalid statuses, and moves to the current status change nothing and
// notify nobody. It reports whether a change was made.
func (s *ProjectStore) MoveProject(id string, to project.Status) bool {
	if !to.IsValid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || s.projects[i].Status == to {
		return false
	}

	s.projects[i].Status = to
	s.notify(s.projects)
	return true
}

// Watch calls fn with the current records and registers it for every later
// mutation. Both happen under the mutation lock, so fn sees each change
// exactly once and its calls never overlap.
func (s *ProjectStore) Watch(fn Listener[project.Project]) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(slices.Clone(s.projects))
	return s.Subscribe(fn)
}

// Projects returns a snapshot of every record in insertion order.
func (s *ProjectStore) Projects() []project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.projects)
}

// Project returns a copy of the record with the given ID.
func (s *ProjectStore) Project(id string) (project.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return project.Project{}, false
	}
	return s.projects[i], true
}

// indexOf must be called with s.mu held.
func (s *ProjectStore) indexOf(id string) int {
	return slices.IndexFunc(s.projects, func(p project.Project) bool {
		return p.ID == id
	})
}

// uniqueID must be called with s.mu held.
func (s *ProjectStore) uniqueID() string {
	for range maxIDAttempts {
		if id := s.newID(); id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
	return uuid.NewString()
}
