package ports

import (
	"context"

	"github.com/ianto3/projectboard/internal/domain/project"
)

// ProjectStore is the observable record store shared by every view.
type ProjectStore interface {
	// Subscribe registers fn to receive a snapshot after every mutation and
	// returns a func that removes the registration.
	Subscribe(fn func(snapshot []project.Project)) (unsubscribe func())

	// Watch is Subscribe with a replay: fn is first called with the current
	// records, before Watch returns, and then after every mutation. No
	// mutation can fall between the replay and the registration.
	Watch(fn func(snapshot []project.Project)) (unsubscribe func())

	// AddProject appends a new active record and notifies subscribers.
	AddProject(title, description string, people int) project.Project

	// MoveProject changes a record's status and notifies subscribers. It
	// reports false, without notifying, for unknown IDs and unchanged statuses.
	MoveProject(id string, to project.Status) bool

	// Projects returns a snapshot of all records in insertion order.
	Projects() []project.Project

	// Project returns a copy of one record.
	Project(id string) (project.Project, bool)
}

// ProjectService defines the service port behind the JSON API.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProjectService interface {
	// ListProjects returns every project, or only those with the given status
	// when status is non-empty.
	// Returns domain.ErrValidation if status is not a known value.
	ListProjects(ctx context.Context, status project.Status) ([]project.Project, error)

	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*project.Project, error)

	// CreateProject validates the input with the same rules as the board's
	// form and appends a new active project.
	// Returns domain.ErrValidation if any field fails validation.
	CreateProject(ctx context.Context, input ProjectInput) (*project.Project, error)

	// MoveProject sets a project's status. Unknown IDs are ignored and report
	// moved=false with a nil error.
	// Returns domain.ErrValidation if status is not a known value.
	MoveProject(ctx context.Context, id string, status project.Status) (moved bool, err error)
}

// ProjectInput carries the user-supplied fields of a new project.
type ProjectInput struct {
	Title       string
	Description string
	People      int
}
