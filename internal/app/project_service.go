// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ianto3/projectboard/internal/domain"
	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/domain/validation"
	"github.com/ianto3/projectboard/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// ProjectService implements ports.ProjectService on top of the shared
// ProjectStore. It validates input with the same rules as the board's form
// and logs every use case, but every mutation still flows through the store so
// the board's views and the event stream see API changes too.
type ProjectService struct {
	store  ports.ProjectStore
	logger *slog.Logger
}

// NewProjectService creates a ProjectService. A nil logger discards output.
func NewProjectService(store ports.ProjectStore, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		store:  store,
		logger: logger,
	}
}

// ListProjects returns all projects, or only those with the given status.
func (s *ProjectService) ListProjects(ctx context.Context, status project.Status) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects", slog.String("status", status.String()))

	all := s.store.Projects()
	if status == "" {
		return all, nil
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("must be one of %v", project.Statuses()))
	}

	return project.FilterByStatus(all, status), nil
}

// GetProject returns a single project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.String("id", id))

	p, ok := s.store.Project(id)
	if !ok {
		s.logger.DebugContext(ctx, "project not found",
			slog.String("operation", "GetProject"),
			slog.String("id", id),
		)
		return nil, fmt.Errorf("project %q: %w", id, domain.ErrNotFound)
	}

	return &p, nil
}

// CreateProject validates the input and appends a new active project.
func (s *ProjectService) CreateProject(ctx context.Context, input ports.ProjectInput) (*project.Project, error) {
	s.logger.InfoContext(ctx, "creating project", slog.String("title", input.Title))

	if err := validation.Check(project.FieldRules(input.Title, input.Description, input.People)); err != nil {
		s.logger.InfoContext(ctx, "rejected project input",
			slog.String("operation", "CreateProject"),
			slog.Any("error", err),
		)
		return nil, err
	}

	created := s.store.AddProject(input.Title, input.Description, input.People)
	return &created, nil
}

// MoveProject sets a project's status. Unknown IDs and unchanged statuses
// report moved=false without an error.
func (s *ProjectService) MoveProject(ctx context.Context, id string, status project.Status) (bool, error) {
	s.logger.InfoContext(ctx, "moving project",
		slog.String("id", id),
		slog.String("status", status.String()),
	)

	if !status.IsValid() {
		return false, domain.NewValidationError("status", fmt.Sprintf("must be one of %v", project.Statuses()))
	}

	moved := s.store.MoveProject(id, status)
	if !moved {
		s.logger.DebugContext(ctx, "move ignored",
			slog.String("operation", "MoveProject"),
			slog.String("id", id),
		)
	}
	return moved, nil
}
