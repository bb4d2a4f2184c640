package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"

	"github.com/ianto3/projectboard/internal/app/store"
	"github.com/ianto3/projectboard/internal/domain"
	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/ports"
	"github.com/ianto3/projectboard/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestStore() *store.ProjectStore {
	var n int
	return store.NewProjectStore(store.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}))
}

func validInput() ports.ProjectInput {
	return ports.ProjectInput{Title: "Launch site", Description: "Ship the landing page", People: 3}
}

// --- NewProjectService ---

func TestNewProjectService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewProjectService(newTestStore(), nil)
	if svc.logger == nil {
		t.Fatal("NewProjectService(nil logger) should create a no-op logger, got nil")
	}
}

// --- ListProjects ---

func TestProjectService_ListProjects(t *testing.T) {
	t.Parallel()

	seed := func() *store.ProjectStore {
		s := newTestStore()
		s.AddProject("Alpha project", "First one here", 2)
		s.AddProject("Beta project", "Second one here", 3)
		s.AddProject("Gamma project", "Third one here", 4)
		s.MoveProject("p2", project.StatusFinished)
		return s
	}

	tests := []struct {
		name    string
		status  project.Status
		wantIDs []string
		wantErr error
	}{
		{name: "all projects when status empty", status: "", wantIDs: []string{"p1", "p2", "p3"}},
		{name: "active only", status: project.StatusActive, wantIDs: []string{"p1", "p3"}},
		{name: "finished only", status: project.StatusFinished, wantIDs: []string{"p2"}},
		{name: "unknown status", status: "archived", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewProjectService(seed(), discardLogger())

			got, err := svc.ListProjects(context.Background(), tt.status)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ListProjects() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ListProjects() error = %v, want nil", err)
			}

			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if diff := cmp.Diff(tt.wantIDs, ids); diff != "" {
				t.Errorf("ListProjects() ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// --- GetProject ---

func TestProjectService_GetProject(t *testing.T) {
	t.Parallel()

	t.Run("returns existing project", func(t *testing.T) {
		t.Parallel()
		s := newTestStore()
		created := s.AddProject("Launch site", "Ship the landing page", 3)
		svc := NewProjectService(s, discardLogger())

		got, err := svc.GetProject(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("GetProject() error = %v, want nil", err)
		}
		if diff := cmp.Diff(created, *got); diff != "" {
			t.Errorf("GetProject() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		t.Parallel()
		svc := NewProjectService(newTestStore(), discardLogger())

		_, err := svc.GetProject(context.Background(), "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetProject() error = %v, want ErrNotFound", err)
		}
	})
}

// --- CreateProject ---

func TestProjectService_CreateProject(t *testing.T) {
	t.Parallel()

	t.Run("creates valid project as active", func(t *testing.T) {
		t.Parallel()
		s := newTestStore()
		svc := NewProjectService(s, discardLogger())

		got, err := svc.CreateProject(context.Background(), validInput())
		if err != nil {
			t.Fatalf("CreateProject() error = %v, want nil", err)
		}

		want := project.Project{
			ID:          "p1",
			Title:       "Launch site",
			Description: "Ship the landing page",
			People:      3,
			Status:      project.StatusActive,
		}
		if diff := cmp.Diff(want, *got); diff != "" {
			t.Errorf("CreateProject() mismatch (-want +got):\n%s", diff)
		}
		if n := len(s.Projects()); n != 1 {
			t.Errorf("store has %d projects, want 1", n)
		}
	})

	invalid := []struct {
		name       string
		mutate     func(*ports.ProjectInput)
		wantFields []string
	}{
		{name: "empty title", mutate: func(in *ports.ProjectInput) { in.Title = "" }, wantFields: []string{"title"}},
		{name: "title at length bound", mutate: func(in *ports.ProjectInput) { in.Title = "Hello" }, wantFields: []string{"title"}},
		{name: "short description", mutate: func(in *ports.ProjectInput) { in.Description = "abc" }, wantFields: []string{"description"}},
		{name: "people at lower bound", mutate: func(in *ports.ProjectInput) { in.People = 1 }, wantFields: []string{"people"}},
		{name: "people at upper bound", mutate: func(in *ports.ProjectInput) { in.People = 5 }, wantFields: []string{"people"}},
		{
			name: "every field invalid",
			mutate: func(in *ports.ProjectInput) {
				*in = ports.ProjectInput{}
			},
			wantFields: []string{"description", "people", "title"},
		},
	}

	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: any store call fails the test.
			mockStore := mocks.NewMockProjectStore(t)
			svc := NewProjectService(mockStore, discardLogger())

			in := validInput()
			tt.mutate(&in)

			_, err := svc.CreateProject(context.Background(), in)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("CreateProject() error = %v, want ErrValidation", err)
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("CreateProject() error = %T, want *domain.ValidationError", err)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("ValidationError.Fields missing %q: %v", f, verr.Fields)
				}
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Errorf("ValidationError.Fields = %v, want exactly %v", verr.Fields, tt.wantFields)
			}
		})
	}
}

// --- MoveProject ---

func TestProjectService_MoveProject(t *testing.T) {
	t.Parallel()

	t.Run("moves existing project", func(t *testing.T) {
		t.Parallel()
		s := newTestStore()
		created := s.AddProject("Launch site", "Ship the landing page", 3)
		svc := NewProjectService(s, discardLogger())

		moved, err := svc.MoveProject(context.Background(), created.ID, project.StatusFinished)
		if err != nil {
			t.Fatalf("MoveProject() error = %v, want nil", err)
		}
		if !moved {
			t.Error("MoveProject() moved = false, want true")
		}
		if p, _ := s.Project(created.ID); p.Status != project.StatusFinished {
			t.Errorf("status = %q, want finished", p.Status)
		}
	})

	t.Run("unknown id is a silent no-op", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockProjectStore(t)
		mockStore.EXPECT().MoveProject("ghost", project.StatusFinished).Return(false)
		svc := NewProjectService(mockStore, discardLogger())

		moved, err := svc.MoveProject(context.Background(), "ghost", project.StatusFinished)
		if err != nil {
			t.Fatalf("MoveProject() error = %v, want nil", err)
		}
		if moved {
			t.Error("MoveProject() moved = true, want false")
		}
	})

	t.Run("invalid status never reaches the store", func(t *testing.T) {
		t.Parallel()
		mockStore := mocks.NewMockProjectStore(t)
		svc := NewProjectService(mockStore, discardLogger())

		_, err := svc.MoveProject(context.Background(), "p1", "archived")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("MoveProject() error = %v, want ErrValidation", err)
		}
		mockStore.AssertNotCalled(t, "MoveProject", mock.Anything, mock.Anything)
	})
}
