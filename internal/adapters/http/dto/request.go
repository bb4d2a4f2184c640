package dto

import (
	"github.com/ianto3/projectboard/internal/domain"
	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/ports"
)

const msgRequired = "is required"

// CreateProjectRequest represents the JSON body for creating a new project.
// Field rules (lengths, people bounds) are applied by the service; this type
// only checks that the body carried every field.
type CreateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      *int   `json:"people"`
}

// Validate checks that people is present. Blank strings are left to the
// service so API and form report the same rules.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateProjectRequest) Validate() error {
	if r.People == nil {
		return domain.NewValidationError("people", msgRequired)
	}
	return nil
}

// ToInput maps the request onto the service input.
func (r *CreateProjectRequest) ToInput() ports.ProjectInput {
	in := ports.ProjectInput{Title: r.Title, Description: r.Description}
	if r.People != nil {
		in.People = *r.People
	}
	return in
}

// MoveProjectRequest represents the JSON body for changing a project's status.
type MoveProjectRequest struct {
	Status string `json:"status"`

	parsed project.Status
}

// Validate parses the status. Returns a *domain.ValidationError for an
// empty or unknown value.
func (r *MoveProjectRequest) Validate() error {
	if r.Status == "" {
		return domain.NewValidationError("status", msgRequired)
	}
	st, err := project.ParseStatus(r.Status)
	if err != nil {
		return err
	}
	r.parsed = st
	return nil
}

// ParsedStatus returns the status accepted by Validate.
func (r *MoveProjectRequest) ParsedStatus() project.Status {
	return r.parsed
}
