// Package project defines the project record tracked by the board and the
// status it moves between.
package project

import (
	"fmt"
	"strings"

	"github.com/ianto3/projectboard/internal/domain"
)

// Project is one record held by the store. ID is assigned at creation and
// never changes; Status is the only field mutated after creation.
type Project struct {
	ID          string
	Title       string
	Description string
	People      int
	Status      Status
}

// PeopleLabel renders the assignee count the way list items show it.
func (p *Project) PeopleLabel() string {
	if p.People == 1 {
		return "1 person assigned"
	}
	return fmt.Sprintf("%d persons assigned", p.People)
}

// FilterByStatus returns the records whose status equals s, in input order.
// The result is always a fresh slice, never a view into records.
func FilterByStatus(records []Project, s Status) []Project {
	out := make([]Project, 0, len(records))
	for i := range records {
		if records[i].Status == s {
			out = append(out, records[i])
		}
	}
	return out
}

// Status is the lifecycle state of a Project.
type Status string

const (
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusActive, StatusFinished}
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFinished:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user input (a route segment or JSON field) into a
// Status. Matching ignores case and surrounding whitespace.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", domain.NewValidationError("status", fmt.Sprintf("invalid: %q", raw))
	}
	return s, nil
}
