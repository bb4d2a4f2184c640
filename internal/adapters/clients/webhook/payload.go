package webhook

import (
	"time"

	"github.com/ianto3/projectboard/internal/domain/project"
)

// Event names carried in the payload.
const (
	EventProjectAdded = "project.added"
	EventProjectMoved = "project.moved"
)

// projectDTO is the wire form of one record.
type projectDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
}

// Payload is the JSON body POSTed for every store notification: the event
// that caused it plus the full snapshot.
type Payload struct {
	Event    string       `json:"event"`
	SentAt   time.Time    `json:"sent_at"`
	Projects []projectDTO `json:"projects"`
}

// newPayload translates a store snapshot into its wire form.
func newPayload(event string, snapshot []project.Project, now time.Time) Payload {
	projects := make([]projectDTO, len(snapshot))
	for i, p := range snapshot {
		projects[i] = projectDTO{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			People:      p.People,
			Status:      p.Status.String(),
		}
	}
	return Payload{Event: event, SentAt: now.UTC(), Projects: projects}
}
