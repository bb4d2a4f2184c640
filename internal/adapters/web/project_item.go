package web

import (
	"io"

	"github.com/ianto3/projectboard/internal/domain/project"
)

var _ Component = (*ProjectItem)(nil)

// ProjectItem renders one draggable record. The record ID travels in data-id
// so the client script can hand it to the drop target.
type ProjectItem struct {
	project project.Project
}

// NewProjectItem builds the item for p.
func NewProjectItem(p project.Project) *ProjectItem {
	return &ProjectItem{project: p}
}

// Configure is a no-op; drag behaviour is attached by the client script.
func (i *ProjectItem) Configure() {}

// RenderContent writes the item's <li>.
func (i *ProjectItem) RenderContent(w io.Writer) error {
	return render(w, "item.html", itemData{
		ID:          i.project.ID,
		Title:       i.project.Title,
		People:      i.project.PeopleLabel(),
		Description: i.project.Description,
	})
}

type itemData struct {
	ID          string
	Title       string
	People      string
	Description string
}
