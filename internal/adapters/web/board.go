package web

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/ianto3/projectboard/internal/app/fanout"
	"github.com/ianto3/projectboard/internal/domain/project"
)

var _ Component = (*Board)(nil)

// Page is the per-request state of a board render.
type Page struct {
	Flash string
	Input FormInput
}

// Board is the full page: the form followed by one list per status.
type Board struct {
	form  *FormView
	lists []*ListView
}

// NewBoard composes form and lists in display order.
func NewBoard(form *FormView, lists ...*ListView) *Board {
	return &Board{form: form, lists: lists}
}

// Configure configures every child component.
func (b *Board) Configure() {
	b.form.Configure()
	for _, l := range b.lists {
		l.Configure()
	}
}

// Form returns the board's form.
func (b *Board) Form() *FormView {
	return b.form
}

// List returns the list showing status.
func (b *Board) List(status project.Status) (*ListView, bool) {
	for _, l := range b.lists {
		if l.Status() == status {
			return l, true
		}
	}
	return nil, false
}

// Lists returns the lists in display order.
func (b *Board) Lists() []*ListView {
	return b.lists
}

// RenderContent writes the page with an empty form and no flash.
func (b *Board) RenderContent(w io.Writer) error {
	return b.Render(context.Background(), w, Page{})
}

// Render writes the page for one request. Components render concurrently and
// are assembled in display order.
func (b *Board) Render(ctx context.Context, w io.Writer, page Page) error {
	parts := make([]func(io.Writer) error, 0, len(b.lists)+1)
	parts = append(parts, func(w io.Writer) error { return b.form.RenderInput(w, page.Input) })
	for _, l := range b.lists {
		parts = append(parts, l.RenderContent)
	}

	results := fanout.Run(ctx, len(parts), parts, func(_ context.Context, part func(io.Writer) error) (template.HTML, error) {
		var buf bytes.Buffer
		if err := part(&buf); err != nil {
			return "", err
		}
		//nolint:gosec // built only from auto-escaped templates
		return template.HTML(buf.String()), nil
	})

	html, err := fanout.Values(results)
	if err != nil {
		return fmt.Errorf("rendering board: %w", err)
	}

	return render(w, "layout.html", layoutData{
		Flash: page.Flash,
		Form:  html[0],
		Lists: html[1:],
	})
}

type layoutData struct {
	Flash string
	Form  template.HTML
	Lists []template.HTML
}
