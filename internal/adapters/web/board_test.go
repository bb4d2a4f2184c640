package web_test

import (
	"context"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianto3/projectboard/internal/adapters/web"
	"github.com/ianto3/projectboard/internal/domain/project"
)

func newBoard(t *testing.T) (*web.Board, func(title string) project.Project) {
	t.Helper()

	s := newStore()
	active, err := web.NewListView(s, project.StatusActive)
	require.NoError(t, err)
	finished, err := web.NewListView(s, project.StatusFinished)
	require.NoError(t, err)

	add := func(title string) project.Project {
		return s.AddProject(title, "Some description", 3)
	}
	return web.NewBoard(web.NewFormView(s, nil), active, finished), add
}

func TestBoard_RenderOrdersComponents(t *testing.T) {
	t.Parallel()

	board, add := newBoard(t)
	add("First project")

	var sb strings.Builder
	require.NoError(t, board.Render(context.Background(), &sb, web.Page{}))
	out := sb.String()

	form := strings.Index(out, `id="user-input"`)
	active := strings.Index(out, `id="active-projects"`)
	finished := strings.Index(out, `id="finished-projects"`)

	require.NotEqual(t, -1, form)
	require.NotEqual(t, -1, active)
	require.NotEqual(t, -1, finished)
	assert.Less(t, form, active)
	assert.Less(t, active, finished)
	assert.Contains(t, out, "First project")
	assert.NotContains(t, out, `role="alert"`)
}

func TestBoard_RenderFlashAndInput(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t)

	var sb strings.Builder
	require.NoError(t, board.Render(context.Background(), &sb, web.Page{
		Flash: web.InvalidInputMessage,
		Input: web.FormInput{Title: "Tiny"},
	}))
	out := sb.String()

	assert.Contains(t, out, `role="alert">Invalid input, try again!</div>`)
	assert.Contains(t, out, `value="Tiny"`)
}

func TestBoard_List(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t)

	l, ok := board.List(project.StatusFinished)
	require.True(t, ok)
	assert.Equal(t, project.StatusFinished, l.Status())

	_, ok = board.List("archived")
	assert.False(t, ok)
	assert.Len(t, board.Lists(), 2)
}

func TestBoard_RenderContent(t *testing.T) {
	t.Parallel()

	board, _ := newBoard(t)
	board.Configure()

	require.NoError(t, board.RenderContent(io.Discard))
}

func TestStatic_ServesAssets(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"app.js", "app.css"} {
		data, err := fs.ReadFile(web.Static(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}
