package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ianto3/projectboard/internal/adapters/http/dto"
	"github.com/ianto3/projectboard/internal/adapters/http/session"
	"github.com/ianto3/projectboard/internal/adapters/web"
	"github.com/ianto3/projectboard/internal/domain"
	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/platform/logging"
)

// Form field names shared by the page and the flash session.
const (
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldPeople      = "people"
	fieldID          = "id"
)

// FlashStore keeps one-shot state between a form post and the next page view.
type FlashStore interface {
	SetFlash(w http.ResponseWriter, r *http.Request, f session.Flash) error
	PopFlash(w http.ResponseWriter, r *http.Request) (session.Flash, error)
}

// BoardHandler serves the HTML board and its form and drop endpoints.
type BoardHandler struct {
	board   *web.Board
	flashes FlashStore
}

// NewBoardHandler creates a BoardHandler.
func NewBoardHandler(board *web.Board, flashes FlashStore) *BoardHandler {
	return &BoardHandler{board: board, flashes: flashes}
}

// Index handles GET /. A pending flash is shown once and the values of a
// rejected submission are put back into the form.
func (h *BoardHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	flash, err := h.flashes.PopFlash(w, r)
	if err != nil {
		logger.WarnContext(ctx, "failed to read flash",
			slog.String("operation", "BoardHandler.Index"),
			slog.Any("error", err),
		)
	}

	page := web.Page{
		Flash: flash.Message,
		Input: web.FormInput{
			Title:       flash.Input[fieldTitle],
			Description: flash.Input[fieldDescription],
			People:      flash.Input[fieldPeople],
		},
	}

	var buf bytes.Buffer
	if err := h.board.Render(ctx, &buf, page); err != nil {
		logger.ErrorContext(ctx, "failed to render board",
			slog.String("operation", "BoardHandler.Index"),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// SubmitProject handles POST /projects from the board form. It always
// redirects back to the board; a rejected submission leaves a flash alert and
// keeps what the user typed.
func (h *BoardHandler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if err := parseForm(w, r); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid form"))
		return
	}

	in := web.FormInput{
		Title:       r.PostForm.Get(fieldTitle),
		Description: r.PostForm.Get(fieldDescription),
		People:      r.PostForm.Get(fieldPeople),
	}

	if _, err := h.board.Form().Submit(in); err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			logger.ErrorContext(ctx, "failed to submit project",
				slog.String("operation", "BoardHandler.SubmitProject"),
				slog.Any("error", err),
			)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		flash := session.Flash{
			Message: web.InvalidInputMessage,
			Input: map[string]string{
				fieldTitle:       in.Title,
				fieldDescription: in.Description,
				fieldPeople:      in.People,
			},
		}
		if err := h.flashes.SetFlash(w, r, flash); err != nil {
			logger.ErrorContext(ctx, "failed to store flash",
				slog.String("operation", "BoardHandler.SubmitProject"),
				slog.Any("error", err),
			)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Drop handles POST /lists/{status}/drop. The dragged record's ID arrives as
// the form or JSON field "id". Unknown IDs and drops onto the record's own
// list are silent no-ops.
func (h *BoardHandler) Drop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status, err := project.ParseStatus(chi.URLParam(r, "status"))
	if err != nil {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}
	list, ok := h.board.List(status)
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}

	id, ok := readDropID(w, r)
	if !ok {
		return
	}

	if !list.Drop(id) {
		logging.FromContext(ctx).DebugContext(ctx, "drop ignored",
			slog.String("operation", "BoardHandler.Drop"),
			slog.String("project_id", id),
			slog.String("status", status.String()),
		)
	}

	w.WriteHeader(http.StatusNoContent)
}

// readDropID extracts the dragged ID from a JSON or urlencoded body. On
// failure it writes a 400 response and returns false.
func readDropID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	if isJSON(r) {
		var body struct {
			ID string `json:"id"`
		}
		if !decodeJSONBody(w, r, &body) {
			return "", false
		}
		id = body.ID
	} else {
		if err := parseForm(w, r); err != nil {
			dto.WriteErrorResponse(w, r, domain.NewValidationError("body", "invalid form"))
			return "", false
		}
		id = r.PostForm.Get(fieldID)
	}

	id = strings.TrimSpace(id)
	if id == "" {
		dto.WriteErrorResponse(w, r, domain.NewValidationError(fieldID, "is required"))
		return "", false
	}
	return id, true
}
