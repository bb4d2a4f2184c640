// Package handlers provides HTTP request handlers for the board pages, the
// event stream, the JSON API, and health probes.
package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ianto3/projectboard/internal/adapters/http/dto"
	"github.com/ianto3/projectboard/internal/domain/project"
	"github.com/ianto3/projectboard/internal/ports"
)

// ProjectHandler handles the JSON project API.
type ProjectHandler struct {
	svc ports.ProjectService
}

// NewProjectHandler creates a new ProjectHandler with the given service port.
func NewProjectHandler(svc ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects with an optional ?status= filter.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var status project.Status
	if raw := r.URL.Query().Get("status"); strings.TrimSpace(raw) != "" {
		st, err := project.ParseStatus(raw)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		status = st
	}

	projects, err := h.svc.ListProjects(r.Context(), status)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateProject(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/projects/"+created.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToProjectResponse(created))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(p))
}

// MoveProject handles PUT /api/v1/projects/{id}/status. Unknown IDs are a
// silent no-op and still answer 204.
func (h *ProjectHandler) MoveProject(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.svc.MoveProject(r.Context(), chi.URLParam(r, "id"), req.ParsedStatus()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
