package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ramchaes/portfolio/internal/models"
	"github.com/ramchaes/portfolio/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// projectCard is a catalog entry with its thumbnail resolved
type projectCard struct {
	models.Project
	Heading   string `json:"heading"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

func (h *ProjectHandler) cards(projects []models.Project) []projectCard {
	cards := make([]projectCard, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		cards = append(cards, projectCard{
			Project:   *p,
			Heading:   services.Heading(p),
			Thumbnail: h.projectService.Thumbnail(p),
		})
	}
	return cards
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]projectCard{
		"internship": h.cards(h.projectService.Internship()),
		"coursework": h.cards(h.projectService.Coursework()),
	}, h.logger)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Project not found", h.logger)
		return
	}

	respondJSON(w, http.StatusOK, h.projectService.Detail(project), h.logger)
}
