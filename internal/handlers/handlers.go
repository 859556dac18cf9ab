package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ramchaes/portfolio/internal/config"
	"github.com/ramchaes/portfolio/internal/media"
	"github.com/ramchaes/portfolio/internal/middleware"
	"github.com/ramchaes/portfolio/internal/models"
	"github.com/ramchaes/portfolio/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, catalogs *models.ProjectList, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	resolver := cfg.Resolver()
	projectService := services.NewProjectService(catalogs, resolver, media.ProcessLimits(cfg.ProcessLimits), logger)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService, logger)
	pageHandler := NewPageHandler(projectService, resolver.Resolve(cfg.ResumeFile), logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
		})
	})

	// Page
	r.Get("/", pageHandler.Index)

	// Static files live under the deployment base so resolved URLs hit them directly
	base := resolver.Base()
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	if base != "/" {
		r.Get(strings.TrimSuffix(base, "/"), pageHandler.Index)
		r.Get(base, pageHandler.Index)
	}
	r.Handle(base+"*", http.StripPrefix(strings.TrimSuffix(base, "/"), fileServer))

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string, logger *zap.Logger) {
	respondJSON(w, status, map[string]string{"error": message}, logger)
}
