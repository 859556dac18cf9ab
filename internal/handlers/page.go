package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/ramchaes/portfolio/internal/content"
	"github.com/ramchaes/portfolio/internal/models"
	"github.com/ramchaes/portfolio/internal/services"
	"github.com/ramchaes/portfolio/internal/state"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// PageHandler renders the portfolio page with its overlays
type PageHandler struct {
	projectService *services.ProjectService
	resumeURL      string
	logger         *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, resumeURL string, logger *zap.Logger) *PageHandler {
	return &PageHandler{projectService: ps, resumeURL: resumeURL, logger: logger}
}

type cardView struct {
	Project   *models.Project
	Thumbnail string
	OpenHref  string
}

type pageView struct {
	Name         string
	Headline     string
	Intro        string
	About        string
	Email        string
	PortfolioURL string

	Internship []cardView
	Coursework []cardView

	Detail      *models.ProjectDetail
	ShowProcess bool
	CloseHref   string

	ResumeOpen      bool
	ResumeURL       string
	ResumeOpenHref  string
	ResumeCloseHref string
}

// Index handles GET / - the query string carries the open project and resume viewer
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	sel := state.FromQuery(r.URL.Query())
	view := h.build(sel)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *PageHandler) build(sel state.Selection) *pageView {
	view := &pageView{
		Name:            content.Name,
		Headline:        content.Headline,
		Intro:           content.Intro,
		About:           content.About,
		Email:           content.Email,
		PortfolioURL:    content.PortfolioURL,
		Internship:      h.cards(h.projectService.Internship(), sel),
		Coursework:      h.cards(h.projectService.Coursework(), sel),
		CloseHref:       sel.Closed().Href(),
		ResumeOpen:      sel.ResumeOpen(),
		ResumeURL:       h.resumeURL,
		ResumeOpenHref:  sel.WithResume(true).Href(),
		ResumeCloseHref: sel.WithResume(false).Href(),
	}

	if p := sel.Resolve(h.projectService); p != nil {
		view.Detail = h.projectService.Detail(p)
		view.ShowProcess = len(p.Details.Process) > 0
	} else if sel.IsOpen() {
		h.logger.Debug("open project not found", zap.String("id", sel.OpenID()))
	}
	return view
}

func (h *PageHandler) cards(projects []models.Project, sel state.Selection) []cardView {
	cards := make([]cardView, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		cards = append(cards, cardView{
			Project:   p,
			Thumbnail: h.projectService.Thumbnail(p),
			OpenHref:  sel.WithOpen(p.ID).Href(),
		})
	}
	return cards
}
