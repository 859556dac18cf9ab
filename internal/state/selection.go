// Package state tracks which overlays of the portfolio page are open.
package state

import (
	"net/url"

	"github.com/ramchaes/portfolio/internal/models"
)

// Query parameters carrying the selection between requests
const (
	ParamOpen   = "open"
	ParamResume = "resume"
)

// Lookup finds a project by ID, returning nil when absent
type Lookup interface {
	Lookup(id string) *models.Project
}

// Selection holds the open project, if any, and whether the resume viewer is shown.
// The two are independent.
type Selection struct {
	openID     string
	resumeOpen bool
}

// Open selects the project with id
func (s *Selection) Open(id string) {
	s.openID = id
}

// Close clears the open project. The close button and a backdrop click both land here.
func (s *Selection) Close() {
	s.openID = ""
}

// OpenID returns the selected ID, or "" when nothing is open
func (s Selection) OpenID() string {
	return s.openID
}

// IsOpen reports whether a project is selected
func (s Selection) IsOpen() bool {
	return s.openID != ""
}

// OpenResume shows the resume viewer
func (s *Selection) OpenResume() {
	s.resumeOpen = true
}

// CloseResume hides the resume viewer
func (s *Selection) CloseResume() {
	s.resumeOpen = false
}

// ResumeOpen reports whether the resume viewer is shown
func (s Selection) ResumeOpen() bool {
	return s.resumeOpen
}

// Resolve returns the selected project. Unknown IDs resolve to nil.
func (s Selection) Resolve(projects Lookup) *models.Project {
	if s.openID == "" {
		return nil
	}
	return projects.Lookup(s.openID)
}

// FromQuery reads a Selection from URL query values
func FromQuery(q url.Values) Selection {
	var s Selection
	s.Open(q.Get(ParamOpen))
	switch q.Get(ParamResume) {
	case "1", "true", "open":
		s.OpenResume()
	}
	return s
}

// Query encodes the selection as URL query values
func (s Selection) Query() url.Values {
	q := url.Values{}
	if s.openID != "" {
		q.Set(ParamOpen, s.openID)
	}
	if s.resumeOpen {
		q.Set(ParamResume, "1")
	}
	return q
}

// Href returns a relative link that reproduces the selection
func (s Selection) Href() string {
	if q := s.Query().Encode(); q != "" {
		return "?" + q
	}
	return "?"
}

// WithOpen returns a copy with id selected
func (s Selection) WithOpen(id string) Selection {
	s.Open(id)
	return s
}

// Closed returns a copy with no project selected
func (s Selection) Closed() Selection {
	s.Close()
	return s
}

// WithResume returns a copy with the resume viewer toggled
func (s Selection) WithResume(open bool) Selection {
	if open {
		s.OpenResume()
	} else {
		s.CloseResume()
	}
	return s
}
