package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"go.uber.org/zap"

	"github.com/ramchaes/portfolio/internal/media"
	"github.com/ramchaes/portfolio/internal/models"
)

// ErrProjectNotFound is returned when no catalog holds the requested ID
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	internship []models.Project // sorted by Order
	coursework []models.Project
	resolver   *media.Resolver
	limits     media.ProcessLimits
	logger     *zap.Logger
}

// NewProjectService creates a new ProjectService. The catalogs are copied and
// never modified afterwards.
func NewProjectService(projects *models.ProjectList, resolver *media.Resolver, limits media.ProcessLimits, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}

	internship := slices.Clone(projects.Internship)
	slices.SortStableFunc(internship, compareOrder)

	s := &ProjectService{
		internship: internship,
		coursework: slices.Clone(projects.Coursework),
		resolver:   resolver,
		limits:     limits,
		logger:     logger,
	}
	s.warnDuplicates()
	return s
}

// compareOrder sorts numbered projects ascending, unnumbered ones last
func compareOrder(a, b models.Project) int {
	switch {
	case a.HasOrder() && !b.HasOrder():
		return -1
	case !a.HasOrder() && b.HasOrder():
		return 1
	}
	return cmp.Compare(a.Order, b.Order)
}

// warnDuplicates logs IDs shared by both catalogs; the internship entry shadows the other
func (s *ProjectService) warnDuplicates() {
	ids := make(map[string]bool, len(s.internship))
	for _, p := range s.internship {
		ids[p.ID] = true
	}
	for _, p := range s.coursework {
		if ids[p.ID] {
			s.logger.Warn("project id present in both catalogs", zap.String("id", p.ID))
		}
	}
}

// Resolver returns the media resolver used for detail views
func (s *ProjectService) Resolver() *media.Resolver {
	return s.resolver
}

// Internship returns internship projects ordered by Order
func (s *ProjectService) Internship() []models.Project {
	return s.internship
}

// Coursework returns coursework projects in authored order
func (s *ProjectService) Coursework() []models.Project {
	return s.coursework
}

// GetAll returns both catalogs
func (s *ProjectService) GetAll() *models.ProjectList {
	return &models.ProjectList{
		Internship: s.internship,
		Coursework: s.coursework,
	}
}

// Lookup returns the project with id, searching internship before coursework.
// Unknown or empty IDs return nil.
func (s *ProjectService) Lookup(id string) *models.Project {
	if id == "" {
		return nil
	}
	for _, list := range [][]models.Project{s.internship, s.coursework} {
		for i := range list {
			if list[i].ID == id {
				return &list[i]
			}
		}
	}
	return nil
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	if p := s.Lookup(id); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// Heading returns the modal title, prefixed with the display number when set
func Heading(p *models.Project) string {
	if p.HasOrder() {
		return strconv.Itoa(p.Order) + ". " + p.Title
	}
	return p.Title
}

// Thumbnail returns the resolved card image URL
func (s *ProjectService) Thumbnail(p *models.Project) string {
	return s.resolver.Resolve(p.Image)
}

// Detail builds the resolved media view for p
func (s *ProjectService) Detail(p *models.Project) *models.ProjectDetail {
	detail := &models.ProjectDetail{
		Project:  p,
		Heading:  Heading(p),
		Thumb:    s.Thumbnail(p),
		Problem:  s.resolver.DescribeImages(media.ProblemRefs(p)),
		Solution: s.resolver.DescribeSolution(media.SolutionRefs(p)),
		Process:  []models.Media{},
	}
	if len(p.Details.Process) > 0 {
		detail.Process = s.resolver.DescribeImages(media.ProcessRefs(p, s.limits))
	}

	s.logger.Debug("resolved project media",
		zap.String("id", p.ID),
		zap.Int("problem", len(detail.Problem)),
		zap.Int("solution", len(detail.Solution)),
		zap.Int("process", len(detail.Process)),
	)
	return detail
}
