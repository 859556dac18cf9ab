// Package assets verifies that local media references exist in the static
// directory under their exact names and hold the expected kind of file.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/ramchaes/portfolio/internal/media"
	"github.com/ramchaes/portfolio/internal/models"
)

// Problem describes one reference that does not resolve to a usable file
type Problem struct {
	ProjectID string `json:"project_id,omitempty"`
	Ref       string `json:"ref"`
	Path      string `json:"path"`
	Reason    string `json:"reason"`
}

func (p Problem) String() string {
	if p.ProjectID == "" {
		return fmt.Sprintf("%s (%s): %s", p.Ref, p.Path, p.Reason)
	}
	return fmt.Sprintf("%s: %s (%s): %s", p.ProjectID, p.Ref, p.Path, p.Reason)
}

// Checker inspects references against a static directory
type Checker struct {
	dir      string
	resolver *media.Resolver
	logger   *zap.Logger
	listings map[string]map[string]bool
}

// NewChecker creates a Checker rooted at dir
func NewChecker(dir string, resolver *media.Resolver, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		dir:      dir,
		resolver: resolver,
		logger:   logger,
		listings: make(map[string]map[string]bool),
	}
}

// References returns every media reference authored on p, in field order
func References(p *models.Project) []string {
	d := &p.Details
	refs := []string{p.Image, d.ProblemImage, d.ProblemImg}
	refs = append(refs, d.SolutionImages...)
	refs = append(refs, d.SolutionImage, d.SolutionImage2, d.RoadmapImage)
	refs = append(refs, d.ProcessImages...)
	return refs
}

// CheckProjects checks every local reference of every project. Each
// distinct reference is checked once per project.
func (c *Checker) CheckProjects(projects []models.Project) ([]Problem, error) {
	if info, err := os.Stat(c.dir); err != nil {
		return nil, fmt.Errorf("failed to open static dir: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("static dir %s is not a directory", c.dir)
	}

	var problems []Problem
	for i := range projects {
		p := &projects[i]
		seen := make(map[string]bool)
		for _, ref := range References(p) {
			if ref == "" || seen[ref] {
				continue
			}
			seen[ref] = true

			expect := "image/"
			switch cl := media.Classify(ref); cl.Kind {
			case models.MediaEmbeddedVideo:
				continue
			case models.MediaInlineVideo:
				expect = "video/"
			}

			if prob, ok := c.check(ref, expect); !ok {
				prob.ProjectID = p.ID
				problems = append(problems, prob)
			}
		}
	}
	return problems, nil
}

// CheckFile checks a single reference expected to hold the given MIME type prefix
func (c *Checker) CheckFile(ref, expect string) (Problem, bool) {
	return c.check(ref, expect)
}

func (c *Checker) check(ref, expect string) (Problem, bool) {
	if media.IsAbsolute(ref) {
		return Problem{}, true
	}

	// Strip any query or fragment before mapping onto the filesystem
	name := c.resolver.Clean(ref)
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	full := filepath.Join(c.dir, filepath.FromSlash(name))
	prob := Problem{Ref: ref, Path: full}

	exists, err := c.exactName(name)
	if err != nil {
		prob.Reason = err.Error()
		return prob, false
	}
	if !exists {
		prob.Reason = "file not found"
		return prob, false
	}

	mt, err := mimetype.DetectFile(full)
	if err != nil {
		prob.Reason = fmt.Sprintf("failed to read file: %v", err)
		return prob, false
	}
	if !strings.HasPrefix(mt.String(), expect) {
		prob.Reason = fmt.Sprintf("expected %s*, found %s", expect, mt.String())
		return prob, false
	}

	c.logger.Debug("asset ok", zap.String("ref", ref), zap.String("mime", mt.String()))
	return Problem{}, true
}

// exactName reports whether name exists with exactly this case. Case-insensitive
// filesystems would otherwise accept references that break once deployed.
func (c *Checker) exactName(name string) (bool, error) {
	dir, base := path.Split(name)
	entries, ok := c.listings[dir]
	if !ok {
		list, err := os.ReadDir(filepath.Join(c.dir, filepath.FromSlash(dir)))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("failed to list %s: %w", dir, err)
		}
		entries = make(map[string]bool, len(list))
		for _, e := range list {
			if !e.IsDir() {
				entries[e.Name()] = true
			}
		}
		c.listings[dir] = entries
	}
	return entries[base], nil
}
