package media

import "github.com/ramchaes/portfolio/internal/models"

const (
	// MaxSolutionMedia is the number of solution slots in the detail view
	MaxSolutionMedia = 2
	// DefaultProcessLimit caps process media for records without an override
	DefaultProcessLimit = 2
)

// ProcessLimits maps a project ID to its process media cap
type ProcessLimits map[string]int

// For returns the cap for id
func (l ProcessLimits) For(id string) int {
	if n, ok := l[id]; ok && n > 0 {
		return n
	}
	return DefaultProcessLimit
}

// ProblemRefs returns the problem media reference, if any.
// A purpose statement takes the place of the problem image.
func ProblemRefs(p *models.Project) []string {
	d := &p.Details
	if d.NoProblemImage || d.Purpose != "" {
		return nil
	}
	for _, ref := range []string{d.ProblemImage, d.ProblemImg, p.Image} {
		if ref != "" {
			return []string{ref}
		}
	}
	return nil
}

// SolutionRefs returns up to two solution media references. Internship
// projects are padded with the card image, coursework is not.
func SolutionRefs(p *models.Project) []string {
	d := &p.Details

	candidates := make([]string, 0, len(d.SolutionImages)+3)
	candidates = append(candidates, d.SolutionImages...)
	candidates = append(candidates, d.SolutionImage, d.SolutionImage2, d.RoadmapImage)

	seen := make(map[string]bool, len(candidates))
	refs := make([]string, 0, MaxSolutionMedia)
	for _, ref := range candidates {
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}

	if p.Catalog == models.Internship && p.Image != "" {
		for len(refs) < MaxSolutionMedia {
			refs = append(refs, p.Image)
		}
	}

	if len(refs) > MaxSolutionMedia {
		refs = refs[:MaxSolutionMedia]
	}
	return refs
}

// ProcessRefs returns the non-empty process media references, capped per project
func ProcessRefs(p *models.Project, limits ProcessLimits) []string {
	limit := limits.For(p.ID)
	var refs []string
	for _, ref := range p.Details.ProcessImages {
		if ref == "" {
			continue
		}
		if len(refs) == limit {
			break
		}
		refs = append(refs, ref)
	}
	return refs
}
