package media_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramchaes/portfolio/internal/media"
	"github.com/ramchaes/portfolio/internal/models"
)

func TestProblemRefs(t *testing.T) {
	tests := []struct {
		name string
		p    models.Project
		want []string
	}{
		{
			name: "problem image wins",
			p: models.Project{Image: "card.png", Details: models.Details{
				ProblemImage: "problem.png", ProblemImg: "legacy.png",
			}},
			want: []string{"problem.png"},
		},
		{
			name: "older spelling",
			p:    models.Project{Image: "card.png", Details: models.Details{ProblemImg: "legacy.png"}},
			want: []string{"legacy.png"},
		},
		{
			name: "falls back to card image",
			p:    models.Project{Image: "card.png"},
			want: []string{"card.png"},
		},
		{
			name: "nothing authored",
			p:    models.Project{},
			want: nil,
		},
		{
			name: "opt out",
			p: models.Project{Image: "card.png", Details: models.Details{
				ProblemImage: "problem.png", NoProblemImage: true,
			}},
			want: nil,
		},
		{
			name: "purpose replaces problem image",
			p: models.Project{Image: "card.png", Details: models.Details{
				Purpose: "Why this exists", ProblemImage: "problem.png", ProblemImg: "legacy.png",
			}},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := media.ProblemRefs(&tt.p)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ProblemRefs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolutionRefs(t *testing.T) {
	tests := []struct {
		name string
		p    models.Project
		want []string
	}{
		{
			name: "internship with nothing authored pads with card image twice",
			p:    models.Project{Catalog: models.Internship, Image: "card.png"},
			want: []string{"card.png", "card.png"},
		},
		{
			name: "internship with one image pads once",
			p: models.Project{Catalog: models.Internship, Image: "card.png", Details: models.Details{
				SolutionImage: "after.png",
			}},
			want: []string{"after.png", "card.png"},
		},
		{
			name: "internship without card image stays short",
			p: models.Project{Catalog: models.Internship, Details: models.Details{
				SolutionImage: "after.png",
			}},
			want: []string{"after.png"},
		},
		{
			name: "internship with no media at all",
			p:    models.Project{Catalog: models.Internship},
			want: []string{},
		},
		{
			name: "legacy fields fold in order and dedupe",
			p: models.Project{Catalog: models.Internship, Image: "card.png", Details: models.Details{
				SolutionImages: []string{"", "a.png", "a.png"},
				SolutionImage:  "a.png",
				SolutionImage2: "b.png",
				RoadmapImage:   "roadmap.png",
			}},
			want: []string{"a.png", "b.png"},
		},
		{
			name: "roadmap fills the second slot",
			p: models.Project{Catalog: models.Internship, Image: "card.png", Details: models.Details{
				SolutionImage: "a.png",
				RoadmapImage:  "roadmap.png",
			}},
			want: []string{"a.png", "roadmap.png"},
		},
		{
			name: "coursework with one image is not padded",
			p: models.Project{Catalog: models.Coursework, ID: "sp-kiosk", Details: models.Details{
				SolutionImages: []string{"kiosk.png"},
			}},
			want: []string{"kiosk.png"},
		},
		{
			name: "coursework with card image is still not padded",
			p: models.Project{Catalog: models.Coursework, Image: "card.png", Details: models.Details{
				SolutionImage: "kiosk.png",
			}},
			want: []string{"kiosk.png"},
		},
		{
			name: "coursework capped at two",
			p: models.Project{Catalog: models.Coursework, Details: models.Details{
				SolutionImages: []string{"1.png", "2.png", "3.png"},
			}},
			want: []string{"1.png", "2.png"},
		},
		{
			name: "catalog tag decides, not id prefix",
			p:    models.Project{Catalog: models.Internship, ID: "sp-lookalike", Image: "card.png"},
			want: []string{"card.png", "card.png"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := media.SolutionRefs(&tt.p)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SolutionRefs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcessRefs(t *testing.T) {
	limits := media.ProcessLimits{"renew": 3}
	images := []string{"1.png", "", "2.png", "3.png", "4.png"}

	got := media.ProcessRefs(&models.Project{ID: "cmpa", Details: models.Details{ProcessImages: images}}, limits)
	assert.Equal(t, []string{"1.png", "2.png"}, got)

	got = media.ProcessRefs(&models.Project{ID: "renew", Details: models.Details{ProcessImages: images}}, limits)
	assert.Equal(t, []string{"1.png", "2.png", "3.png"}, got)

	got = media.ProcessRefs(&models.Project{ID: "cmpa"}, nil)
	assert.Empty(t, got)
}

func TestProcessLimits_For(t *testing.T) {
	limits := media.ProcessLimits{"renew": 3, "broken": 0}
	assert.Equal(t, 3, limits.For("renew"))
	assert.Equal(t, media.DefaultProcessLimit, limits.For("broken"))
	assert.Equal(t, media.DefaultProcessLimit, limits.For("other"))
	assert.Equal(t, media.DefaultProcessLimit, media.ProcessLimits(nil).For("other"))
}

func TestDerivationsDoNotMutate(t *testing.T) {
	p := models.Project{
		Catalog: models.Internship,
		Image:   "card.png",
		Details: models.Details{SolutionImages: []string{"a.png"}},
	}
	first := media.SolutionRefs(&p)
	first[0] = "changed.png"

	require.Equal(t, []string{"a.png"}, p.Details.SolutionImages)
	require.Equal(t, []string{"a.png", "card.png"}, media.SolutionRefs(&p))
}
