package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ramchaes/portfolio/internal/assets"
	"github.com/ramchaes/portfolio/internal/content"
	"github.com/ramchaes/portfolio/internal/media"
	"github.com/ramchaes/portfolio/internal/models"
	"github.com/ramchaes/portfolio/internal/services"
)

func TestNewLogger(t *testing.T) {
	l, err := newLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))

	l, err = newLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	_, err = newLogger("loud", false)
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	out := t.TempDir()
	svc := services.NewProjectService(content.Catalogs(), media.NewResolver("/Portfolio/", media.DefaultLegacyFolder),
		media.ProcessLimits(content.ProcessLimits), nil)

	require.NoError(t, export(svc, out, zap.NewNop()))

	data, err := os.ReadFile(filepath.Join(out, "projects.json"))
	require.NoError(t, err)
	var list models.ProjectList
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Len(t, list.Internship, 3)
	require.Len(t, list.Coursework, 3)
	assert.Equal(t, models.Coursework, list.Coursework[0].Catalog)

	data, err = os.ReadFile(filepath.Join(out, "projects", "cmpa.json"))
	require.NoError(t, err)
	var detail models.ProjectDetail
	require.NoError(t, json.Unmarshal(data, &detail))
	assert.Equal(t, "1. CMPA Website Accessibility Audit", detail.Heading)
	assert.Equal(t, []models.Media{
		{Kind: models.MediaImage, URL: "/Portfolio/cmpa-nav-redesign.png"},
		{Kind: models.MediaImage, URL: "/Portfolio/cmpa-roadmap.png"},
	}, detail.Solution)

	entries, err := os.ReadDir(filepath.Join(out, "projects"))
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}

func TestCheckAll(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "card.png"), []byte("\x89PNG\r\n\x1a\n"), 0o644))

	catalogs := &models.ProjectList{
		Internship: []models.Project{{ID: "a", Image: "card.png"}},
		Coursework: []models.Project{{ID: "sp-b", Image: "gone.png"}},
	}
	checker := assets.NewChecker(static, media.NewResolver("/", media.DefaultLegacyFolder), nil)

	problems, err := checkAll(checker, catalogs, "resume.pdf")
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "sp-b", problems[0].ProjectID)
	assert.Equal(t, "resume.pdf", problems[1].Ref)
}
