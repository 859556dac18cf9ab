package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ramchaes/portfolio/internal/content"
	"github.com/ramchaes/portfolio/internal/media"
	"github.com/ramchaes/portfolio/internal/models"
	"github.com/ramchaes/portfolio/internal/services"
)

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Write the catalogs and resolved project details as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := services.NewProjectService(content.Catalogs(), cfg.Resolver(), media.ProcessLimits(cfg.ProcessLimits), logger)
		return export(svc, args[0], logger)
	},
}

func export(svc *services.ProjectService, outputDir string, logger *zap.Logger) error {
	detailsDir := filepath.Join(outputDir, "projects")
	if err := os.MkdirAll(detailsDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeJSON(filepath.Join(outputDir, "projects.json"), svc.GetAll()); err != nil {
		return err
	}

	count := 0
	for _, list := range [][]models.Project{svc.Internship(), svc.Coursework()} {
		for i := range list {
			p := &list[i]
			path := filepath.Join(detailsDir, p.ID+".json")
			if err := writeJSON(path, svc.Detail(p)); err != nil {
				return err
			}
			logger.Debug("exported project", zap.String("id", p.ID), zap.String("path", path))
			count++
		}
	}

	logger.Info("export complete", zap.String("dir", outputDir), zap.Int("projects", count))
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
