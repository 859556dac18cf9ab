package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramchaes/portfolio/internal/assets"
	"github.com/ramchaes/portfolio/internal/content"
	"github.com/ramchaes/portfolio/internal/models"
)

var checkAssetsCmd = &cobra.Command{
	Use:   "check-assets",
	Short: "Verify that local media references exist in the static directory",
	Args:  cobra.NoArgs,
	RunE:  runCheckAssets,
}

func runCheckAssets(cmd *cobra.Command, args []string) error {
	checker := assets.NewChecker(cfg.StaticDir, cfg.Resolver(), logger)
	problems, err := checkAll(checker, content.Catalogs(), cfg.ResumeFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range problems {
		fmt.Fprintln(out, p.String())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d asset problem(s) in %s", len(problems), cfg.StaticDir)
	}
	fmt.Fprintln(out, "all assets present")
	return nil
}

func checkAll(checker *assets.Checker, catalogs *models.ProjectList, resume string) ([]assets.Problem, error) {
	projects := append(append([]models.Project{}, catalogs.Internship...), catalogs.Coursework...)
	problems, err := checker.CheckProjects(projects)
	if err != nil {
		return nil, err
	}
	if resume != "" {
		if prob, ok := checker.CheckFile(resume, "application/pdf"); !ok {
			problems = append(problems, prob)
		}
	}
	return problems, nil
}
