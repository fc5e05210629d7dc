package main

import (
	"context"
	"fmt"

	"placement-workers/internal/catalog"
	"placement-workers/internal/scoring/skillgap"

	"github.com/spf13/cobra"
)

var skillgapCmd = &cobra.Command{
	Use:   "skillgap",
	Short: "Compare skills against an employer's requirements",
	RunE:  runSkillgap,
}

var (
	skillgapEmployer string
	skillgapSkills   []string
)

func init() {
	skillgapCmd.Flags().StringVarP(&skillgapEmployer, "employer", "e", "", "Employer id (required)")
	skillgapCmd.Flags().StringSliceVarP(&skillgapSkills, "skills", "s", nil, "Comma-separated skills")
	_ = skillgapCmd.MarkFlagRequired("employer")

	rootCmd.AddCommand(skillgapCmd)
}

func runSkillgap(cmd *cobra.Command, _ []string) error {
	repo := catalog.NewMemoryRepository(catalog.SeedEmployers())
	employer, err := repo.Get(context.Background(), skillgapEmployer)
	if err != nil {
		return fmt.Errorf("employer %q: %w", skillgapEmployer, err)
	}

	req, _ := skillgap.Requirements(employer.ID)
	report := skillgap.Analyze(matcher(), req.RequiredSkills, skillgapSkills)

	return printJSON(cmd.OutOrStdout(), map[string]interface{}{
		"employer":    employer.Name,
		"role":        employer.Role,
		"roleContext": req.RoleContext,
		"report":      report,
		"gapCount":    report.GapCount(),
	})
}
