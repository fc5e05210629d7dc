package main

import (
	"placement-workers/internal/scoring/careerpath"

	"github.com/spf13/cobra"
)

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Rank career paths for a set of skills, projects and interests",
	RunE:  runCareer,
}

var (
	careerSkills    []string
	careerProjects  []string
	careerInterests []string
)

func init() {
	careerCmd.Flags().StringSliceVarP(&careerSkills, "skills", "s", nil, "Comma-separated skills")
	careerCmd.Flags().StringSliceVarP(&careerProjects, "projects", "p", nil, "Comma-separated project keywords")
	careerCmd.Flags().StringSliceVarP(&careerInterests, "interests", "i", nil, "Comma-separated interests")

	rootCmd.AddCommand(careerCmd)
}

func runCareer(cmd *cobra.Command, _ []string) error {
	results, err := careerpath.Predict(matcher(), careerpath.Input{
		Skills:    careerSkills,
		Projects:  careerProjects,
		Interests: careerInterests,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), results)
}
