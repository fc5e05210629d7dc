package main

import (
	"placement-workers/internal/placement"
	"placement-workers/internal/scoring/readiness"

	"github.com/spf13/cobra"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Compute the placement readiness report",
	Long:  "Computes readiness for the demo student profile. Flags override the profile and slider values.",
	RunE:  runReadiness,
}

var (
	readinessResume int
	readinessMock   int
	readinessExtra  int
	readinessSkills []string
	readinessCGPA   string
)

func init() {
	readinessCmd.Flags().IntVar(&readinessResume, "resume", readiness.DefaultResumeScore, "Resume score slider (0-100)")
	readinessCmd.Flags().IntVar(&readinessMock, "mock", readiness.DefaultMockScore, "Mock interview slider (0-100)")
	readinessCmd.Flags().IntVar(&readinessExtra, "extra", readiness.DefaultExtraScore, "Extracurricular slider (0-100)")
	readinessCmd.Flags().StringSliceVarP(&readinessSkills, "skills", "s", nil, "Replace the profile skills")
	readinessCmd.Flags().StringVar(&readinessCGPA, "cgpa", "", "Replace the profile CGPA, e.g. 8.3/10")

	rootCmd.AddCommand(readinessCmd)
}

func runReadiness(cmd *cobra.Command, _ []string) error {
	profile := placement.SeedProfile()
	done, total := 0, 0
	for _, t := range placement.SeedPrepTasks() {
		if t.Completed {
			done++
		}
		total++
	}

	in := readiness.Input{
		ResumeScore:  readiness.SnapSlider(readinessResume),
		MockScore:    readiness.SnapSlider(readinessMock),
		ExtraScore:   readiness.SnapSlider(readinessExtra),
		Skills:       profile.Skills,
		CGPA:         profile.CGPA,
		TasksDone:    done,
		TasksTotal:   total,
		Applications: len(placement.SeedApplications()),
	}
	if cmd.Flags().Changed("skills") {
		in.Skills = readinessSkills
	}
	if readinessCGPA != "" {
		in.CGPA = readinessCGPA
	}

	return printJSON(cmd.OutOrStdout(), readiness.Evaluate(matcher(), in))
}
