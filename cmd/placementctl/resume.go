package main

import (
	"placement-workers/internal/scoring/resume"

	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume <file-name>",
	Short: "Score a resume by file name",
	Args:  cobra.ExactArgs(1),
	RunE:  runResume,
}

var resumeProfile string

func init() {
	resumeCmd.Flags().StringVar(&resumeProfile, "profile", "standard", "Scoring profile: standard or alternate")

	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) error {
	return printJSON(cmd.OutOrStdout(), resume.AnalyzeWithProfile(args[0], resumeProfile))
}
