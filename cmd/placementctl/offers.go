package main

import (
	"encoding/json"
	"fmt"
	"os"

	"placement-workers/internal/models"
	"placement-workers/internal/scoring/offers"

	"github.com/spf13/cobra"
)

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Score and compare job offers",
	Long:  "Scores offers read from a JSON array file, or the demo offers when no file is given.",
	RunE:  runOffers,
}

var offersFile string

func init() {
	offersCmd.Flags().StringVarP(&offersFile, "file", "f", "", "Path to a JSON array of offers")

	rootCmd.AddCommand(offersCmd)
}

func runOffers(cmd *cobra.Command, _ []string) error {
	list := offers.SeedOffers()
	if offersFile != "" {
		data, err := os.ReadFile(offersFile)
		if err != nil {
			return fmt.Errorf("read offers: %w", err)
		}
		var fromFile []models.Offer
		if err := json.Unmarshal(data, &fromFile); err != nil {
			return fmt.Errorf("parse offers: %w", err)
		}
		list = fromFile
	}

	cmp, err := offers.Compare(list)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), struct {
		offers.Comparison
		InHandMonthly float64 `json:"topInHandMonthly"`
	}{cmp, offers.InHandMonthly(cmp.Top.CTC)})
}
