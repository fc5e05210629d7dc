// Command placementctl runs the placement scorers locally, without a broker.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"placement-workers/internal/match"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var matchMode string

var rootCmd = &cobra.Command{
	Use:           "placementctl",
	Short:         "Campus placement scoring tools",
	Long:          "placementctl runs the career-path, skill-gap, offer, resume, readiness and chat scorers against the built-in demo data and prints JSON.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&matchMode, "match-mode", match.ModeSubstring, "Keyword matching: substring or folded")
}

func matcher() match.Matcher {
	return match.NewMatcher(matchMode)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
