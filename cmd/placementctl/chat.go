package main

import (
	"strings"

	"placement-workers/internal/catalog"
	"placement-workers/internal/scoring/chat"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the placement assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	msg := strings.Join(args, " ")
	return printJSON(cmd.OutOrStdout(), map[string]interface{}{
		"intent": chat.Classify(msg),
		"reply":  chat.Respond(msg, catalog.SeedEmployers()),
	})
}
