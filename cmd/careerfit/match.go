package main

import (
	"github.com/spf13/cobra"
)

var matchTopK int

var matchCmd = &cobra.Command{
	Use:   "match <role-id>",
	Short: "Refresh activity matches for a target role",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().IntVar(&matchTopK, "top-k", 20, "number of matches to request")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	associations, err := e.orchestrator.RefreshMatches(ctx, args[0], matchTopK)
	if err != nil {
		return err
	}
	return printJSON(associations)
}
