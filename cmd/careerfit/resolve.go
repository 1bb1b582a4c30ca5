package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <job-id>",
	Short: "Show the resolved requirement set for a job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	jobID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", args[0], err)
	}

	ctx := cmd.Context()
	e, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	job, err := e.store.GetJobPosting(ctx, jobID)
	if err != nil {
		return err
	}
	return printJSON(e.resolver.Resolve(ctx, job))
}
