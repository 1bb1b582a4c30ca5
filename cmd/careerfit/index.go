package main

import (
	"github.com/spf13/cobra"
)

var (
	indexJobs        bool
	indexConcurrency int
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Bulk index activities (or job postings) into the vector index",
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&indexJobs, "jobs", false, "index job postings instead of activities")
	indexCmd.Flags().IntVar(&indexConcurrency, "concurrency", 4, "number of concurrent indexing workers")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	e, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	if indexJobs {
		jobs, err := e.store.ListJobPostings(ctx)
		if err != nil {
			return err
		}
		if err := e.orchestrator.BulkIndexJobPostings(ctx, jobs, indexConcurrency); err != nil {
			return err
		}
		return printJSON(map[string]int{"indexed_job_postings": len(jobs)})
	}

	activities, err := e.store.ListActivities(ctx)
	if err != nil {
		return err
	}
	if err := e.orchestrator.BulkIndexActivities(ctx, activities, indexConcurrency); err != nil {
		return err
	}
	return printJSON(map[string]int{"indexed_activities": len(activities)})
}
