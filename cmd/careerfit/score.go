package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hyeonwoo/careerfit/internal/requirements"
	"github.com/hyeonwoo/careerfit/internal/scoring"
	"github.com/hyeonwoo/careerfit/internal/types"
)

var (
	scoreRoleID string
	scoreJobID  int64
)

var scoreCmd = &cobra.Command{
	Use:   "score <user-id>",
	Short: "Score a user's fit against a role or a job posting",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreRoleID, "role", "", "target role id")
	scoreCmd.Flags().Int64Var(&scoreJobID, "job", 0, "target job posting id")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	if (scoreRoleID == "") == (scoreJobID == 0) {
		return fmt.Errorf("exactly one of --role or --job is required")
	}

	userID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", args[0], err)
	}

	ctx := cmd.Context()
	e, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	profile, err := e.store.GetUserProfile(ctx, userID)
	if err != nil {
		return err
	}

	var target *types.TargetProfile
	if scoreRoleID != "" {
		target, err = e.store.GetRole(ctx, scoreRoleID)
		if err != nil {
			return err
		}
	} else {
		job, err := e.store.GetJobPosting(ctx, scoreJobID)
		if err != nil {
			return err
		}
		set := e.resolver.Resolve(ctx, job)
		target = requirements.ProjectTarget(job, set)
	}

	result, err := scoring.Score(profile, target)
	if err != nil {
		return err
	}
	return printJSON(result)
}
