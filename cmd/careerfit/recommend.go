package main

import (
	"github.com/spf13/cobra"

	"github.com/hyeonwoo/careerfit/internal/simulation"
	"github.com/hyeonwoo/careerfit/internal/types"
)

var recommendLimit int

var recommendCmd = &cobra.Command{
	Use:   "recommend <role-id>",
	Short: "Recommend improvements from a role's cached activity matches",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 5, "maximum number of recommendations")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	e, err := newEngine(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	roleID := args[0]
	associations, err := e.store.ListAssociationsByRole(ctx, roleID)
	if err != nil {
		return err
	}

	candidates := make([]*types.Activity, 0, recommendLimit)
	for _, assoc := range associations {
		if len(candidates) == recommendLimit {
			break
		}
		activity, err := e.store.GetActivity(ctx, assoc.ActivityID)
		if err != nil {
			continue // cached match for a vanished activity
		}
		candidates = append(candidates, activity)
	}

	return printJSON(simulation.RecommendImprovements(roleID, candidates))
}
