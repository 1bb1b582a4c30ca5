package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hyeonwoo/careerfit/internal/types"
)

// UpsertAssociation creates or overwrites the association row for a
// (activity, role) pair. Last writer wins; the orchestrator serializes
// writers per pair.
func (s *Store) UpsertAssociation(ctx context.Context, a *types.ActivityRoleAssociation) error {
	if a == nil {
		return &types.InvalidInputError{Message: "association is required"}
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO activity_role_matches
		   (activity_id, role_id, similarity_score, matched_requirements,
		    matched_preferences, sync_status, last_synced_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (activity_id, role_id) DO UPDATE SET
		   similarity_score = $3, matched_requirements = $4,
		   matched_preferences = $5, sync_status = $6, last_synced_at = $7`,
		a.ActivityID, a.RoleID, a.SimilarityScore, a.MatchedRequirements,
		a.MatchedPreferences, a.SyncStatus, a.LastSyncedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert association (%d, %s): %w", a.ActivityID, a.RoleID, err)
	}
	return nil
}

// MarkAssociationFailed records a failed sync for a pair without touching
// the previously synced score; an absent row is inserted with a zero score.
func (s *Store) MarkAssociationFailed(ctx context.Context, activityID int64, roleID string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO activity_role_matches
		   (activity_id, role_id, similarity_score, sync_status, last_synced_at)
		 VALUES ($1, $2, 0, $3, $4)
		 ON CONFLICT (activity_id, role_id) DO UPDATE SET
		   sync_status = $3, last_synced_at = $4`,
		activityID, roleID, types.SyncFailed, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to mark association (%d, %s) failed: %w", activityID, roleID, err)
	}
	return nil
}

// ListAssociationsByRole returns the cached matches for a role ordered by
// similarity, best first.
func (s *Store) ListAssociationsByRole(ctx context.Context, roleID string) ([]types.ActivityRoleAssociation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT activity_id, role_id, similarity_score, matched_requirements,
		        matched_preferences, sync_status, last_synced_at
		 FROM activity_role_matches
		 WHERE role_id = $1
		 ORDER BY similarity_score DESC`,
		roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list associations for role %s: %w", roleID, err)
	}
	defer rows.Close()

	var out []types.ActivityRoleAssociation
	for rows.Next() {
		var a types.ActivityRoleAssociation
		if err := rows.Scan(&a.ActivityID, &a.RoleID, &a.SimilarityScore,
			&a.MatchedRequirements, &a.MatchedPreferences, &a.SyncStatus, &a.LastSyncedAt); err != nil {
			return nil, fmt.Errorf("failed to scan association: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate associations: %w", err)
	}
	return out, nil
}
