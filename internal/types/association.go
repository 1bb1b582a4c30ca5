//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SyncStatus describes the state of an activity-role association row
// relative to the vector index.
type SyncStatus string

// Sync status values for ActivityRoleAssociation.
const (
	SyncPending SyncStatus = "PENDING"
	SyncSynced  SyncStatus = "SYNCED"
	SyncFailed  SyncStatus = "FAILED"
)

// ActivityRoleAssociation is the persisted cache of a single
// (activity, role) match produced by the matching orchestrator.
// Rows are overwritten per pair on each orchestration run with
// last-writer-wins semantics.
type ActivityRoleAssociation struct {
	ActivityID          int64      `json:"activity_id"`
	RoleID              string     `json:"role_id"`
	SimilarityScore     float64    `json:"similarity_score"`
	MatchedRequirements string     `json:"matched_requirements,omitempty"`
	MatchedPreferences  string     `json:"matched_preferences,omitempty"`
	SyncStatus          SyncStatus `json:"sync_status"`
	LastSyncedAt        time.Time  `json:"last_synced_at"`
}
