// Package matching orchestrates the embed-search-associate pipeline that
// links target roles to activities through the vector index.
package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hyeonwoo/careerfit/internal/document"
	"github.com/hyeonwoo/careerfit/internal/types"
	"github.com/hyeonwoo/careerfit/internal/vectorindex"
)

// Payload keys written at index time and read back from search hits.
const (
	payloadKeyEntityID     = "entity_id"
	payloadKeyKind         = "kind"
	payloadKeyRequirements = "matchedRequirements"
	payloadKeyPreferences  = "matchedPreferences"
)

// Entity kinds used in point ids and payloads.
const (
	KindActivity = "activity"
	KindJob      = "job"
	KindRole     = "role"
)

// Embedder turns a document into a vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Index is the vector index surface the orchestrator needs.
type Index interface {
	Upsert(ctx context.Context, collection string, points []vectorindex.Point) error
	Search(ctx context.Context, collections []string, vector []float64, topK int, filter types.Payload) ([]types.MatchResult, error)
	Delete(ctx context.Context, collection, pointID string) error
}

// EntityStore is the persistence surface the orchestrator needs: entity
// lookups plus the association cache it exclusively owns.
type EntityStore interface {
	GetRole(ctx context.Context, id string) (*types.TargetProfile, error)
	GetActivity(ctx context.Context, id int64) (*types.Activity, error)
	UpsertAssociation(ctx context.Context, a *types.ActivityRoleAssociation) error
	MarkAssociationFailed(ctx context.Context, activityID int64, roleID string) error
}

// Config names the collections the orchestrator works against.
type Config struct {
	// ActivityCollections are searched (in order) when matching a role.
	ActivityCollections []string
	// JobCollection receives indexed job postings.
	JobCollection string
}

// Orchestrator wires the document builder, embedding client, vector index,
// and entity store into match-refresh and indexing flows.
type Orchestrator struct {
	cfg      Config
	embedder Embedder
	index    Index
	store    EntityStore
	logger   *zap.Logger
	locks    keyedMutex
	now      func() time.Time
}

// New creates an orchestrator.
func New(cfg Config, embedder Embedder, index Index, store EntityStore, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		cfg:      cfg,
		embedder: embedder,
		index:    index,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
}

// RefreshMatches recomputes activity associations for a role. An unknown
// role is a hard failure; everything downstream of that degrades to an
// empty result instead of raising, because matching is best-effort
// enrichment over the CRUD core.
func (o *Orchestrator) RefreshMatches(ctx context.Context, roleID string, topK int) ([]types.ActivityRoleAssociation, error) {
	role, err := o.store.GetRole(ctx, roleID)
	if err != nil {
		var notFound *types.NotFoundError
		if errors.As(err, &notFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load role %s: %w", roleID, err)
	}

	doc := document.FromRole(role)
	if doc == "" {
		o.logger.Info("role has insufficient data to match", zap.String("role_id", roleID))
		return []types.ActivityRoleAssociation{}, nil
	}

	vector, err := o.embedder.Embed(ctx, doc)
	if err != nil {
		o.logger.Warn("embedding failed, returning no matches",
			zap.String("role_id", roleID), zap.Error(err))
		return []types.ActivityRoleAssociation{}, nil
	}

	hits, err := o.index.Search(ctx, o.cfg.ActivityCollections, vector, topK, nil)
	if err != nil {
		o.logger.Warn("vector search failed, returning no matches",
			zap.String("role_id", roleID), zap.Error(err))
		return []types.ActivityRoleAssociation{}, nil
	}

	associations := make([]types.ActivityRoleAssociation, 0, len(hits))
	for _, hit := range hits {
		activityID, ok := hit.Payload.EntityID(payloadKeyEntityID)
		if !ok {
			o.logger.Debug("dropping hit with unparsable entity id",
				zap.String("point_id", hit.PointID))
			continue
		}

		if _, err := o.store.GetActivity(ctx, activityID); err != nil {
			var notFound *types.NotFoundError
			if errors.As(err, &notFound) {
				o.logger.Debug("skipping hit for vanished activity",
					zap.Int64("activity_id", activityID))
				continue
			}
			o.logger.Warn("activity lookup failed",
				zap.Int64("activity_id", activityID), zap.Error(err))
			continue
		}

		assoc := types.ActivityRoleAssociation{
			ActivityID:          activityID,
			RoleID:              roleID,
			SimilarityScore:     hit.Score,
			MatchedRequirements: hit.Payload.StringValue(payloadKeyRequirements),
			MatchedPreferences:  hit.Payload.StringValue(payloadKeyPreferences),
			SyncStatus:          types.SyncSynced,
			LastSyncedAt:        o.now().UTC(),
		}

		if err := o.writeAssociation(ctx, assoc); err != nil {
			o.logger.Warn("failed to persist association",
				zap.Int64("activity_id", activityID),
				zap.String("role_id", roleID), zap.Error(err))
			continue
		}
		associations = append(associations, assoc)
	}

	return associations, nil
}

// writeAssociation serializes concurrent read-modify-upsert cycles on the
// same (activity, role) pair.
func (o *Orchestrator) writeAssociation(ctx context.Context, assoc types.ActivityRoleAssociation) error {
	key := fmt.Sprintf("%d:%s", assoc.ActivityID, assoc.RoleID)
	unlock := o.locks.lock(key)
	defer unlock()
	return o.store.UpsertAssociation(ctx, &assoc)
}

// MarkFailed records a failed sync for a pair. The previously synced score
// is preserved; only status and timestamp change.
func (o *Orchestrator) MarkFailed(ctx context.Context, activityID int64, roleID string) {
	key := fmt.Sprintf("%d:%s", activityID, roleID)
	unlock := o.locks.lock(key)
	defer unlock()
	if err := o.store.MarkAssociationFailed(ctx, activityID, roleID); err != nil {
		o.logger.Warn("failed to mark association failed",
			zap.Int64("activity_id", activityID),
			zap.String("role_id", roleID), zap.Error(err))
	}
}
