package matching

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hyeonwoo/careerfit/internal/document"
	"github.com/hyeonwoo/careerfit/internal/types"
	"github.com/hyeonwoo/careerfit/internal/vectorindex"
)

// IndexActivity embeds an activity and upserts its point into the first
// configured activity collection. Failures are logged and swallowed: the
// write path that created the activity must never block on the index.
func (o *Orchestrator) IndexActivity(ctx context.Context, activity *types.Activity) {
	if activity == nil {
		return
	}
	payload := types.Payload{
		payloadKeyEntityID: fmt.Sprintf("%d", activity.ID),
		payloadKeyKind:     KindActivity,
		"category":         activity.Category,
		"title":            activity.Title,
	}
	o.indexPoint(ctx, o.activityCollection(), KindActivity, activity.ID,
		document.FromActivity(activity), payload)
}

// IndexJobPosting embeds a job posting and upserts its point into the job
// collection. Failures are logged and swallowed.
func (o *Orchestrator) IndexJobPosting(ctx context.Context, job *types.JobPosting) {
	if job == nil {
		return
	}
	payload := types.Payload{
		payloadKeyEntityID: fmt.Sprintf("%d", job.ID),
		payloadKeyKind:     KindJob,
		"company":          job.CompanyName,
		"title":            job.Title,
	}
	o.indexPoint(ctx, o.cfg.JobCollection, KindJob, job.ID,
		document.FromJobPosting(job), payload)
}

// DeleteActivityPoint removes an activity's point from the index, e.g.
// after the activity is deleted. Idempotent upstream; failures are logged.
func (o *Orchestrator) DeleteActivityPoint(ctx context.Context, activityID int64) {
	pointID := PointID(KindActivity, activityID)
	if err := o.index.Delete(ctx, o.activityCollection(), pointID); err != nil {
		o.logger.Warn("failed to delete activity point",
			zap.String("point_id", pointID), zap.Error(err))
	}
}

// indexPoint runs the build-embed-upsert flow for one entity.
func (o *Orchestrator) indexPoint(ctx context.Context, collection, kind string, entityID int64, doc string, payload types.Payload) {
	if strings.TrimSpace(doc) == "" {
		o.logger.Info("entity has insufficient data to index",
			zap.String("kind", kind), zap.Int64("entity_id", entityID))
		return
	}

	vector, err := o.embedder.Embed(ctx, doc)
	if err != nil {
		o.logger.Warn("embedding failed, skipping indexing",
			zap.String("kind", kind), zap.Int64("entity_id", entityID), zap.Error(err))
		return
	}

	point := vectorindex.Point{
		ID:      PointID(kind, entityID),
		Vector:  vector,
		Payload: payload,
	}
	if err := o.index.Upsert(ctx, collection, []vectorindex.Point{point}); err != nil {
		o.logger.Warn("vector upsert failed, skipping indexing",
			zap.String("kind", kind), zap.Int64("entity_id", entityID), zap.Error(err))
		return
	}

	o.logger.Debug("indexed entity",
		zap.String("kind", kind), zap.Int64("entity_id", entityID),
		zap.String("collection", collection))
}

// BulkIndexActivities indexes a batch of activities over a bounded worker
// pool. Individual failures are already swallowed by IndexActivity, so the
// group only propagates context cancellation.
func (o *Orchestrator) BulkIndexActivities(ctx context.Context, activities []*types.Activity, concurrency int) error {
	if concurrency < 1 {
		concurrency = 4
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, activity := range activities {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o.IndexActivity(ctx, activity)
			return nil
		})
	}
	return g.Wait()
}

// BulkIndexJobPostings indexes a batch of job postings over a bounded
// worker pool.
func (o *Orchestrator) BulkIndexJobPostings(ctx context.Context, jobs []*types.JobPosting, concurrency int) error {
	if concurrency < 1 {
		concurrency = 4
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o.IndexJobPosting(ctx, job)
			return nil
		})
	}
	return g.Wait()
}

// PointID builds the stable, collision-free point id for an entity.
func PointID(kind string, entityID int64) string {
	return fmt.Sprintf("%s-%d", kind, entityID)
}

func (o *Orchestrator) activityCollection() string {
	if len(o.cfg.ActivityCollections) == 0 {
		return ""
	}
	return o.cfg.ActivityCollections[0]
}
