package matching

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hyeonwoo/careerfit/internal/types"
	"github.com/hyeonwoo/careerfit/internal/vectorindex"
)

type fakeEmbedder struct {
	mu     sync.Mutex
	vector []float64
	err    error
	calls  int
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.vector, f.err
}

type fakeIndex struct {
	mu          sync.Mutex
	results     []types.MatchResult
	searchErr   error
	searchCalls int
	upserts     []vectorindex.Point
	upsertErr   error
	deleted     []string
}

func (f *fakeIndex) Upsert(_ context.Context, _ string, points []vectorindex.Point) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts = append(f.upserts, points...)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, _ []string, _ []float64, _ int, _ types.Payload) ([]types.MatchResult, error) {
	f.searchCalls++
	return f.results, f.searchErr
}

func (f *fakeIndex) Delete(_ context.Context, _ string, pointID string) error {
	f.deleted = append(f.deleted, pointID)
	return nil
}

type fakeStore struct {
	roles      map[string]*types.TargetProfile
	activities map[int64]*types.Activity
	upserts    []types.ActivityRoleAssociation
	failed     []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		roles:      make(map[string]*types.TargetProfile),
		activities: make(map[int64]*types.Activity),
	}
}

func (f *fakeStore) GetRole(_ context.Context, id string) (*types.TargetProfile, error) {
	role, ok := f.roles[id]
	if !ok {
		return nil, &types.NotFoundError{Kind: "role", ID: id}
	}
	return role, nil
}

func (f *fakeStore) GetActivity(_ context.Context, id int64) (*types.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, &types.NotFoundError{Kind: "activity", ID: fmt.Sprintf("%d", id)}
	}
	return a, nil
}

func (f *fakeStore) UpsertAssociation(_ context.Context, a *types.ActivityRoleAssociation) error {
	f.upserts = append(f.upserts, *a)
	return nil
}

func (f *fakeStore) MarkAssociationFailed(_ context.Context, _ int64, roleID string) error {
	f.failed = append(f.failed, roleID)
	return nil
}

func newTestOrchestrator(embedder *fakeEmbedder, index *fakeIndex, store *fakeStore) *Orchestrator {
	return New(Config{
		ActivityCollections: []string{"activities"},
		JobCollection:       "jobs",
	}, embedder, index, store, zap.NewNop())
}

func TestRefreshMatches_UnknownRoleIsNotFound(t *testing.T) {
	o := newTestOrchestrator(&fakeEmbedder{}, &fakeIndex{}, newFakeStore())

	_, err := o.RefreshMatches(context.Background(), "nope", 10)

	var notFound *types.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRefreshMatches_EmptyDocumentSkipsEmbedding(t *testing.T) {
	store := newFakeStore()
	store.roles["r1"] = &types.TargetProfile{ID: "r1"} // no renderable fields
	embedder := &fakeEmbedder{vector: []float64{1}}
	index := &fakeIndex{}
	o := newTestOrchestrator(embedder, index, store)

	associations, err := o.RefreshMatches(context.Background(), "r1", 10)

	require.NoError(t, err)
	assert.Empty(t, associations)
	assert.Zero(t, embedder.calls)
	assert.Zero(t, index.searchCalls)
}

func TestRefreshMatches_EmbeddingFailureDegradesToEmpty(t *testing.T) {
	store := newFakeStore()
	store.roles["r1"] = &types.TargetProfile{ID: "r1", Name: "Backend Engineer"}
	embedder := &fakeEmbedder{err: &types.UpstreamError{Service: "embedding service", Message: "down"}}
	index := &fakeIndex{}
	o := newTestOrchestrator(embedder, index, store)

	associations, err := o.RefreshMatches(context.Background(), "r1", 10)

	require.NoError(t, err)
	assert.Empty(t, associations)
	assert.Zero(t, index.searchCalls)
}

func TestRefreshMatches_SearchFailureDegradesToEmpty(t *testing.T) {
	store := newFakeStore()
	store.roles["r1"] = &types.TargetProfile{ID: "r1", Name: "Backend Engineer"}
	embedder := &fakeEmbedder{vector: []float64{0.1, 0.2}}
	index := &fakeIndex{searchErr: errors.New("search down")}
	o := newTestOrchestrator(embedder, index, store)

	associations, err := o.RefreshMatches(context.Background(), "r1", 10)

	require.NoError(t, err)
	assert.Empty(t, associations)
}

func TestRefreshMatches_HappyPath(t *testing.T) {
	store := newFakeStore()
	store.roles["r1"] = &types.TargetProfile{ID: "r1", Name: "Backend Engineer"}
	store.activities[42] = &types.Activity{ID: 42, Title: "Spring Bootcamp"}
	store.activities[7] = &types.Activity{ID: 7, Title: "Cloud Hackathon"}

	index := &fakeIndex{results: []types.MatchResult{
		{PointID: "activity-42", Score: 0.92, Payload: types.Payload{
			"entity_id":           "42",
			"matchedRequirements": []any{"Spring", "Java"},
			"matchedPreferences":  "Docker",
		}},
		{PointID: "activity-7", Score: 0.81, Payload: types.Payload{"entity_id": float64(7)}},
		{PointID: "activity-x", Score: 0.75, Payload: types.Payload{"entity_id": "not-a-number"}},
		{PointID: "activity-9", Score: 0.70, Payload: types.Payload{"entity_id": "9"}}, // vanished entity
	}}
	o := newTestOrchestrator(&fakeEmbedder{vector: []float64{0.1}}, index, store)

	associations, err := o.RefreshMatches(context.Background(), "r1", 10)

	require.NoError(t, err)
	require.Len(t, associations, 2)

	first := associations[0]
	assert.Equal(t, int64(42), first.ActivityID)
	assert.Equal(t, "r1", first.RoleID)
	assert.InDelta(t, 0.92, first.SimilarityScore, 1e-9)
	assert.Equal(t, types.SyncSynced, first.SyncStatus)
	assert.JSONEq(t, `["Spring","Java"]`, first.MatchedRequirements)
	assert.Equal(t, "Docker", first.MatchedPreferences)
	assert.False(t, first.LastSyncedAt.IsZero())

	assert.Equal(t, int64(7), associations[1].ActivityID)
	assert.Len(t, store.upserts, 2)
}

func TestIndexActivity_UpsertsPointWithStableID(t *testing.T) {
	index := &fakeIndex{}
	o := newTestOrchestrator(&fakeEmbedder{vector: []float64{0.1, 0.2}}, index, newFakeStore())

	o.IndexActivity(context.Background(), &types.Activity{ID: 42, Title: "Spring Bootcamp", Category: "bootcamp"})

	require.Len(t, index.upserts, 1)
	point := index.upserts[0]
	assert.Equal(t, "activity-42", point.ID)
	assert.Equal(t, []float64{0.1, 0.2}, point.Vector)
	id, ok := point.Payload.EntityID("entity_id")
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "activity", point.Payload["kind"])
}

func TestIndexActivity_FailuresAreSwallowed(t *testing.T) {
	index := &fakeIndex{upsertErr: errors.New("index down")}
	o := newTestOrchestrator(&fakeEmbedder{vector: []float64{0.1}}, index, newFakeStore())

	// must not panic or propagate
	o.IndexActivity(context.Background(), &types.Activity{ID: 1, Title: "Hackathon"})

	embedFail := &fakeEmbedder{err: errors.New("embed down")}
	o = newTestOrchestrator(embedFail, &fakeIndex{}, newFakeStore())
	o.IndexActivity(context.Background(), &types.Activity{ID: 1, Title: "Hackathon"})
}

func TestIndexActivity_EmptyDocumentSkipsEmbedding(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float64{0.1}}
	o := newTestOrchestrator(embedder, &fakeIndex{}, newFakeStore())

	o.IndexActivity(context.Background(), &types.Activity{ID: 1})

	assert.Zero(t, embedder.calls)
}

func TestBulkIndexActivities_IndexesAll(t *testing.T) {
	index := &fakeIndex{}
	o := newTestOrchestrator(&fakeEmbedder{vector: []float64{0.1}}, index, newFakeStore())

	activities := []*types.Activity{
		{ID: 1, Title: "One"},
		{ID: 2, Title: "Two"},
		{ID: 3, Title: "Three"},
	}
	err := o.BulkIndexActivities(context.Background(), activities, 2)

	require.NoError(t, err)
	assert.Len(t, index.upserts, 3)
}

func TestMarkFailed_RecordsPair(t *testing.T) {
	store := newFakeStore()
	o := newTestOrchestrator(&fakeEmbedder{}, &fakeIndex{}, store)

	o.MarkFailed(context.Background(), 42, "r1")

	assert.Equal(t, []string{"r1"}, store.failed)
}

func TestDeleteActivityPoint(t *testing.T) {
	index := &fakeIndex{}
	o := newTestOrchestrator(&fakeEmbedder{}, index, newFakeStore())

	o.DeleteActivityPoint(context.Background(), 42)

	assert.Equal(t, []string{"activity-42"}, index.deleted)
}
