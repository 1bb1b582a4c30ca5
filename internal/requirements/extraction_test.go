package requirements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hyeonwoo/careerfit/internal/types"
)

func TestExtract_Success(t *testing.T) {
	var gotReq extractionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"data":{"requiredSkills":["Java","Spring"],"expectedSeniority":"junior"}}`))
	}))
	defer server.Close()

	client, err := NewExtractionClient(server.URL, 0)
	require.NoError(t, err)

	job := &types.JobPosting{ID: 7, URL: "https://jobs.example/7", CompanyName: "Acme", Title: "Backend Engineer"}
	set, err := client.Extract(context.Background(), job)

	require.NoError(t, err)
	assert.Equal(t, []string{"Java", "Spring"}, set.RequiredSkills)
	assert.Equal(t, "junior", set.ExpectedSeniority)
	assert.Equal(t, "7", gotReq.JobID)
	assert.Equal(t, "Acme", gotReq.CompanyName)
	assert.Equal(t, "Backend Engineer", gotReq.Title)
	assert.Equal(t, "https://jobs.example/7", gotReq.JobURL)
}

func TestExtract_SchemaViolationIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// requiredSkills must be an array of strings
		_, _ = w.Write([]byte(`{"data":{"requiredSkills":"Java"}}`))
	}))
	defer server.Close()

	client, err := NewExtractionClient(server.URL, 0)
	require.NoError(t, err)

	_, err = client.Extract(context.Background(), &types.JobPosting{ID: 7})

	var upstream *types.UpstreamError
	require.ErrorAs(t, err, &upstream)
}

func TestExtract_Non2xxIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewExtractionClient(server.URL, 0)
	require.NoError(t, err)

	_, err = client.Extract(context.Background(), &types.JobPosting{ID: 7})

	var upstream *types.UpstreamError
	require.ErrorAs(t, err, &upstream)
}

type stubExtractor struct {
	set   *types.JobRequirementSet
	err   error
	calls int
}

func (s *stubExtractor) Extract(_ context.Context, _ *types.JobPosting) (*types.JobRequirementSet, error) {
	s.calls++
	return s.set, s.err
}

func TestResolve_ExtractionAcceptedWhenNonEmpty(t *testing.T) {
	extractor := &stubExtractor{set: &types.JobRequirementSet{RequiredSkills: []string{" Java ", "Java"}}}
	resolver := NewResolver(extractor, zap.NewNop())

	set := resolver.Resolve(context.Background(), &types.JobPosting{ID: 1, Requirements: "- Go"})

	assert.Equal(t, 1, extractor.calls)
	// extraction result is normalized, fallback text untouched
	assert.Equal(t, []string{"Java"}, set.RequiredSkills)
}

func TestResolve_FallsBackOnExtractionError(t *testing.T) {
	extractor := &stubExtractor{err: errors.New("boom")}
	resolver := NewResolver(extractor, zap.NewNop())

	set := resolver.Resolve(context.Background(), &types.JobPosting{ID: 1, Requirements: "- Go"})

	assert.Equal(t, []string{"Go"}, set.RequiredSkills)
}

func TestResolve_FallsBackOnEmptyExtraction(t *testing.T) {
	extractor := &stubExtractor{set: &types.JobRequirementSet{}}
	resolver := NewResolver(extractor, zap.NewNop())

	set := resolver.Resolve(context.Background(), &types.JobPosting{ID: 1, Requirements: "- Go"})

	assert.Equal(t, []string{"Go"}, set.RequiredSkills)
}
