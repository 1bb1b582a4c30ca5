// Package vectorindex wraps the remote vector database: upsert, search, and
// delete over named collections of a single index.
package vectorindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/hyeonwoo/careerfit/internal/types"
)

const serviceName = "vector index"

// DefaultTimeout bounds a single vector index round trip.
const DefaultTimeout = 30 * time.Second

// Search depth is clamped to this range regardless of the caller's request.
const (
	minTopK = 1
	maxTopK = 500
)

// Collection names a logical partition of the index together with its
// expected vector dimensionality.
type Collection struct {
	Name      string
	Dimension int
}

// Config holds the vector index client configuration.
type Config struct {
	BaseURL     string
	APIKey      string
	Collections []Collection
	Timeout     time.Duration
}

// Point is a single vector with its stable id and metadata payload.
type Point struct {
	ID      string        `json:"id"`
	Vector  []float64     `json:"vector"`
	Payload types.Payload `json:"payload,omitempty"`
}

// Client is a shared HTTP client for the vector index service.
type Client struct {
	cfg        Config
	httpClient *http.Client
	dimensions map[string]int
	logger     *zap.Logger
}

// NewClient creates a vector index client from config.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	dims := make(map[string]int, len(cfg.Collections))
	for _, c := range cfg.Collections {
		dims[c.Name] = c.Dimension
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		dimensions: dims,
		logger:     logger,
	}
}

type upsertRequest struct {
	Points []Point `json:"points"`
}

type searchRequest struct {
	Vector      []float64     `json:"vector"`
	Top         int           `json:"top"`
	WithPayload bool          `json:"with_payload"`
	Filter      types.Payload `json:"filter,omitempty"`
}

type searchResponse struct {
	Result []struct {
		ID      any           `json:"id"`
		Score   float64       `json:"score"`
		Payload types.Payload `json:"payload"`
	} `json:"result"`
}

type deleteRequest struct {
	Points []string `json:"points"`
}

// Upsert writes points into a collection. An empty batch is a no-op.
// A dimension mismatch against the collection's configured dimensionality
// is logged but the request still goes out; partial application upstream
// must be tolerated by callers.
func (c *Client) Upsert(ctx context.Context, collection string, points []Point) error {
	if len(points) == 0 {
		return nil
	}
	if c.cfg.BaseURL == "" {
		return &types.UpstreamError{Service: serviceName, Message: "base URL is not configured"}
	}

	if want, ok := c.dimensions[collection]; ok && want > 0 {
		for _, p := range points {
			if len(p.Vector) != want {
				c.logger.Warn("vector dimension mismatch",
					zap.String("collection", collection),
					zap.String("point_id", p.ID),
					zap.Int("want", want),
					zap.Int("got", len(p.Vector)))
			}
		}
	}

	url := fmt.Sprintf("%s/collections/%s/points?wait=true", c.cfg.BaseURL, collection)
	return c.do(ctx, http.MethodPut, url, upsertRequest{Points: points}, nil)
}

// Search runs a vector search across one or more collections. TopK is
// clamped to [1, 500] before being sent upstream. Fan-out results are
// concatenated and stable-sorted by score descending, so ties keep the
// original collection order.
func (c *Client) Search(ctx context.Context, collections []string, vector []float64, topK int, filter types.Payload) ([]types.MatchResult, error) {
	if c.cfg.BaseURL == "" {
		return nil, &types.UpstreamError{Service: serviceName, Message: "base URL is not configured"}
	}
	if len(vector) == 0 {
		return nil, &types.InvalidInputError{Message: "search vector is empty"}
	}
	topK = clampTopK(topK)

	merged := make([]types.MatchResult, 0, topK*len(collections))
	for _, collection := range collections {
		url := fmt.Sprintf("%s/collections/%s/points/search", c.cfg.BaseURL, collection)
		var decoded searchResponse
		err := c.do(ctx, http.MethodPost, url, searchRequest{
			Vector:      vector,
			Top:         topK,
			WithPayload: true,
			Filter:      filter,
		}, &decoded)
		if err != nil {
			return nil, err
		}
		for _, hit := range decoded.Result {
			merged = append(merged, types.MatchResult{
				PointID: fmt.Sprintf("%v", hit.ID),
				Score:   hit.Score,
				Payload: hit.Payload,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	return merged, nil
}

// Delete removes a point from a collection. Deleting a point that does not
// exist is not an error.
func (c *Client) Delete(ctx context.Context, collection, pointID string) error {
	if c.cfg.BaseURL == "" {
		return &types.UpstreamError{Service: serviceName, Message: "base URL is not configured"}
	}
	url := fmt.Sprintf("%s/collections/%s/points/delete?wait=true", c.cfg.BaseURL, collection)
	return c.do(ctx, http.MethodPost, url, deleteRequest{Points: []string{pointID}}, nil)
}

func clampTopK(topK int) int {
	if topK < minTopK {
		return minTopK
	}
	if topK > maxTopK {
		return maxTopK
	}
	return topK
}

// do executes one JSON request/response round trip against the index.
func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return &types.UpstreamError{Service: serviceName, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(encoded))
	if err != nil {
		return &types.UpstreamError{Service: serviceName, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &types.UpstreamError{Service: serviceName, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &types.UpstreamError{
			Service: serviceName,
			Message: fmt.Sprintf("unexpected status %d for %s", resp.StatusCode, url),
		}
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &types.UpstreamError{Service: serviceName, Message: "failed to read response", Cause: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &types.UpstreamError{Service: serviceName, Message: "malformed response body", Cause: err}
	}
	return nil
}
