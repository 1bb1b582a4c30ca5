// Package embedding wraps the remote embedding service and provides
// vector similarity utilities.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hyeonwoo/careerfit/internal/types"
)

const serviceName = "embedding service"

// DefaultTimeout bounds a single embedding round trip.
const DefaultTimeout = 30 * time.Second

// apiKeyHeader carries the embedding service API key.
const apiKeyHeader = "X-API-Key"

// Config holds the embedding client configuration.
type Config struct {
	EndpointURL string
	APIKey      string
	Model       string
	Timeout     time.Duration
}

// Client is an HTTP client for the embedding service. A single instance is
// shared per process and injected into consumers.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates an embedding client from config.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type embedRequest struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

type embedResponse struct {
	Embedding struct {
		Values []float64 `json:"values"`
	} `json:"embedding"`
}

// Embed converts text into a fixed-length float vector with a single round
// trip. Blank text is an InvalidInputError; any transport, status, or
// decoding problem is an UpstreamError.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &types.InvalidInputError{Message: "text to embed is empty"}
	}
	if c.cfg.EndpointURL == "" {
		return nil, &types.UpstreamError{Service: serviceName, Message: "endpoint URL is not configured"}
	}

	body, err := json.Marshal(embedRequest{Model: c.cfg.Model, Text: text})
	if err != nil {
		return nil, &types.UpstreamError{Service: serviceName, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.EndpointURL, bytes.NewReader(body))
	if err != nil {
		return nil, &types.UpstreamError{Service: serviceName, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &types.UpstreamError{Service: serviceName, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &types.UpstreamError{
			Service: serviceName,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.UpstreamError{Service: serviceName, Message: "failed to read response", Cause: err}
	}

	var decoded embedResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &types.UpstreamError{Service: serviceName, Message: "malformed response body", Cause: err}
	}
	if len(decoded.Embedding.Values) == 0 {
		return nil, &types.UpstreamError{Service: serviceName, Message: "response carries no embedding values"}
	}

	return decoded.Embedding.Values, nil
}
