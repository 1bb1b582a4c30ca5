package requirements

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/hyeonwoo/careerfit/internal/types"
)

const extractionService = "requirement extraction service"

// DefaultExtractionTimeout bounds a single extraction round trip.
const DefaultExtractionTimeout = 30 * time.Second

//go:embed requirement_set.schema.json
var requirementSetSchema []byte

// ExtractionClient calls the external job-requirement extraction service.
// It implements Extractor.
type ExtractionClient struct {
	url        string
	httpClient *http.Client
	schema     *gojsonschema.Schema
}

// NewExtractionClient creates an extraction client for the given endpoint.
func NewExtractionClient(url string, timeout time.Duration) (*ExtractionClient, error) {
	if url == "" {
		return nil, fmt.Errorf("extraction service URL is required")
	}
	if timeout <= 0 {
		timeout = DefaultExtractionTimeout
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(requirementSetSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile requirement set schema: %w", err)
	}

	return &ExtractionClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		schema:     schema,
	}, nil
}

type extractionRequest struct {
	JobURL      string `json:"jobUrl"`
	JobID       string `json:"jobId"`
	CompanyName string `json:"companyName"`
	Title       string `json:"title"`
}

type extractionResponse struct {
	Data json.RawMessage `json:"data"`
}

// Extract posts the job's identifying fields and decodes the wrapped
// requirement payload, accepting it only if it validates against the
// requirement-set schema.
func (c *ExtractionClient) Extract(ctx context.Context, job *types.JobPosting) (*types.JobRequirementSet, error) {
	if job == nil {
		return nil, &types.InvalidInputError{Message: "job posting is required"}
	}

	body, err := json.Marshal(extractionRequest{
		JobURL:      job.URL,
		JobID:       strconv.FormatInt(job.ID, 10),
		CompanyName: job.CompanyName,
		Title:       job.Title,
	})
	if err != nil {
		return nil, &types.UpstreamError{Service: extractionService, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &types.UpstreamError{Service: extractionService, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &types.UpstreamError{Service: extractionService, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &types.UpstreamError{
			Service: extractionService,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.UpstreamError{Service: extractionService, Message: "failed to read response", Cause: err}
	}

	var decoded extractionResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &types.UpstreamError{Service: extractionService, Message: "malformed response body", Cause: err}
	}
	if len(decoded.Data) == 0 {
		return nil, &types.UpstreamError{Service: extractionService, Message: "response carries no payload"}
	}

	if err := c.validate(decoded.Data); err != nil {
		return nil, err
	}

	var set types.JobRequirementSet
	if err := json.Unmarshal(decoded.Data, &set); err != nil {
		return nil, &types.UpstreamError{Service: extractionService, Message: "malformed requirement payload", Cause: err}
	}
	return &set, nil
}

// validate checks the payload against the requirement-set JSON schema.
func (c *ExtractionClient) validate(payload json.RawMessage) error {
	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return &types.UpstreamError{Service: extractionService, Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return &types.UpstreamError{
			Service: extractionService,
			Message: "payload does not match requirement set schema: " + strings.Join(msgs, "; "),
		}
	}
	return nil
}
