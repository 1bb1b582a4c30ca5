package requirements

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hyeonwoo/careerfit/internal/llm"
	"github.com/hyeonwoo/careerfit/internal/prompts"
	"github.com/hyeonwoo/careerfit/internal/types"
)

// LLMExtractor extracts a requirement set from the posting's free text with
// an LLM. It implements Extractor and is used when no extraction service is
// configured.
type LLMExtractor struct {
	client llm.Client
}

// NewLLMExtractor creates an LLM-backed extractor.
func NewLLMExtractor(client llm.Client) *LLMExtractor {
	return &LLMExtractor{client: client}
}

// Extract prompts the LLM for a JSON requirement set.
func (e *LLMExtractor) Extract(ctx context.Context, job *types.JobPosting) (*types.JobRequirementSet, error) {
	if job == nil {
		return nil, &types.InvalidInputError{Message: "job posting is required"}
	}

	raw, err := e.client.GenerateJSON(ctx, buildExtractionPrompt(job))
	if err != nil {
		return nil, &types.UpstreamError{Service: "llm extraction", Message: "generation failed", Cause: err}
	}

	var set types.JobRequirementSet
	if err := json.Unmarshal([]byte(raw), &set); err != nil {
		return nil, &types.UpstreamError{Service: "llm extraction", Message: "malformed JSON response", Cause: err}
	}
	return &set, nil
}

// buildExtractionPrompt fills the embedded extraction template with the
// posting's text.
func buildExtractionPrompt(job *types.JobPosting) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title: %s\nCompany: %s\n", job.Title, job.CompanyName))
	if job.CareerLevel != "" {
		sb.WriteString(fmt.Sprintf("Career level: %s\n", job.CareerLevel))
	}
	if job.Requirements != "" {
		sb.WriteString("Requirements:\n" + job.Requirements + "\n")
	}
	if job.Benefits != "" {
		sb.WriteString("Preferred:\n" + job.Benefits + "\n")
	}

	template := prompts.MustGet("extraction.json", "extract_requirements")
	return prompts.Format(template, map[string]string{
		"Posting": strings.TrimRight(sb.String(), "\n"),
	})
}
