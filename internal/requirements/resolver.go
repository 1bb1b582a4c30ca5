// Package requirements resolves a structured requirement set for a job
// posting, either via an external extraction provider or by heuristically
// parsing the posting's free-text fields.
package requirements

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hyeonwoo/careerfit/internal/types"
)

// Extractor obtains a requirement set for a job posting from an external
// source. Implementations raise honestly; the resolver decides to degrade.
type Extractor interface {
	Extract(ctx context.Context, job *types.JobPosting) (*types.JobRequirementSet, error)
}

// Resolver produces a JobRequirementSet for a posting. The shape of the
// result is identical regardless of which path produced it.
type Resolver struct {
	extractor Extractor
	logger    *zap.Logger
}

// NewResolver creates a resolver. The extractor may be nil, in which case
// only the heuristic fallback runs.
func NewResolver(extractor Extractor, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{extractor: extractor, logger: logger}
}

// Resolve returns the requirement set for a job posting. Extraction
// failures and empty extraction results fall back to free-text parsing;
// they are logged and never propagated.
func (r *Resolver) Resolve(ctx context.Context, job *types.JobPosting) *types.JobRequirementSet {
	if r.extractor != nil {
		set, err := r.extractor.Extract(ctx, job)
		switch {
		case err != nil:
			r.logger.Warn("requirement extraction failed, using fallback",
				zap.Int64("job_id", job.ID), zap.Error(err))
		case set.IsEmpty():
			r.logger.Info("requirement extraction returned empty set, using fallback",
				zap.Int64("job_id", job.ID))
		default:
			return normalizeSet(set)
		}
	}
	return r.fallback(job)
}

// normalizeSet trims, blank-filters, and order-preserving-dedupes every
// list of the set.
func normalizeSet(set *types.JobRequirementSet) *types.JobRequirementSet {
	return &types.JobRequirementSet{
		RequiredSkills:          normalizeList(set.RequiredSkills),
		PreferredSkills:         normalizeList(set.PreferredSkills),
		RequiredExperiences:     normalizeList(set.RequiredExperiences),
		PreferredExperiences:    normalizeList(set.PreferredExperiences),
		RequiredMajors:          normalizeList(set.RequiredMajors),
		PreferredMajors:         normalizeList(set.PreferredMajors),
		RequiredCertifications:  normalizeList(set.RequiredCertifications),
		PreferredCertifications: normalizeList(set.PreferredCertifications),
		ExpectedSeniority:       strings.TrimSpace(set.ExpectedSeniority),
	}
}

func normalizeList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
