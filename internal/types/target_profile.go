// Package types provides type definitions for structured data used throughout the careerfit engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TargetProfile represents a role (or a job-posting-derived synthetic role)
// that users are matched and scored against.
type TargetProfile struct {
	ID                        string          `json:"id"`
	Name                      string          `json:"name"`
	Description               string          `json:"description,omitempty"`
	ExpectedSeniority         string          `json:"expected_seniority,omitempty"`
	RequiredSkills            []WeightedEntry `json:"required_skills"`
	BonusSkills               []WeightedEntry `json:"bonus_skills"`
	MajorMapping              []WeightedEntry `json:"major_mapping"`
	RecommendedCertifications []string        `json:"recommended_certifications"`
}

// WeightedEntry is a named entry with a positive weight. Duplicate names are
// allowed; scoring sums them rather than deduplicating.
type WeightedEntry struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}
