//nolint:revive // types is a standard Go package name pattern
package types

import "math"

// RoleFitBreakdown holds the four independent sub-scores of a fit
// evaluation, each in [0,1]. The overall score is always recomputed from
// the breakdown via Overall, never stored separately.
type RoleFitBreakdown struct {
	SkillFit      float64 `json:"skill_fit"`
	ExperienceFit float64 `json:"experience_fit"`
	EducationFit  float64 `json:"education_fit"`
	EvidenceFit   float64 `json:"evidence_fit"`
}

// Overall returns the unweighted arithmetic mean of the four sub-scores,
// scaled to [0,100] and rounded to one decimal place.
func (b RoleFitBreakdown) Overall() float64 {
	mean := (b.SkillFit + b.ExperienceFit + b.EducationFit + b.EvidenceFit) / 4.0
	return Round1(mean * 100)
}

// Clamp01 clamps v to the [0,1] interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
