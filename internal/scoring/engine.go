// Package scoring computes deterministic fit scores of a user profile
// against a target role. The formulas are intentionally simple monotonic
// count-based proxies with fixed coefficients; they must be reproduced
// exactly, so every coefficient lives in a named constant.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyeonwoo/careerfit/internal/types"
)

// Coefficients of the four sub-score formulas.
const (
	skillBase       = 0.4
	skillPerEntry   = 0.05
	expBase         = 0.3
	expPerEntry     = 0.07
	eduBaseNoUniv   = 0.4
	eduBaseUniv     = 0.6
	eduAwardsBonus  = 0.15
	evidenceBase    = 0.25
	evidencePerCert = 0.08
)

// missingSkillImpact is the fixed per-skill impact reported with each gap.
// It is a presentation-layer estimate, not derived from the breakdown.
const missingSkillImpact = 0.08

// FitResult is the full output of a scoring run.
type FitResult struct {
	Breakdown       types.RoleFitBreakdown `json:"breakdown"`
	OverallScore    float64                `json:"overall_score"`
	MissingSkills   []MissingSkill         `json:"missing_skills"`
	Recommendations []string               `json:"recommendations"`
}

// MissingSkill is a desired skill the user does not own yet.
type MissingSkill struct {
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
}

// Score evaluates a user profile against a target. Scoring N targets is N
// independent invocations; there is no cross-target normalization.
func Score(profile *types.UserProfileSnapshot, target *types.TargetProfile) (*FitResult, error) {
	if profile == nil {
		return nil, &types.InvalidInputError{Message: "user profile is required"}
	}
	if target == nil {
		return nil, &types.InvalidInputError{Message: "target profile is required"}
	}

	breakdown := types.RoleFitBreakdown{
		SkillFit:      skillFit(profile),
		ExperienceFit: experienceFit(profile),
		EducationFit:  educationFit(profile),
		EvidenceFit:   evidenceFit(profile),
	}

	missing := missingSkills(profile, target)
	return &FitResult{
		Breakdown:       breakdown,
		OverallScore:    breakdown.Overall(),
		MissingSkills:   missing,
		Recommendations: recommendations(breakdown, missing),
	}, nil
}

func skillFit(p *types.UserProfileSnapshot) float64 {
	return types.Clamp01(skillBase + skillPerEntry*float64(len(p.TechStack)))
}

func experienceFit(p *types.UserProfileSnapshot) float64 {
	return types.Clamp01(expBase + expPerEntry*float64(len(p.Experiences)))
}

func educationFit(p *types.UserProfileSnapshot) float64 {
	base := eduBaseNoUniv
	if strings.TrimSpace(p.University.Name) != "" {
		base = eduBaseUniv
	}
	if len(p.Awards) > 0 {
		base += eduAwardsBonus
	}
	return types.Clamp01(base)
}

func evidenceFit(p *types.UserProfileSnapshot) float64 {
	return types.Clamp01(evidenceBase + evidencePerCert*float64(len(p.Certifications)))
}

// desiredSkillsByCategory is the coarse category table behind gap analysis.
var desiredSkillsByCategory = map[string][]string{
	"backend-entry": {"Spring", "AWS", "Docker"},
	"data-science":  {"Python", "SQL", "TensorFlow"},
	"default":       {"Communication", "Teamwork"},
}

// targetCategory maps a target onto the desired-skill table key using its
// id and name only; this is deliberately coarse.
func targetCategory(target *types.TargetProfile) string {
	key := strings.ToLower(target.ID + " " + target.Name)
	switch {
	case strings.Contains(key, "backend"):
		return "backend-entry"
	case strings.Contains(key, "data"):
		return "data-science"
	default:
		return "default"
	}
}

// missingSkills reports desired skills with no case-insensitive substring
// match among the user's owned skill names.
func missingSkills(p *types.UserProfileSnapshot, target *types.TargetProfile) []MissingSkill {
	owned := make([]string, 0, len(p.TechStack))
	for _, s := range p.TechStack {
		owned = append(owned, strings.ToLower(s.Name))
	}

	desired := desiredSkillsByCategory[targetCategory(target)]
	missing := make([]MissingSkill, 0, len(desired))
	for _, want := range desired {
		wantLower := strings.ToLower(want)
		found := false
		for _, have := range owned {
			if strings.Contains(have, wantLower) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, MissingSkill{Name: want, Impact: missingSkillImpact})
		}
	}
	return missing
}

// recommendations ranks textual advice by the weakest sub-scores first.
func recommendations(b types.RoleFitBreakdown, missing []MissingSkill) []string {
	type weakness struct {
		score float64
		text  string
	}
	ranked := []weakness{
		{b.SkillFit, "Broaden your tech stack with tools used in your target roles."},
		{b.ExperienceFit, "Add hands-on experiences such as projects, internships, or club activities."},
		{b.EducationFit, "Complete your education details and record awards you have earned."},
		{b.EvidenceFit, "Earn certifications that back up your skills with verifiable evidence."},
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	out := make([]string, 0, len(ranked)+1)
	for _, w := range ranked {
		out = append(out, w.text)
	}
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, m := range missing {
			names[i] = m.Name
		}
		out = append(out, fmt.Sprintf("Close the gap on: %s.", strings.Join(names, ", ")))
	}
	return out
}
