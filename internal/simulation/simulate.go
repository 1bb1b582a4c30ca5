// Package simulation provides pure "what-if" projections over a base fit
// score. Nothing here touches persisted state.
package simulation

import "github.com/hyeonwoo/careerfit/internal/types"

// Per-item delta coefficients. Education is not simulatable by this design.
const (
	skillDeltaPerItem      = 0.03
	experienceDeltaPerItem = 0.025
	evidenceDeltaPerItem   = 0.02
	deltaScale             = 25
)

// Projection is the result of a what-if simulation.
type Projection struct {
	BaseScore      float64                `json:"base_score"`
	ProjectedScore float64                `json:"projected_score"`
	Delta          float64                `json:"delta"`
	DeltaBreakdown types.RoleFitBreakdown `json:"delta_breakdown"`
}

// Simulate projects the score change from hypothetically adding skills,
// experiences, and certifications to the profile behind baseScore.
func Simulate(baseScore float64, addSkills, addExperiences, addCertifications []string) Projection {
	deltas := types.RoleFitBreakdown{
		SkillFit:      types.Clamp01(skillDeltaPerItem * float64(len(addSkills))),
		ExperienceFit: types.Clamp01(experienceDeltaPerItem * float64(len(addExperiences))),
		EducationFit:  0,
		EvidenceFit:   types.Clamp01(evidenceDeltaPerItem * float64(len(addCertifications))),
	}

	sum := deltas.SkillFit + deltas.ExperienceFit + deltas.EducationFit + deltas.EvidenceFit
	projected := types.Round1(baseScore + sum*deltaScale)

	return Projection{
		BaseScore:      baseScore,
		ProjectedScore: projected,
		Delta:          types.Round1(projected - baseScore),
		DeltaBreakdown: deltas,
	}
}
