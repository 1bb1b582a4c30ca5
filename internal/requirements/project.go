package requirements

import (
	"fmt"

	"github.com/hyeonwoo/careerfit/internal/types"
)

// Projection weights for requirement-set entries.
const (
	weightRequiredSkill  = 2.0
	weightPreferredSkill = 0.6
	weightRequiredMajor  = 1.0
	weightPreferredMajor = 0.6
)

// ProjectTarget turns a resolved requirement set into a synthetic target
// profile so the posting can be scored like a role.
func ProjectTarget(job *types.JobPosting, set *types.JobRequirementSet) *types.TargetProfile {
	target := &types.TargetProfile{
		ID:                fmt.Sprintf("job-%d", job.ID),
		Name:              job.Title,
		ExpectedSeniority: set.ExpectedSeniority,
	}

	for _, s := range set.RequiredSkills {
		target.RequiredSkills = append(target.RequiredSkills, types.WeightedEntry{Name: s, Weight: weightRequiredSkill})
	}
	for _, s := range set.PreferredSkills {
		target.BonusSkills = append(target.BonusSkills, types.WeightedEntry{Name: s, Weight: weightPreferredSkill})
	}
	for _, m := range set.RequiredMajors {
		target.MajorMapping = append(target.MajorMapping, types.WeightedEntry{Name: m, Weight: weightRequiredMajor})
	}
	for _, m := range set.PreferredMajors {
		target.MajorMapping = append(target.MajorMapping, types.WeightedEntry{Name: m, Weight: weightPreferredMajor})
	}

	target.RecommendedCertifications = set.RequiredCertifications
	if len(target.RecommendedCertifications) == 0 {
		target.RecommendedCertifications = set.PreferredCertifications
	}

	return target
}
