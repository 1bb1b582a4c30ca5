package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hyeonwoo/careerfit/internal/types"
)

func TestProjectTarget_Weights(t *testing.T) {
	job := &types.JobPosting{ID: 42, Title: "Backend Engineer"}
	set := &types.JobRequirementSet{
		RequiredSkills:    []string{"Java"},
		PreferredSkills:   []string{"Kubernetes"},
		RequiredMajors:    []string{"컴퓨터공학과"},
		PreferredMajors:   []string{"통계학과"},
		ExpectedSeniority: "junior",
	}

	target := ProjectTarget(job, set)

	assert.Equal(t, "job-42", target.ID)
	assert.Equal(t, "Backend Engineer", target.Name)
	assert.Equal(t, "junior", target.ExpectedSeniority)
	assert.Equal(t, []types.WeightedEntry{{Name: "Java", Weight: 2.0}}, target.RequiredSkills)
	assert.Equal(t, []types.WeightedEntry{{Name: "Kubernetes", Weight: 0.6}}, target.BonusSkills)
	assert.Equal(t, []types.WeightedEntry{
		{Name: "컴퓨터공학과", Weight: 1.0},
		{Name: "통계학과", Weight: 0.6},
	}, target.MajorMapping)
}

func TestProjectTarget_CertificationsRequiredElsePreferred(t *testing.T) {
	job := &types.JobPosting{ID: 1, Title: "Engineer"}

	withRequired := ProjectTarget(job, &types.JobRequirementSet{
		RequiredCertifications:  []string{"정보처리기사"},
		PreferredCertifications: []string{"AWS SAA"},
	})
	assert.Equal(t, []string{"정보처리기사"}, withRequired.RecommendedCertifications)

	preferredOnly := ProjectTarget(job, &types.JobRequirementSet{
		PreferredCertifications: []string{"AWS SAA"},
	})
	assert.Equal(t, []string{"AWS SAA"}, preferredOnly.RecommendedCertifications)
}
