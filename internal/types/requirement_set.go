//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirementSet is the structured requirement set for a job posting.
// Both construction paths (external extraction and heuristic fallback)
// produce values of this shape, with trimmed, blank-filtered lists.
type JobRequirementSet struct {
	RequiredSkills          []string `json:"requiredSkills"`
	PreferredSkills         []string `json:"preferredSkills"`
	RequiredExperiences     []string `json:"requiredExperiences"`
	PreferredExperiences    []string `json:"preferredExperiences"`
	RequiredMajors          []string `json:"requiredMajors"`
	PreferredMajors         []string `json:"preferredMajors"`
	RequiredCertifications  []string `json:"requiredCertifications"`
	PreferredCertifications []string `json:"preferredCertifications"`
	ExpectedSeniority       string   `json:"expectedSeniority,omitempty"`
}

// IsEmpty reports whether the set carries no requirements at all:
// every list empty and no expected seniority.
func (s *JobRequirementSet) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.RequiredSkills) == 0 &&
		len(s.PreferredSkills) == 0 &&
		len(s.RequiredExperiences) == 0 &&
		len(s.PreferredExperiences) == 0 &&
		len(s.RequiredMajors) == 0 &&
		len(s.PreferredMajors) == 0 &&
		len(s.RequiredCertifications) == 0 &&
		len(s.PreferredCertifications) == 0 &&
		s.ExpectedSeniority == ""
}
