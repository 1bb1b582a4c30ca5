package simulation

import (
	"fmt"
	"strings"

	"github.com/hyeonwoo/careerfit/internal/types"
)

// AffectsCategory labels which fit dimension a recommended activity is
// expected to move.
type AffectsCategory string

// Affects categories for improvement recommendations.
const (
	AffectsSkill      AffectsCategory = "SKILL"
	AffectsExperience AffectsCategory = "EXPERIENCE"
)

// Improvement is one ranked candidate activity with its synthetic expected
// score delta. The delta is a presentation heuristic, not a causal
// estimate, and its arithmetic is fixed for parity.
type Improvement struct {
	Activity      *types.Activity `json:"activity"`
	ExpectedDelta float64         `json:"expected_delta"`
	Affects       AffectsCategory `json:"affects"`
	Reason        string          `json:"reason"`
}

// RecommendImprovements assigns deltas to an already-ranked candidate list:
// earlier-ranked candidates get larger deltas, floored at 1.0.
func RecommendImprovements(targetID string, candidates []*types.Activity) []Improvement {
	size := len(candidates)
	if size == 0 {
		return nil
	}

	affects := AffectsExperience
	if strings.Contains(strings.ToLower(targetID), "backend") {
		affects = AffectsSkill
	}

	step := (5.0 / float64(size)) / 2.0
	out := make([]Improvement, 0, size)
	for i, activity := range candidates {
		delta := 3.0 + float64(size-i)*step
		if delta < 1.0 {
			delta = 1.0
		}
		out = append(out, Improvement{
			Activity:      activity,
			ExpectedDelta: types.Round1(delta),
			Affects:       affects,
			Reason:        reasonFor(activity, affects),
		})
	}
	return out
}

func reasonFor(activity *types.Activity, affects AffectsCategory) string {
	if affects == AffectsSkill {
		return fmt.Sprintf("Completing %q strengthens the skills your target role asks for.", activity.Title)
	}
	return fmt.Sprintf("Completing %q adds hands-on experience relevant to your target.", activity.Title)
}
