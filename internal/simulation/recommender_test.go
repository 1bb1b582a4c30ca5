package simulation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonwoo/careerfit/internal/types"
)

func candidates(n int) []*types.Activity {
	out := make([]*types.Activity, n)
	for i := range out {
		out[i] = &types.Activity{ID: int64(i + 1), Title: fmt.Sprintf("Activity %d", i+1)}
	}
	return out
}

func TestRecommendImprovements_DeltaFormula(t *testing.T) {
	improvements := RecommendImprovements("backend-junior", candidates(5))

	require.Len(t, improvements, 5)
	// step = (5/size)/2 = 0.5; delta_i = 3.0 + (size-i)*step
	expected := []float64{5.5, 5.0, 4.5, 4.0, 3.5}
	for i, imp := range improvements {
		assert.InDelta(t, expected[i], imp.ExpectedDelta, 1e-9)
	}
}

func TestRecommendImprovements_AffectsCategory(t *testing.T) {
	backend := RecommendImprovements("backend-junior", candidates(2))
	assert.Equal(t, AffectsSkill, backend[0].Affects)

	other := RecommendImprovements("data-science", candidates(2))
	assert.Equal(t, AffectsExperience, other[0].Affects)
}

func TestRecommendImprovements_ReasonMentionsActivity(t *testing.T) {
	improvements := RecommendImprovements("backend-junior", candidates(1))

	assert.Contains(t, improvements[0].Reason, "Activity 1")
}

func TestRecommendImprovements_EmptyInput(t *testing.T) {
	assert.Nil(t, RecommendImprovements("backend-junior", nil))
}
