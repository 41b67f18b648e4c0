package onboarding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step          Step
		total         int
		wantCompleted int
		wantFraction  float64
	}{
		{StepBasicInfo, 3, 0, 0},
		{StepResume, 3, 1, 0.5},
		{StepPreferences, 3, 2, 1},
		{StepComplete, 3, 3, 1},
		{StepResume, 4, 1, 1.0 / 3},
		{StepResume, 1, 1, 1},
		{StepBasicInfo, 1, 0, 0},
		{StepResume, 0, 0, 0},
		{Step(0), 3, 0, 0},
	}

	for _, tt := range tests {
		completed, fraction := Progress(tt.step, tt.total)
		require.Equal(t, tt.wantCompleted, completed, "step %s total %d", tt.step, tt.total)
		require.InDelta(t, tt.wantFraction, fraction, 1e-9, "step %s total %d", tt.step, tt.total)
	}
}
