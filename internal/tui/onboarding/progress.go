package onboarding

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/sorra/internal/onboarding"
	"github.com/mark3labs/sorra/internal/tui/theme"
)

// renderProgress draws the step indicator for the form steps: completed
// steps get a check, the current one is highlighted and later ones are
// dimmed. A bar underneath fills by onboarding.Progress.
func renderProgress(step onboarding.Step, width int) string {
	s := theme.Current().S()
	steps := onboarding.FormSteps

	labels := make([]string, len(steps))
	for i, st := range steps {
		var marker string
		switch {
		case st < step:
			marker = s.ProgressDone.Render("✓ " + st.Title())
		case st == step:
			marker = s.ProgressCurrent.Render(strconv.Itoa(int(st)) + " " + st.Title())
		default:
			marker = s.ProgressPending.Render(strconv.Itoa(int(st)) + " " + st.Title())
		}
		labels[i] = marker
	}

	row := strings.Join(labels, s.ProgressPending.Render("  ›  "))
	row = lipgloss.PlaceHorizontal(width, lipgloss.Center, row)

	_, fraction := onboarding.Progress(step, len(steps))
	filled := int(fraction * float64(width))
	bar := s.ProgressFill.Render(strings.Repeat("━", filled)) +
		s.ProgressTrack.Render(strings.Repeat("━", width-filled))

	return lipgloss.JoinVertical(lipgloss.Left, row, bar)
}
