package onboarding

import (
	"strings"
	"testing"

	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestCompletion_FullDraft(t *testing.T) {
	t.Parallel()

	s := NewCompletionStep(testfixtures.FullDraft())
	s.SetSize(70, 30)
	view := testfixtures.Plain(s.View())

	require.Contains(t, view, "You're all set!")
	require.Contains(t, view, "AL")
	require.Contains(t, view, testfixtures.FixedFullName)
	require.Contains(t, view, testfixtures.FixedJobTitle)
	require.Contains(t, view, "London, UK")
	require.Contains(t, view, "✓ Uploaded")
	require.Contains(t, view, "Go to Dashboard")

	// Sections appear in a fixed order.
	order := []string{"Location", "Skills", "Job Types", "Industries", "Resume"}
	last := -1
	for _, section := range order {
		i := strings.Index(view, section)
		require.Greater(t, i, last, "%s out of order", section)
		last = i
	}

	tech := strings.Index(view, "Technology")
	finance := strings.Index(view, "Finance")
	require.Less(t, tech, finance, "industries keep insertion order")
}

func TestCompletion_EmptyDraft(t *testing.T) {
	t.Parallel()

	s := NewCompletionStep(profile.Draft{})
	view := testfixtures.Plain(s.View())

	require.Contains(t, view, "Your Name")
	require.Contains(t, view, "Your Job Title")
	require.NotContains(t, testfixtures.Plain(s.renderIdentity()), "?", "the avatar stays blank without a name")
	require.Contains(t, view, "Not specified")
	require.NotContains(t, view, "Industries")
	require.NotContains(t, view, "Job Types")
	require.NotContains(t, view, "✓ Uploaded")
}

func TestCompletion_IndustriesOmittedWhenEmpty(t *testing.T) {
	t.Parallel()

	d := testfixtures.FullDraft()
	d.Industries = nil
	view := testfixtures.Plain(NewCompletionStep(d).View())

	require.NotContains(t, view, "Industries")
	require.Contains(t, view, "Job Types")
}

func TestCompletion_EnterExits(t *testing.T) {
	t.Parallel()

	s := NewCompletionStep(profile.Draft{})
	require.Nil(t, press(s, "esc"))

	cmd := press(s, "enter")
	require.NotNil(t, cmd)
	require.Equal(t, ExitMsg{}, cmd())
}
