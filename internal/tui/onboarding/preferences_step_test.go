package onboarding

import (
	"strings"
	"testing"

	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/tui/testfixtures"
	"github.com/mark3labs/sorra/internal/tui/wizard"
	"github.com/stretchr/testify/require"
)

func TestPreferences_SkillTypeahead(t *testing.T) {
	t.Parallel()

	ctl := newController()
	s := NewPreferencesStep(ctl.Draft(), ctl.Merge)
	s.Init()

	typeText(s, "script")
	require.Equal(t, []string{"JavaScript", "TypeScript"}, s.skillMatches())

	view := testfixtures.Plain(s.View())
	require.Contains(t, view, "JavaScript")
	require.Contains(t, view, "TypeScript")
	require.NotContains(t, view, "Python")

	press(s, "down", "enter")
	require.Equal(t, []string{"TypeScript"}, ctl.Draft().Skills)
	require.Empty(t, s.skillInput.Value(), "input clears after adding")

	typeText(s, "node")
	press(s, "enter")
	require.Equal(t, []string{"TypeScript", "Node.js"}, ctl.Draft().Skills)
}

func TestPreferences_AddingTwiceKeepsOneCopy(t *testing.T) {
	t.Parallel()

	ctl := newController()
	s := NewPreferencesStep(ctl.Draft(), ctl.Merge)
	s.Init()

	typeText(s, "sql")
	press(s, "enter")
	typeText(s, "sql")
	require.Contains(t, testfixtures.Plain(s.View()), "✓ SQL")
	press(s, "enter")

	require.Equal(t, []string{"SQL"}, ctl.Draft().Skills)
}

func TestPreferences_NoSkillFound(t *testing.T) {
	t.Parallel()

	ctl := newController()
	s := NewPreferencesStep(ctl.Draft(), ctl.Merge)
	s.Init()

	typeText(s, "cobol")
	require.Contains(t, testfixtures.Plain(s.View()), "No skill found.")
	press(s, "enter")
	require.Empty(t, ctl.Draft().Skills, "custom skills are not added")
}

func TestPreferences_RemoveSkills(t *testing.T) {
	t.Parallel()

	d := profile.Draft{Skills: []string{"Go", "SQL", "AWS"}}
	ctl := newController()
	ctl.Merge(profile.SetPatch(profile.Skills, d.Skills))
	s := NewPreferencesStep(ctl.Draft(), ctl.Merge)
	s.Init()

	// Backspace on an empty search removes the last skill.
	press(s, "backspace")
	require.Equal(t, []string{"Go", "SQL"}, ctl.Draft().Skills)

	press(s, "tab")
	require.Equal(t, prefSkillTags, s.focus)
	press(s, "right", "x")
	require.Equal(t, []string{"Go"}, ctl.Draft().Skills)
	press(s, "x")
	require.Empty(t, ctl.Draft().Skills)
	require.Equal(t, prefSkillSearch, s.focus, "focus returns to search once no tags remain")
	require.Contains(t, testfixtures.Plain(s.View()), "Add skills to help us find the right job matches")
}

func TestPreferences_TagsSkippedWhenEmpty(t *testing.T) {
	t.Parallel()

	ctl := newController()
	s := NewPreferencesStep(ctl.Draft(), ctl.Merge)
	s.Init()

	press(s, "tab")
	require.Equal(t, prefIndustries, s.focus)
	press(s, "shift+tab")
	require.Equal(t, prefSkillSearch, s.focus)

	cmd := press(s, "shift+tab")
	require.NotNil(t, cmd)
	require.IsType(t, wizard.TabExitBackwardMsg{}, cmd())
}

func TestPreferences_IndustriesToggleInOrder(t *testing.T) {
	t.Parallel()

	ctl := newController()
	s := NewPreferencesStep(ctl.Draft(), ctl.Merge)
	s.focusField(prefIndustries)

	deliver(t, s, press(s, "enter"))
	press(s, "down")
	deliver(t, s, press(s, "space"))
	require.Equal(t, []string{"Technology", "Finance"}, ctl.Draft().Industries)
	require.Equal(t, []string{"Technology", "Finance"}, s.industries.Selected())

	press(s, "up")
	deliver(t, s, press(s, "enter"))
	require.Equal(t, []string{"Finance"}, ctl.Draft().Industries)

	s.Blur()
	view := testfixtures.Plain(s.View())
	require.Contains(t, view, "1 selected")
	require.NotContains(t, view, "Select industries you're interested in working in")
}

func TestPreferences_JobTypeToggleRoundTrip(t *testing.T) {
	t.Parallel()

	ctl := newController()
	ctl.Merge(profile.Patch{JobTypes: profile.Strings([]string{"Contract"})})
	s := NewPreferencesStep(ctl.Draft(), ctl.Merge)
	s.focusField(prefJobTypes)

	press(s, "right")
	press(s, "space")
	require.Equal(t, []string{"Contract", "Part-time"}, ctl.Draft().JobTypes)
	press(s, "enter")
	require.Equal(t, []string{"Contract"}, ctl.Draft().JobTypes)
}

func TestPreferences_SalaryAndRemote(t *testing.T) {
	t.Parallel()

	ctl := newController()
	s := NewPreferencesStep(ctl.Draft(), ctl.Merge)

	require.Contains(t, testfixtures.Plain(s.View()), "$50,000 - $150,000+")

	s.focusField(prefSalary)
	press(s, "end")
	deliver(t, s, press(s, "enter"))
	require.Equal(t, "$150,000+", ctl.Draft().SalaryRange)

	cmd := s.FocusLast()
	require.Nil(t, cmd)
	press(s, "down")
	deliver(t, s, press(s, "enter"))
	require.Equal(t, "hybrid", ctl.Draft().RemotePreference)

	s.Blur()
	view := testfixtures.Plain(s.View())
	require.Contains(t, view, "Hybrid (Some Remote, Some Office)")
	require.NotContains(t, view, "$50,000 - $150,000+")

	cmd = press(s, "tab")
	require.Nil(t, cmd, "blurred step ignores keys")
}

func TestPreferences_ViewCopy(t *testing.T) {
	t.Parallel()

	ctl := newController()
	s := NewPreferencesStep(ctl.Draft(), ctl.Merge)
	view := testfixtures.Plain(s.View())

	for _, want := range []string{
		"Job Preferences",
		"Skills",
		"Industries of Interest",
		"Job Types",
		"Salary Expectations",
		"Remote Work Preference",
		"Select industries...",
	} {
		require.Contains(t, view, want)
	}
	for _, jt := range profile.JobTypeOptions {
		require.True(t, strings.Contains(view, jt), "job type %s shown", jt)
	}
}
