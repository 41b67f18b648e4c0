package onboarding

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/tui/theme"
	"github.com/mark3labs/sorra/internal/tui/wizard"
)

const whatsNext = `### What's next?

1. Our AI is analyzing your profile to find the best job matches
2. You'll receive personalized job recommendations within 24 hours
3. Complete your profile anytime to improve your matches
`

// CompletionStep summarises the finished draft. It is read-only and owns
// its single button, so the wizard forwards navigation keys to it.
type CompletionStep struct {
	draft   profile.Draft
	buttons *wizard.ButtonBar
	width   int
	height  int
}

// NewCompletionStep creates the summary for d.
func NewCompletionStep(d profile.Draft) *CompletionStep {
	bar := wizard.NewButtonBar([]wizard.Button{
		{ID: wizard.ButtonDashboard, Label: "Go to Dashboard →", State: wizard.ButtonNormal},
	})
	bar.FocusFirst()
	return &CompletionStep{draft: d, buttons: bar, width: 60}
}

// Init initializes the completion step.
func (s *CompletionStep) Init() tea.Cmd { return nil }

// Focus focuses the dashboard button.
func (s *CompletionStep) Focus() tea.Cmd {
	s.buttons.FocusFirst()
	return nil
}

// FocusLast is the same as Focus.
func (s *CompletionStep) FocusLast() tea.Cmd { return s.Focus() }

// Blur is a no-op: the button stays focused while the summary is shown.
func (s *CompletionStep) Blur() {}

// Reset is a no-op: the completion screen has no transient state.
func (s *CompletionStep) Reset() {}

// SetDraft replaces the draft being summarised.
func (s *CompletionStep) SetDraft(d profile.Draft) { s.draft = d }

// SetSize updates the size of the step.
func (s *CompletionStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.buttons.SetWidth(width)
}

// Update handles messages for the completion step.
func (s *CompletionStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "enter", "space", " ", "d":
		return func() tea.Msg { return ExitMsg{} }
	}
	return nil
}

// View renders the completion step.
func (s *CompletionStep) View() string {
	st := theme.Current().S()

	header := lipgloss.JoinVertical(
		lipgloss.Center,
		st.Success.Render("✓ You're all set!"),
		st.Subtitle.Render("Your profile is ready and Sorra's AI is now finding your perfect job matches"),
	)

	sections := []string{
		lipgloss.PlaceHorizontal(s.width, lipgloss.Center, header),
		"",
		s.renderIdentity(),
		"",
		st.Title.Render("Profile Summary"),
		s.renderSummary(),
		"",
		renderMarkdown(whatsNext, s.width),
		"",
		s.buttons.Render(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *CompletionStep) renderIdentity() string {
	st := theme.Current().S()

	// An empty name leaves a blank avatar of the usual width.
	initials := profile.Initials(s.draft.FullName)
	if initials == "" {
		initials = "  "
	}

	name := s.draft.FullName
	if name == "" {
		name = "Your Name"
	}
	title := s.draft.JobTitle
	if title == "" {
		title = "Your Job Title"
	}

	card := lipgloss.JoinHorizontal(
		lipgloss.Center,
		st.Avatar.Render(initials),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, st.Label.Render(name), st.Muted.Render(title)),
	)
	return st.InfoBox.Width(s.width).Render(card)
}

// renderSummary lists the draft's fields. Empty collections are left out
// entirely; location always shows, falling back to "Not specified".
func (s *CompletionStep) renderSummary() string {
	st := theme.Current().S()

	location := "Not specified"
	if s.draft.Location != "" {
		location = profile.Label(profile.LocationOptions, s.draft.Location)
	}

	parts := []string{st.Muted.Render("Location"), st.Base.Render(location)}

	section := func(title string, values []string, style lipgloss.Style) {
		if len(values) == 0 {
			return
		}
		parts = append(parts, "", st.Muted.Render(title), renderTags(values, style, s.width))
	}
	section("Skills", s.draft.Skills, st.TagSelected)
	section("Job Types", s.draft.JobTypes, st.Tag)
	section("Industries", s.draft.Industries, st.Tag)

	if s.draft.HasResume() {
		parts = append(parts, "", st.Muted.Render("Resume"), st.Success.Render("✓ Uploaded"))
	}

	return strings.Join(parts, "\n")
}

// Hints returns the key hints for the completion screen.
func (s *CompletionStep) Hints() []string {
	return []string{"enter", "go to dashboard"}
}
