package onboarding

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/tui/theme"
	"github.com/mark3labs/sorra/internal/tui/wizard"
)

type prefField int

const (
	prefSkillSearch prefField = iota
	prefSkillTags
	prefIndustries
	prefJobTypes
	prefSalary
	prefRemote
	prefFieldCount
)

const (
	industriesListID = "industries"
	salaryListID     = "salary"
	remoteListID     = "remote"

	// maxSkillMatches is how many typeahead suggestions are visible at once.
	maxSkillMatches = 5
	industryRows    = 6
)

// PreferencesStep collects skills, industries, job types, salary range and
// remote preference.
type PreferencesStep struct {
	draft profile.Draft
	merge MergeFunc

	skillInput  textinput.Model
	skillCursor int
	tagCursor   int
	industries  *wizard.OptionList
	jobCursor   int
	salary      *wizard.OptionList
	remote      *wizard.OptionList

	focus   prefField
	focused bool

	width  int
	height int
}

func optionItems(options []profile.Option) []wizard.Item {
	items := make([]wizard.Item, len(options))
	for i, o := range options {
		items[i] = wizard.Item{Value: o.Value, Label: o.Label}
	}
	return items
}

func stringItems(values []string) []wizard.Item {
	items := make([]wizard.Item, len(values))
	for i, v := range values {
		items[i] = wizard.Item{Value: v, Label: v}
	}
	return items
}

// NewPreferencesStep creates the step pre-filled from d.
func NewPreferencesStep(d profile.Draft, merge MergeFunc) *PreferencesStep {
	input := newTextInput("Search skills...", "")
	input.CharLimit = 60

	industries := wizard.NewOptionList(industriesListID, stringItems(profile.IndustryOptions), true)
	industries.SetPlaceholder("Select industries...")

	salary := wizard.NewOptionList(salaryListID, optionItems(profile.SalaryRangeOptions), false)
	salary.SetPlaceholder("Select salary range")

	remote := wizard.NewOptionList(remoteListID, optionItems(profile.RemoteOptions), false)
	remote.SetPlaceholder("Select remote work preference")

	s := &PreferencesStep{
		draft:      d,
		merge:      merge,
		skillInput: input,
		industries: industries,
		salary:     salary,
		remote:     remote,
		width:      60,
	}
	s.syncLists()
	return s
}

// Init focuses the skill search.
func (s *PreferencesStep) Init() tea.Cmd {
	return s.Focus()
}

// Focus gives keyboard focus to the skill search.
func (s *PreferencesStep) Focus() tea.Cmd {
	return s.focusField(prefSkillSearch)
}

// FocusLast gives keyboard focus to the remote preference list.
func (s *PreferencesStep) FocusLast() tea.Cmd {
	return s.focusField(prefRemote)
}

// Blur removes focus from every control.
func (s *PreferencesStep) Blur() {
	s.focused = false
	s.skillInput.Blur()
	s.industries.Blur()
	s.salary.Blur()
	s.remote.Blur()
}

// Reset clears the skill search text and the typeahead cursor.
func (s *PreferencesStep) Reset() {
	s.skillInput.SetValue("")
	s.skillCursor = 0
}

func (s *PreferencesStep) focusField(f prefField) tea.Cmd {
	s.Blur()
	s.focused = true
	s.focus = f
	switch f {
	case prefSkillSearch:
		return s.skillInput.Focus()
	case prefSkillTags:
		s.tagCursor = min(s.tagCursor, max(len(s.draft.Skills)-1, 0))
	case prefIndustries:
		s.industries.Focus()
	case prefSalary:
		s.salary.Focus()
	case prefRemote:
		s.remote.Focus()
	}
	return nil
}

// focusable reports whether f can take focus. The tag row is skipped while
// there are no skills to remove.
func (s *PreferencesStep) focusable(f prefField) bool {
	return f != prefSkillTags || len(s.draft.Skills) > 0
}

// SetSize updates the size of the step.
func (s *PreferencesStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.skillInput.SetWidth(width - 4)
	s.industries.SetSize(width, industryRows)
	s.salary.SetSize(width, len(profile.SalaryRangeOptions))
	s.remote.SetSize(width, len(profile.RemoteOptions))
}

// Draft returns the step's view of the draft.
func (s *PreferencesStep) Draft() profile.Draft { return s.draft }

func (s *PreferencesStep) apply(p profile.Patch) {
	s.draft = s.merge(p)
	s.syncLists()
}

func (s *PreferencesStep) syncLists() {
	s.industries.SetSelected(s.draft.Industries...)
	if s.draft.SalaryRange != "" {
		s.salary.SetSelected(s.draft.SalaryRange)
	} else {
		s.salary.SetSelected()
	}
	if s.draft.RemotePreference != "" {
		s.remote.SetSelected(s.draft.RemotePreference)
	} else {
		s.remote.SetSelected()
	}
}

// skillMatches returns the catalog skills matching the search text.
func (s *PreferencesStep) skillMatches() []string {
	return profile.FilterCatalog(profile.SkillOptions, strings.TrimSpace(s.skillInput.Value()))
}

// Update handles messages for the preferences step.
func (s *PreferencesStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case wizard.OptionChosenMsg:
		switch msg.ListID {
		case industriesListID:
			s.apply(s.draft.Toggle(profile.Industries, msg.Value))
		case salaryListID:
			s.apply(profile.Patch{SalaryRange: profile.String(msg.Value)})
		case remoteListID:
			s.apply(profile.Patch{RemotePreference: profile.String(msg.Value)})
		}
		return nil

	case tea.PasteMsg:
		if s.focus != prefSkillSearch {
			return nil
		}
		msg.Content = collapseNewlines(msg.Content)
		var cmd tea.Cmd
		s.skillInput, cmd = s.skillInput.Update(msg)
		s.skillCursor = 0
		return cmd

	case tea.KeyPressMsg:
		if !s.focused {
			return nil
		}
		switch msg.String() {
		case "tab":
			return s.moveFocus(1)
		case "shift+tab":
			return s.moveFocus(-1)
		}

		switch s.focus {
		case prefSkillSearch:
			return s.updateSkillSearch(msg)
		case prefSkillTags:
			return s.updateSkillTags(msg)
		case prefIndustries:
			return s.industries.Update(msg)
		case prefJobTypes:
			s.updateJobTypes(msg)
			return nil
		case prefSalary:
			return s.salary.Update(msg)
		case prefRemote:
			return s.remote.Update(msg)
		}
	}

	return nil
}

// moveFocus steps through the focusable controls, leaving the step at
// either end.
func (s *PreferencesStep) moveFocus(dir int) tea.Cmd {
	f := s.focus
	for {
		f += prefField(dir)
		if f < 0 {
			return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
		}
		if f >= prefFieldCount {
			return func() tea.Msg { return wizard.TabExitForwardMsg{} }
		}
		if s.focusable(f) {
			return s.focusField(f)
		}
	}
}

func (s *PreferencesStep) updateSkillSearch(msg tea.KeyPressMsg) tea.Cmd {
	matches := s.skillMatches()

	switch msg.String() {
	case "up":
		if s.skillCursor > 0 {
			s.skillCursor--
		}
		return nil
	case "down":
		if s.skillCursor < len(matches)-1 {
			s.skillCursor++
		}
		return nil
	case "enter":
		if len(matches) == 0 {
			return nil
		}
		skill := matches[min(s.skillCursor, len(matches)-1)]
		s.apply(s.draft.Add(profile.Skills, skill))
		s.skillInput.SetValue("")
		s.skillCursor = 0
		return nil
	case "backspace":
		if s.skillInput.Value() == "" && len(s.draft.Skills) > 0 {
			last := s.draft.Skills[len(s.draft.Skills)-1]
			s.apply(s.draft.Drop(profile.Skills, last))
			return nil
		}
	}

	before := s.skillInput.Value()
	var cmd tea.Cmd
	s.skillInput, cmd = s.skillInput.Update(msg)
	if s.skillInput.Value() != before {
		s.skillCursor = 0
	}
	return cmd
}

func (s *PreferencesStep) updateSkillTags(msg tea.KeyPressMsg) tea.Cmd {
	n := len(s.draft.Skills)
	if n == 0 {
		return nil
	}

	switch msg.String() {
	case "left", "h":
		if s.tagCursor > 0 {
			s.tagCursor--
		}
	case "right", "l":
		if s.tagCursor < n-1 {
			s.tagCursor++
		}
	case "x", "backspace", "delete", "enter":
		s.apply(s.draft.Drop(profile.Skills, s.draft.Skills[s.tagCursor]))
		if len(s.draft.Skills) == 0 {
			return s.focusField(prefSkillSearch)
		}
		s.tagCursor = min(s.tagCursor, len(s.draft.Skills)-1)
	}
	return nil
}

func (s *PreferencesStep) updateJobTypes(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "left", "h":
		if s.jobCursor > 0 {
			s.jobCursor--
		}
	case "right", "l":
		if s.jobCursor < len(profile.JobTypeOptions)-1 {
			s.jobCursor++
		}
	case "enter", "space", " ":
		s.apply(s.draft.Toggle(profile.JobTypes, profile.JobTypeOptions[s.jobCursor]))
	}
}

// View renders the preferences step.
func (s *PreferencesStep) View() string {
	st := theme.Current().S()

	sections := []string{
		st.Title.Render("Job Preferences"),
		st.Subtitle.Render("Help us understand what you're looking for in your next role"),
		"",
		s.renderSkills(),
		"",
		s.renderIndustries(),
		"",
		fieldLabel("Job Types", s.isFocused(prefJobTypes)),
		s.renderJobTypes(),
		"",
		s.renderSalary(),
		"",
		fieldLabel("Remote Work Preference", s.isFocused(prefRemote)),
		s.remote.View(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *PreferencesStep) isFocused(f prefField) bool {
	return s.focused && s.focus == f
}

func (s *PreferencesStep) renderSkills() string {
	st := theme.Current().S()

	parts := []string{
		fieldLabel("Skills", s.isFocused(prefSkillSearch) || s.isFocused(prefSkillTags)),
		s.skillInput.View(),
	}

	if s.isFocused(prefSkillSearch) {
		parts = append(parts, s.renderSkillDropdown())
	}

	if len(s.draft.Skills) == 0 {
		parts = append(parts, st.Muted.Render("Add skills to help us find the right job matches"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	tags := make([]string, len(s.draft.Skills))
	for i, skill := range s.draft.Skills {
		label := skill + " ×"
		if s.isFocused(prefSkillTags) && i == s.tagCursor {
			tags[i] = st.TagSelected.Render(label)
		} else {
			tags[i] = st.Tag.Render(label)
		}
	}
	parts = append(parts, flowTags(tags, s.width))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *PreferencesStep) renderSkillDropdown() string {
	st := theme.Current().S()

	matches := s.skillMatches()
	if len(matches) == 0 {
		return st.Subtle.Render("  No skill found.")
	}

	start := max(0, s.skillCursor-maxSkillMatches+1)
	end := min(start+maxSkillMatches, len(matches))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		mark := "  "
		if s.draft.Has(profile.Skills, matches[i]) {
			mark = "✓ "
		}
		if i == s.skillCursor {
			lines = append(lines, st.ListCursor.Render("▸ "+mark+matches[i]))
		} else {
			lines = append(lines, "  "+st.Base.Render(mark+matches[i]))
		}
	}
	return strings.Join(lines, "\n")
}

func (s *PreferencesStep) renderIndustries() string {
	st := theme.Current().S()

	parts := []string{
		fieldLabel("Industries of Interest", s.isFocused(prefIndustries)),
		s.industries.View(),
	}
	if len(s.draft.Industries) == 0 {
		parts = append(parts, st.Muted.Render("Select industries you're interested in working in"))
	} else {
		parts = append(parts, renderTags(s.draft.Industries, st.Tag, s.width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *PreferencesStep) renderJobTypes() string {
	st := theme.Current().S()

	buttons := make([]string, len(profile.JobTypeOptions))
	for i, jt := range profile.JobTypeOptions {
		style := st.ButtonNormal
		if s.draft.Has(profile.JobTypes, jt) {
			style = st.ButtonSelected
		}
		if s.isFocused(prefJobTypes) && i == s.jobCursor {
			style = st.ButtonFocused
			if s.draft.Has(profile.JobTypes, jt) {
				jt = "✓ " + jt
			}
		}
		buttons[i] = style.Render(jt) + " "
	}
	return flowTags(buttons, s.width)
}

func (s *PreferencesStep) renderSalary() string {
	st := theme.Current().S()

	value := s.draft.SalaryRange
	if value == "" {
		value = "$50,000 - $150,000+"
	}
	label := fieldLabel("Salary Expectations", s.isFocused(prefSalary))
	gap := max(s.width-lipgloss.Width(label)-lipgloss.Width(value), 1)

	header := label + strings.Repeat(" ", gap) + st.Label.Render(value)
	return lipgloss.JoinVertical(lipgloss.Left, header, s.salary.View())
}

// Hints returns the key hints for the focused control.
func (s *PreferencesStep) Hints() []string {
	switch s.focus {
	case prefSkillSearch:
		return []string{"type", "search", "↑↓", "move", "enter", "add", "tab", "next"}
	case prefSkillTags:
		return []string{"←→", "move", "x", "remove", "tab", "next"}
	case prefJobTypes:
		return []string{"←→", "move", "space", "toggle", "tab", "next"}
	case prefIndustries:
		return []string{"↑↓", "move", "space", "toggle", "tab", "next"}
	}
	return []string{"↑↓", "move", "enter", "select", "tab", "next"}
}
