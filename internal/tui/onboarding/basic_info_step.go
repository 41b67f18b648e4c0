package onboarding

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/sorra/internal/logger"
	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/tui/theme"
	"github.com/mark3labs/sorra/internal/tui/wizard"
)

type basicField int

const (
	fieldFullName basicField = iota
	fieldJobTitle
	fieldLocation
	fieldBio
	basicFieldCount
)

const locationListID = "location"

// BasicInfoStep collects name, job title, location and bio. Nothing here is
// required. The per-field error map is cleared whenever its field is
// edited; no rule fills it in today.
type BasicInfoStep struct {
	draft profile.Draft
	merge MergeFunc

	fullName textinput.Model
	jobTitle textinput.Model
	location *wizard.OptionList
	bio      textarea.Model

	focus   basicField
	focused bool
	errs    map[basicField]string

	width  int
	height int
}

func locationItems() []wizard.Item {
	items := make([]wizard.Item, len(profile.LocationOptions))
	for i, o := range profile.LocationOptions {
		items[i] = wizard.Item{Value: o.Value, Label: o.Label}
	}
	return items
}

// NewBasicInfoStep creates the step pre-filled from d.
func NewBasicInfoStep(d profile.Draft, merge MergeFunc) *BasicInfoStep {
	loc := wizard.NewOptionList(locationListID, locationItems(), false)
	loc.SetPlaceholder("Select your location")
	if d.Location != "" {
		loc.SetSelected(d.Location)
	}

	return &BasicInfoStep{
		draft:    d,
		merge:    merge,
		fullName: newTextInput("Enter your full name", d.FullName),
		jobTitle: newTextInput("e.g. Software Engineer, Product Manager", d.JobTitle),
		location: loc,
		bio:      newTextArea("Tell us a bit about your professional background and interests", d.Bio),
		errs:     map[basicField]string{},
		width:    60,
	}
}

// Init focuses the first field.
func (s *BasicInfoStep) Init() tea.Cmd {
	return s.Focus()
}

// Focus gives keyboard focus to the first field.
func (s *BasicInfoStep) Focus() tea.Cmd {
	return s.focusField(fieldFullName)
}

// FocusLast gives keyboard focus to the last field.
func (s *BasicInfoStep) FocusLast() tea.Cmd {
	return s.focusField(fieldBio)
}

// Blur removes focus from every field.
func (s *BasicInfoStep) Blur() {
	s.focused = false
	s.fullName.Blur()
	s.jobTitle.Blur()
	s.location.Blur()
	s.bio.Blur()
}

// Reset clears field errors.
func (s *BasicInfoStep) Reset() {
	clear(s.errs)
}

func (s *BasicInfoStep) focusField(f basicField) tea.Cmd {
	s.Blur()
	s.focused = true
	s.focus = f
	switch f {
	case fieldFullName:
		return s.fullName.Focus()
	case fieldJobTitle:
		return s.jobTitle.Focus()
	case fieldLocation:
		s.location.Focus()
	case fieldBio:
		return s.bio.Focus()
	}
	return nil
}

// SetSize updates the size of the step.
func (s *BasicInfoStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.fullName.SetWidth(width - 4)
	s.jobTitle.SetWidth(width - 4)
	s.location.SetSize(width, len(profile.LocationOptions))
	s.bio.SetWidth(width)
}

// Draft returns the step's view of the draft.
func (s *BasicInfoStep) Draft() profile.Draft { return s.draft }

func (s *BasicInfoStep) apply(p profile.Patch) {
	s.draft = s.merge(p)
}

func (s *BasicInfoStep) clearError(f basicField) {
	delete(s.errs, f)
}

// Update handles messages for the basic info step.
func (s *BasicInfoStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case wizard.OptionChosenMsg:
		if msg.ListID != locationListID {
			return nil
		}
		s.clearError(fieldLocation)
		s.apply(profile.Patch{Location: profile.String(msg.Value)})
		s.location.SetSelected(s.draft.Location)
		return nil

	case BioEditedMsg:
		s.bio.SetValue(strings.TrimRight(msg.Content, "\n"))
		s.syncField(fieldBio)
		return nil

	case tea.PasteMsg:
		if s.focus == fieldFullName || s.focus == fieldJobTitle {
			msg.Content = collapseNewlines(msg.Content)
		}
		return s.updateFocused(msg)

	case tea.KeyPressMsg:
		if !s.focused {
			return nil
		}
		switch msg.String() {
		case "tab":
			if s.focus == basicFieldCount-1 {
				return func() tea.Msg { return wizard.TabExitForwardMsg{} }
			}
			return s.focusField(s.focus + 1)
		case "shift+tab":
			if s.focus == 0 {
				return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
			}
			return s.focusField(s.focus - 1)
		case "enter":
			if s.focus == fieldFullName || s.focus == fieldJobTitle {
				return s.focusField(s.focus + 1)
			}
		case "ctrl+e":
			return s.openEditor()
		}
		return s.updateFocused(msg)
	}

	return nil
}

// updateFocused forwards msg to the focused control and merges the result
// if its value changed.
func (s *BasicInfoStep) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldFullName:
		s.fullName, cmd = s.fullName.Update(msg)
	case fieldJobTitle:
		s.jobTitle, cmd = s.jobTitle.Update(msg)
	case fieldLocation:
		cmd = s.location.Update(msg)
	case fieldBio:
		s.bio, cmd = s.bio.Update(msg)
	}
	s.syncField(s.focus)
	return cmd
}

// syncField merges a text field whose value differs from the draft.
func (s *BasicInfoStep) syncField(f basicField) {
	var p profile.Patch
	switch f {
	case fieldFullName:
		if v := s.fullName.Value(); v != s.draft.FullName {
			p.FullName = profile.String(v)
		}
	case fieldJobTitle:
		if v := s.jobTitle.Value(); v != s.draft.JobTitle {
			p.JobTitle = profile.String(v)
		}
	case fieldBio:
		if v := s.bio.Value(); v != s.draft.Bio {
			p.Bio = profile.String(v)
		}
	}
	if p.Empty() {
		return
	}
	s.clearError(f)
	s.apply(p)
}

// openEditor launches $EDITOR on the current bio.
func (s *BasicInfoStep) openEditor() tea.Cmd {
	tmpfile, err := os.CreateTemp("", "sorra_bio_*.md")
	if err != nil {
		logger.Warn("bio editor: %v", err)
		return nil
	}
	path := tmpfile.Name()

	if _, err := tmpfile.WriteString(s.bio.Value()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(path)
		return nil
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("sorra", path)
	if err != nil {
		_ = os.Remove(path)
		logger.Warn("bio editor: %v", err)
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			logger.Warn("bio editor exited: %v", err)
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		return BioEditedMsg{Content: string(content)}
	})
}

// View renders the basic info step.
func (s *BasicInfoStep) View() string {
	st := theme.Current().S()

	field := func(f basicField, label, control string) string {
		parts := []string{fieldLabel(label, s.focused && s.focus == f), control}
		if msg := s.errs[f]; msg != "" {
			parts = append(parts, st.Error.Render("✗ "+msg))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		st.Title.Render("Tell us about yourself"),
		st.Subtitle.Render("Let's start with some basic information to set up your profile"),
		"",
		field(fieldFullName, "Full Name", s.fullName.View()),
		"",
		field(fieldJobTitle, "Current Job Title", s.jobTitle.View()),
		"",
		field(fieldLocation, "Location", s.location.View()),
		"",
		field(fieldBio, "Professional Bio", s.bio.View()),
		st.Muted.Render("This will help us match you with the right opportunities"),
	)
}

// Hints returns the key hints for the focused field.
func (s *BasicInfoStep) Hints() []string {
	switch s.focus {
	case fieldLocation:
		return []string{"↑↓", "move", "enter", "select", "tab", "next"}
	case fieldBio:
		if os.Getenv("EDITOR") != "" || os.Getenv("VISUAL") != "" {
			return []string{"ctrl+e", "edit in $EDITOR", "tab", "next"}
		}
	}
	return []string{"tab", "next"}
}
