package onboarding

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/sorra/internal/tui/theme"
)

// newTextInput builds a single-line input styled with the current theme.
func newTextInput(placeholder, value string) textinput.Model {
	t := theme.Current()

	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "› "
	input.CharLimit = 120
	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface2)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	input.SetWidth(50)
	input.SetValue(value)
	return input
}

// newTextArea builds the multi-line bio editor.
func newTextArea(placeholder, value string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.Prompt = "│ "
	ta.SetWidth(60)
	ta.SetHeight(3)
	ta.SetValue(value)
	return ta
}

// fieldLabel renders a control label, highlighted while the control has focus.
func fieldLabel(text string, focused bool) string {
	s := theme.Current().S()
	if focused {
		return s.Highlight.Render(text)
	}
	return s.Label.Render(text)
}
