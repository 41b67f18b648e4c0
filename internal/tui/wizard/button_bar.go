package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/sorra/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies what a button does when activated.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonBack
	ButtonSkip
	ButtonNext
	ButtonDashboard
)

// Button represents a single button in the button bar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and keyboard
// focus. Disabled buttons are never focused.
type ButtonBar struct {
	buttons []Button
	focused int // -1 when nothing is focused
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focused: -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Buttons returns the buttons in display order.
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// IsFocused reports whether any button has focus.
func (b *ButtonBar) IsFocused() bool {
	return b.focused >= 0
}

// FocusedButton returns the ID of the focused button, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focused < 0 || b.focused >= len(b.buttons) {
		return ButtonNone
	}
	return b.buttons[b.focused].ID
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() bool {
	return b.focusFrom(0, 1)
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() bool {
	return b.focusFrom(len(b.buttons)-1, -1)
}

// FocusNext moves focus right. It returns false, leaving the bar blurred,
// when there is no enabled button after the current one.
func (b *ButtonBar) FocusNext() bool {
	if b.focusFrom(b.focused+1, 1) {
		return true
	}
	b.Blur()
	return false
}

// FocusPrev moves focus left. It returns false, leaving the bar blurred,
// when there is no enabled button before the current one.
func (b *ButtonBar) FocusPrev() bool {
	start := b.focused - 1
	if b.focused < 0 {
		start = len(b.buttons) - 1
	}
	if b.focusFrom(start, -1) {
		return true
	}
	b.Blur()
	return false
}

// Blur removes focus from every button.
func (b *ButtonBar) Blur() {
	b.focused = -1
}

func (b *ButtonBar) focusFrom(start, dir int) bool {
	for i := start; i >= 0 && i < len(b.buttons); i += dir {
		if b.buttons[i].State != ButtonDisabled {
			b.focused = i
			return true
		}
	}
	return false
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()

	var renderedButtons []string
	for i, btn := range b.buttons {
		var rendered string
		switch {
		case btn.State == ButtonDisabled:
			rendered = s.ButtonDisabled.Render(btn.Label)
		case i == b.focused || btn.State == ButtonFocused:
			rendered = s.ButtonFocused.Render(btn.Label)
		default:
			rendered = s.ButtonNormal.Render(btn.Label)
		}
		renderedButtons = append(renderedButtons, rendered)
	}

	result := strings.Join(renderedButtons, "")

	return lipgloss.PlaceHorizontal(b.width, lipgloss.Center, result)
}
