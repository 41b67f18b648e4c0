package onboarding

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/sorra/internal/onboarding"
	_ "github.com/mark3labs/sorra/internal/tui/testfixtures"
)

type updater interface {
	Update(tea.Msg) tea.Cmd
}

// press sends each key in order and returns the last command.
func press(s updater, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = s.Update(tea.KeyPressMsg{Text: k})
	}
	return cmd
}

// typeText sends one key press per rune.
func typeText(s updater, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// deliver runs cmd, which must produce its message immediately, and feeds
// the message back into s.
func deliver(t *testing.T, s updater, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	s.Update(msg)
	return msg
}

func newController() *onboarding.Controller {
	return onboarding.New()
}
