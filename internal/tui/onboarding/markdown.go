package onboarding

import (
	"strings"

	"charm.land/glamour/v2"
	"github.com/charmbracelet/x/ansi"
)

// renderMarkdown renders markdown with glamour. It falls back to plain
// wrapped text if rendering fails.
func renderMarkdown(content string, width int) string {
	if width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return ansi.Wordwrap(content, width, "")
	}

	rendered, err := r.Render(content)
	if err != nil {
		return ansi.Wordwrap(content, width, "")
	}

	return strings.Trim(rendered, "\n")
}
