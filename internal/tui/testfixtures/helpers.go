package testfixtures

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output so rendered text is stable across terminals
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Plain strips ANSI sequences so assertions can match on visible text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Lines returns the visible lines of s with trailing padding removed.
func Lines(s string) []string {
	lines := strings.Split(Plain(s), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

// RenderCanvas draws content onto a test-sized screen buffer and returns the
// visible text, the same way the wizard draws its frame.
func RenderCanvas(content string) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	uv.NewStyledString(content).Draw(canvas, canvas.Bounds())
	return Plain(canvas.Render())
}
