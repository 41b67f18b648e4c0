package onboarding

import (
	"regexp"
	"strings"
)

// ansiEscapePattern matches CSI sequences (colours, cursor movement).
var ansiEscapePattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// SanitizePaste strips ANSI escape sequences and control characters other
// than newline, tab and carriage return, normalizes CRLF to LF, and trims
// trailing whitespace.
func SanitizePaste(content string) string {
	content = ansiEscapePattern.ReplaceAllString(content, "")

	var result strings.Builder
	for _, r := range content {
		switch {
		case r == 0:
			continue
		case r >= 1 && r <= 8:
			continue
		case r == 11 || r == 12:
			continue
		case r >= 14 && r <= 31:
			continue
		case r == 127:
			continue
		default:
			result.WriteRune(r)
		}
	}
	content = result.String()

	content = strings.ReplaceAll(content, "\r\n", "\n")

	return strings.TrimRight(content, " \t\n\r")
}

var newlinePattern = regexp.MustCompile(`\n+`)

// collapseNewlines replaces runs of newlines with a single space, for
// single-line inputs.
func collapseNewlines(content string) string {
	return newlinePattern.ReplaceAllString(content, " ")
}
