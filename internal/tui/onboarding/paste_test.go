package onboarding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizePaste(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"color codes", "\x1b[31mred text\x1b[0m", "red text"},
		{"256 colors", "\x1b[38;5;196mred\x1b[0m", "red"},
		{"cursor control", "\x1b[2K\x1b[1Gclear line", "clear line"},
		{"null bytes", "hello\x00world\x00", "helloworld"},
		{"SOH to BS", "a\x01b\x02c\x07d\x08", "abcd"},
		{"VT and FF", "a\x0bb\x0c", "ab"},
		{"DEL", "a\x7fb", "ab"},
		{"keeps tabs and newlines", "a\tb\nc", "a\tb\nc"},
		{"CRLF", "line1\r\nline2\r\n", "line1\nline2"},
		{"trailing whitespace", "text  \t\n\n", "text"},
		{"keeps leading whitespace", "  indented", "  indented"},
		{"unicode", "José 日本語 🚀", "José 日本語 🚀"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizePaste(tt.input))
		})
	}
}

func TestCollapseNewlines(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Ada Lovelace", collapseNewlines("Ada\nLovelace"))
	require.Equal(t, "a b", collapseNewlines("a\n\n\nb"))
	require.Equal(t, "single", collapseNewlines("single"))
}
