package onboarding

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// flowTags lays rendered tags out left to right, wrapping to a new row when
// the next tag would not fit in width.
func flowTags(tags []string, width int) string {
	if len(tags) == 0 {
		return ""
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, tag := range tags {
		w := lipgloss.Width(tag)
		if rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, strings.Join(row, ""))
			row, rowWidth = nil, 0
		}
		row = append(row, tag)
		rowWidth += w
	}
	rows = append(rows, strings.Join(row, ""))

	return strings.Join(rows, "\n")
}

// renderTags styles each value as a tag and flows them into width.
func renderTags(values []string, style lipgloss.Style, width int) string {
	tags := make([]string, len(values))
	for i, v := range values {
		tags[i] = style.Render(v)
	}
	return flowTags(tags, width)
}
