package wizard

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/sorra/internal/tui/theme"
)

// Item is one choice in an OptionList.
type Item struct {
	Value string
	Label string
}

// OptionList is a keyboard-driven list of choices. In single mode it works
// like a radio group; in multi mode each item toggles independently. The
// list never owns the selection: the caller feeds it with SetSelected and
// applies OptionChosenMsg itself.
type OptionList struct {
	id          string
	items       []Item
	multi       bool
	selected    []string
	cursor      int
	offset      int
	rows        int
	focused     bool
	placeholder string
	width       int
}

const listPrefixWidth = 6

// OptionChosenMsg is emitted when the user picks an item with enter or space.
type OptionChosenMsg struct {
	ListID string
	Value  string
}

// NewOptionList creates a list identified by id. The id is echoed back in
// OptionChosenMsg so one step can host several lists.
func NewOptionList(id string, items []Item, multi bool) *OptionList {
	return &OptionList{
		id:    id,
		items: items,
		multi: multi,
		rows:  len(items),
		width: 60,
	}
}

// ID returns the list identifier.
func (o *OptionList) ID() string { return o.id }

// SetPlaceholder sets the summary shown when nothing is selected.
func (o *OptionList) SetPlaceholder(s string) { o.placeholder = s }

// SetSelected replaces the values shown as selected.
func (o *OptionList) SetSelected(values ...string) {
	o.selected = slices.Clone(values)
}

// Selected returns the values shown as selected.
func (o *OptionList) Selected() []string {
	return slices.Clone(o.selected)
}

// SetSize limits the list to width columns and rows visible items.
func (o *OptionList) SetSize(width, rows int) {
	o.width = width
	o.rows = max(rows, 1)
	o.scroll()
}

// Focus expands the list and moves the cursor to the first selected item.
func (o *OptionList) Focus() {
	o.focused = true
	if len(o.selected) > 0 {
		if i := slices.IndexFunc(o.items, func(it Item) bool { return it.Value == o.selected[0] }); i >= 0 {
			o.cursor = i
		}
	}
	o.scroll()
}

// Blur collapses the list to its summary.
func (o *OptionList) Blur() { o.focused = false }

// Focused reports whether the list has keyboard focus.
func (o *OptionList) Focused() bool { return o.focused }

// Cursor returns the item under the cursor.
func (o *OptionList) Cursor() Item {
	if o.cursor < 0 || o.cursor >= len(o.items) {
		return Item{}
	}
	return o.items[o.cursor]
}

func (o *OptionList) isSelected(value string) bool {
	return slices.Contains(o.selected, value)
}

func (o *OptionList) scroll() {
	if o.cursor < o.offset {
		o.offset = o.cursor
	} else if o.cursor >= o.offset+o.rows {
		o.offset = o.cursor - o.rows + 1
	}
	o.offset = max(min(o.offset, len(o.items)-o.rows), 0)
}

// Update moves the cursor or emits OptionChosenMsg. Keys it does not use
// are ignored so the caller can route them elsewhere.
func (o *OptionList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !o.focused || len(o.items) == 0 {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if o.cursor > 0 {
			o.cursor--
		}
	case "down", "j":
		if o.cursor < len(o.items)-1 {
			o.cursor++
		}
	case "home", "g":
		o.cursor = 0
	case "end", "G":
		o.cursor = len(o.items) - 1
	case "enter", "space", " ":
		chosen := OptionChosenMsg{ListID: o.id, Value: o.items[o.cursor].Value}
		return func() tea.Msg { return chosen }
	}
	o.scroll()
	return nil
}

// Summary describes the selection in one line.
func (o *OptionList) Summary() string {
	if len(o.selected) == 0 {
		return o.placeholder
	}
	if o.multi {
		return fmt.Sprintf("%d selected", len(o.selected))
	}
	for _, it := range o.items {
		if it.Value == o.selected[0] {
			return it.Label
		}
	}
	return o.selected[0]
}

// View renders the expanded list when focused and the summary otherwise.
func (o *OptionList) View() string {
	s := theme.Current().S()

	if !o.focused {
		summary := ansi.Truncate(o.Summary(), o.width, "…")
		if len(o.selected) == 0 {
			return s.Subtle.Render(summary)
		}
		return s.Base.Render(summary)
	}

	var lines []string
	if o.offset > 0 {
		lines = append(lines, s.Subtle.Render("  ↑ more"))
	}
	end := min(o.offset+o.rows, len(o.items))
	for i := o.offset; i < end; i++ {
		it := o.items[i]
		mark := "( )"
		if o.multi {
			mark = "[ ]"
		}
		if o.isSelected(it.Value) {
			if o.multi {
				mark = "[✓]"
			} else {
				mark = "(•)"
			}
		}

		// "▸ " and the mark take listPrefixWidth columns.
		label := ansi.Truncate(it.Label, max(o.width-listPrefixWidth, 1), "…")
		line := mark + " " + label
		switch {
		case i == o.cursor:
			line = s.ListCursor.Render("▸ " + line)
		case o.isSelected(it.Value):
			line = "  " + s.ListSelected.Render(line)
		default:
			line = "  " + s.Base.Render(line)
		}
		lines = append(lines, line)
	}
	if end < len(o.items) {
		lines = append(lines, s.Subtle.Render("  ↓ more"))
	}

	return strings.Join(lines, "\n")
}
