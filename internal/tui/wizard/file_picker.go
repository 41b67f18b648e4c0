package wizard

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/sorra/internal/logger"
	"github.com/mark3labs/sorra/internal/resume"
	"github.com/mark3labs/sorra/internal/tui/theme"
)

// FileItem represents a file or directory in the file picker.
type FileItem struct {
	name  string // Name of file/directory
	path  string // Full path
	isDir bool   // True if directory
}

// Render returns the display line for the item, truncated to width.
func (f *FileItem) Render(width int) string {
	icon := "📄"
	if f.isDir {
		icon = "📁"
	}
	return ansi.Truncate(icon+" "+f.name, max(width-2, 4), "…")
}

// FilePicker browses the filesystem for a resume. Only directories and
// files with an accepted resume extension are listed.
type FilePicker struct {
	currentPath string
	items       []*FileItem
	selectedIdx int
	offset      int // first visible item
	err         string
	width       int
	height      int
}

// NewFilePicker creates a file picker rooted at dir, or the working
// directory when dir is empty or unreadable.
func NewFilePicker(dir string) *FilePicker {
	fp := &FilePicker{width: 60, height: 10}

	if dir != "" {
		if err := fp.loadDirectory(expandHome(dir)); err == nil {
			return fp
		}
		logger.Warn("file picker: cannot open %s, falling back to working directory", dir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	if err := fp.loadDirectory(cwd); err != nil {
		fp.err = err.Error()
	}
	return fp
}

func expandHome(dir string) string {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	return dir
}

// loadDirectory loads files and directories from the given path.
func (f *FilePicker) loadDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	f.items = f.items[:0]
	if absPath != filepath.Dir(absPath) {
		f.items = append(f.items, &FileItem{
			name:  "..",
			path:  filepath.Dir(absPath),
			isDir: true,
		})
	}

	var dirs, files []*FileItem
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		fullPath := filepath.Join(absPath, entry.Name())

		if entry.IsDir() {
			dirs = append(dirs, &FileItem{name: entry.Name(), path: fullPath, isDir: true})
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if slices.Contains(resume.Extensions, ext) {
			files = append(files, &FileItem{name: entry.Name(), path: fullPath})
		}
	}

	byName := func(items []*FileItem) func(i, j int) bool {
		return func(i, j int) bool {
			return strings.ToLower(items[i].name) < strings.ToLower(items[j].name)
		}
	}
	sort.Slice(dirs, byName(dirs))
	sort.Slice(files, byName(files))

	f.items = append(f.items, dirs...)
	f.items = append(f.items, files...)
	f.currentPath = absPath
	f.selectedIdx = 0
	f.offset = 0
	f.err = ""

	return nil
}

// SetSize updates the dimensions for the file picker.
func (f *FilePicker) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// CurrentPath returns the directory being listed.
func (f *FilePicker) CurrentPath() string {
	return f.currentPath
}

func (f *FilePicker) visibleRows() int {
	// path line, blank, blank, hint bar
	return max(f.height-4, 3)
}

func (f *FilePicker) move(delta int) {
	if len(f.items) == 0 {
		return
	}
	f.selectedIdx = min(max(f.selectedIdx+delta, 0), len(f.items)-1)
	rows := f.visibleRows()
	if f.selectedIdx < f.offset {
		f.offset = f.selectedIdx
	} else if f.selectedIdx >= f.offset+rows {
		f.offset = f.selectedIdx - rows + 1
	}
}

func (f *FilePicker) open(path string) {
	if err := f.loadDirectory(path); err != nil {
		f.err = err.Error()
	}
}

// Update handles messages for the file picker.
func (f *FilePicker) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		f.move(-1)
	case "down", "j":
		f.move(1)
	case "pgup":
		f.move(-f.visibleRows())
	case "pgdown":
		f.move(f.visibleRows())
	case "enter":
		if f.selectedIdx < 0 || f.selectedIdx >= len(f.items) {
			return nil
		}
		item := f.items[f.selectedIdx]
		if item.isDir {
			f.open(item.path)
			return nil
		}
		return func() tea.Msg {
			return FileSelectedMsg{Path: item.path}
		}
	case "backspace", "h":
		parentPath := filepath.Dir(f.currentPath)
		if parentPath != f.currentPath {
			f.open(parentPath)
		}
	case "esc":
		return func() tea.Msg {
			return FilePickerCancelledMsg{}
		}
	}

	return nil
}

// View renders the file picker.
func (f *FilePicker) View() string {
	s := theme.Current().S()
	var b strings.Builder

	b.WriteString(s.Muted.Render(ansi.TruncateLeft(f.currentPath, max(len(f.currentPath)-f.width+1, 0), "…")))
	b.WriteString("\n\n")

	if f.err != "" {
		b.WriteString(s.Error.Render("✗ " + f.err))
		b.WriteString("\n\n")
	}

	hasFiles := slices.ContainsFunc(f.items, func(it *FileItem) bool { return it.name != ".." })

	if !hasFiles {
		b.WriteString(s.Subtle.Italic(true).Render("No .pdf, .doc or .docx files in this directory"))
		b.WriteString("\n")
	}

	end := min(f.offset+f.visibleRows(), len(f.items))
	for i := f.offset; i < end; i++ {
		item := f.items[i]
		if !hasFiles && item.name != ".." {
			continue
		}
		line := item.Render(f.width)
		if i == f.selectedIdx {
			line = s.ListCursor.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if len(f.items) == 0 {
		b.WriteString(RenderHintBar("backspace", "go up", "esc", "cancel"))
	} else {
		b.WriteString(RenderHintBar(
			"↑↓/j/k", "navigate",
			"enter", "select",
			"backspace", "up",
			"esc", "cancel",
		))
	}

	return b.String()
}

// SelectedPath returns the currently selected file path (empty if directory selected).
func (f *FilePicker) SelectedPath() string {
	if f.selectedIdx >= 0 && f.selectedIdx < len(f.items) {
		item := f.items[f.selectedIdx]
		if !item.isDir {
			return item.path
		}
	}
	return ""
}
