package wizard

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/sorra/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func resumeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".hidden"), 0755))
	testfixtures.WritePDF(t, dir, "cv.pdf", 128)
	testfixtures.WritePDF(t, dir, "Bio.DOCX", 128)
	testfixtures.WritePNG(t, dir, "photo.png")
	testfixtures.WritePDF(t, filepath.Join(dir, "archive"), "old.doc", 128)
	return dir
}

func names(f *FilePicker) []string {
	var out []string
	for _, it := range f.items {
		out = append(out, it.name)
	}
	return out
}

func TestFilePicker_ListsResumesOnly(t *testing.T) {
	t.Parallel()

	dir := resumeTree(t)
	fp := NewFilePicker(dir)
	require.Equal(t, dir, fp.CurrentPath())
	require.Equal(t, []string{"..", "archive", "Bio.DOCX", "cv.pdf"}, names(fp))
}

func TestFilePicker_NavigateAndSelect(t *testing.T) {
	t.Parallel()

	dir := resumeTree(t)
	fp := NewFilePicker(dir)

	// Enter "archive".
	fp.Update(tea.KeyPressMsg{Text: "down"})
	require.Nil(t, fp.Update(tea.KeyPressMsg{Text: "enter"}))
	require.Equal(t, filepath.Join(dir, "archive"), fp.CurrentPath())
	require.Equal(t, []string{"..", "old.doc"}, names(fp))

	fp.Update(tea.KeyPressMsg{Text: "down"})
	require.Equal(t, filepath.Join(dir, "archive", "old.doc"), fp.SelectedPath())
	cmd := fp.Update(tea.KeyPressMsg{Text: "enter"})
	require.NotNil(t, cmd)
	require.Equal(t, FileSelectedMsg{Path: filepath.Join(dir, "archive", "old.doc")}, cmd())

	fp.Update(tea.KeyPressMsg{Text: "backspace"})
	require.Equal(t, dir, fp.CurrentPath())
}

func TestFilePicker_Esc(t *testing.T) {
	t.Parallel()

	fp := NewFilePicker(t.TempDir())
	cmd := fp.Update(tea.KeyPressMsg{Text: "esc"})
	require.NotNil(t, cmd)
	require.Equal(t, FilePickerCancelledMsg{}, cmd())
}

func TestFilePicker_FallsBackToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	fp := NewFilePicker(filepath.Join(dir, "missing"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, wd, fp.CurrentPath())
}

func TestFilePicker_EmptyDirectoryView(t *testing.T) {
	t.Parallel()

	fp := NewFilePicker(t.TempDir())
	view := testfixtures.Plain(fp.View())
	require.Contains(t, view, "No .pdf, .doc or .docx files in this directory")
	require.Contains(t, view, "▸ 📁 ..")
}
