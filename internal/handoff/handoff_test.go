package handoff

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/sorra/internal/config"
	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/resume"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var completedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func sampleDraft() profile.Draft {
	return profile.Draft{
		FullName:   "Ada Lovelace",
		JobTitle:   "Analyst",
		Location:   "london",
		Resume:     &resume.Handle{Name: "cv.pdf", Size: 2048, MIMEType: resume.TypePDF},
		Skills:     []string{"Python", "SQL"},
		Industries: []string{"Technology", "Finance"},
	}
}

func TestFromDraft(t *testing.T) {
	t.Parallel()

	d := sampleDraft()
	rec := FromDraft("id-1", d, completedAt)
	require.Equal(t, "id-1", rec.DraftID)
	require.Equal(t, "Ada Lovelace", rec.FullName)
	require.Equal(t, []string{"Technology", "Finance"}, rec.Industries)
	require.NotNil(t, rec.JobTypes)
	require.Empty(t, rec.JobTypes)

	d.Resume.Name = "changed.pdf"
	require.Equal(t, "cv.pdf", rec.Resume.Name)
}

func TestExport_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FromDraft("id-1", sampleDraft(), completedAt), "yaml"))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "Ada Lovelace", got["full_name"])
	require.Equal(t, []any{"Technology", "Finance"}, got["industries"])
	require.Equal(t, "cv.pdf", got["resume"].(map[string]any)["name"])
	require.Contains(t, buf.String(), "draft_id: id-1")
}

func TestExport_JSON(t *testing.T) {
	t.Parallel()

	d := sampleDraft()
	d.Resume = nil

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, FromDraft("id-2", d, completedAt), "JSON"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "id-2", got["draftId"])
	require.Equal(t, []any{}, got["jobTypes"])
	require.NotContains(t, got, "resume")
	require.Equal(t, "2026-03-14T09:30:00Z", got["completedAt"])
}

func TestExport_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := Export(&bytes.Buffer{}, Record{}, "toml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDefaultFilename(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ada-lovelace.yml", DefaultFilename("Ada Lovelace", "yaml"))
	require.Equal(t, "ada-lovelace.json", DefaultFilename("Ada Lovelace", "json"))
	require.Equal(t, "profile.yml", DefaultFilename("", "yaml"))
	require.Equal(t, "profile.json", DefaultFilename("  ", "json"))
}

func TestDeliver_Stdout(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg := config.Defaults()
	dest, err := deliver(cfg, FromDraft("id-3", sampleDraft(), completedAt), &out)
	require.NoError(t, err)
	require.Equal(t, "stdout", dest)
	require.Contains(t, out.String(), "full_name: Ada Lovelace")
}

func TestDeliver_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.Output = dir
	cfg.Format = "json"

	dest, err := deliver(cfg, FromDraft("id-4", sampleDraft(), completedAt), &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "ada-lovelace.json"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Contains(t, string(data), `"draftId": "id-4"`)
}

func TestDeliver_FilePathCreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "me.yml")
	cfg := config.Defaults()
	cfg.Output = path

	var stdout bytes.Buffer
	dest, err := deliver(cfg, FromDraft("id-5", profile.Draft{}, completedAt), &stdout)
	require.NoError(t, err)
	require.Equal(t, path, dest)
	require.Empty(t, stdout.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "draft_id: id-5")
}

func TestDecode_ReturnsTheDraft(t *testing.T) {
	t.Parallel()

	for _, format := range []string{FormatYAML, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Export(&buf, FromDraft("id-1", sampleDraft(), completedAt), format))

			rec, err := Decode(&buf, format)
			require.NoError(t, err)
			require.Equal(t, "id-1", rec.DraftID)
			require.True(t, completedAt.Equal(rec.CompletedAt))
			require.Equal(t, sampleDraft(), rec.Draft())
		})
	}
}

func TestDecode_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Decode(bytes.NewBufferString("{}"), "toml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRecordDraft_DropsRejectedResume(t *testing.T) {
	t.Parallel()

	rec := FromDraft("id-1", sampleDraft(), completedAt)
	rec.Resume = &resume.Handle{Name: "me.png", Size: 10, MIMEType: "image/png"}
	require.False(t, rec.Draft().HasResume())
}

func TestReadFile_PicksFormatFromExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := &config.Config{Output: filepath.Join(dir, "ada.json"), Format: FormatJSON}
	path, err := Deliver(cfg, FromDraft("id-2", sampleDraft(), completedAt))
	require.NoError(t, err)

	rec, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "id-2", rec.DraftID)
	require.Equal(t, []string{"Python", "SQL"}, rec.Skills)

	_, err = ReadFile(filepath.Join(dir, "missing.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRecordDraft_ReinspectsResumePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pdf := filepath.Join(dir, "cv.pdf")
	require.NoError(t, os.WriteFile(pdf, append([]byte("%PDF-1.7\n"), make([]byte, 100)...), 0644))

	rec := FromDraft("id-1", sampleDraft(), completedAt)
	rec.Resume = &resume.Handle{Name: "cv.pdf", Size: 1, MIMEType: resume.TypePDF, Path: pdf}
	d := rec.Draft()
	require.True(t, d.HasResume())
	require.Equal(t, int64(109), d.Resume.Size, "size comes from the file, not the record")

	rec.Resume.Path = filepath.Join(dir, "gone.pdf")
	require.False(t, rec.Draft().HasResume())

	png := filepath.Join(dir, "cv-really-png.pdf")
	require.NoError(t, os.WriteFile(png, append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...), 0644))
	rec.Resume.Path = png
	require.False(t, rec.Draft().HasResume(), "content that is not a document is dropped")
}
