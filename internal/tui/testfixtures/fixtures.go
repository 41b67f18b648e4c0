package testfixtures

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/resume"
)

// Fixed test values for consistent golden files
const (
	FixedFullName = "Ada Lovelace"
	FixedJobTitle = "Analyst"
)

var (
	FixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
)

// EmptyDraft returns a draft nobody has touched.
func EmptyDraft() profile.Draft {
	return profile.Draft{}
}

// FullDraft returns a draft with every field filled in.
func FullDraft() profile.Draft {
	return profile.Draft{
		FullName: FixedFullName,
		JobTitle: FixedJobTitle,
		Location: "london",
		Bio:      "Writes programs for engines that do not exist yet.",
		Resume: &resume.Handle{
			Name:     "ada.pdf",
			Size:     2048,
			MIMEType: resume.TypePDF,
		},
		Skills:           []string{"Python", "Machine Learning"},
		JobTypes:         []string{"Full-time", "Contract"},
		Industries:       []string{"Technology", "Finance"},
		SalaryRange:      "$120,000 - $150,000",
		RemotePreference: "hybrid",
	}
}

// pdfHeader is enough for content sniffing to report application/pdf.
var pdfHeader = []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")

// WritePDF writes a PDF-looking file of exactly size bytes into dir.
func WritePDF(t *testing.T, dir, name string, size int64) string {
	t.Helper()
	body := make([]byte, size)
	copy(body, pdfHeader)
	return writeFile(t, dir, name, body)
}

// WritePNG writes a small PNG-looking file into dir.
func WritePNG(t *testing.T, dir, name string) string {
	t.Helper()
	body := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)
	return writeFile(t, dir, name, body)
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
