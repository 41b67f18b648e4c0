// Package handoff exports the finished profile draft when the user leaves
// the wizard, so the dashboard (or anything else downstream) can pick it up.
package handoff

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/sorra/internal/config"
	"github.com/mark3labs/sorra/internal/logger"
	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/resume"
	"gopkg.in/yaml.v3"
)

// Supported export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by Export for anything but yaml or json.
var ErrUnknownFormat = errors.New("unknown export format")

// Record is the exported shape of a completed draft.
type Record struct {
	DraftID          string         `json:"draftId" yaml:"draft_id"`
	CompletedAt      time.Time      `json:"completedAt" yaml:"completed_at"`
	FullName         string         `json:"fullName" yaml:"full_name"`
	JobTitle         string         `json:"jobTitle" yaml:"job_title"`
	Location         string         `json:"location" yaml:"location"`
	Bio              string         `json:"bio" yaml:"bio"`
	Resume           *resume.Handle `json:"resume,omitempty" yaml:"resume,omitempty"`
	Skills           []string       `json:"skills" yaml:"skills"`
	JobTypes         []string       `json:"jobTypes" yaml:"job_types"`
	Industries       []string       `json:"industries" yaml:"industries"`
	SalaryRange      string         `json:"salaryRange" yaml:"salary_range"`
	RemotePreference string         `json:"remotePreference" yaml:"remote_preference"`
}

// FromDraft builds a record. Collections are always non-nil so consumers see
// [] rather than null.
func FromDraft(id string, d profile.Draft, at time.Time) Record {
	d = d.Snapshot()
	return Record{
		DraftID:          id,
		CompletedAt:      at.UTC(),
		FullName:         d.FullName,
		JobTitle:         d.JobTitle,
		Location:         d.Location,
		Bio:              d.Bio,
		Resume:           d.Resume,
		Skills:           nonNil(d.Skills),
		JobTypes:         nonNil(d.JobTypes),
		Industries:       nonNil(d.Industries),
		SalaryRange:      d.SalaryRange,
		RemotePreference: d.RemotePreference,
	}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// Export writes rec to w in the given format.
func Export(w io.Writer, rec Record, format string) error {
	switch strings.ToLower(format) {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads a record previously written by Export.
func Decode(r io.Reader, format string) (Record, error) {
	var rec Record
	switch strings.ToLower(format) {
	case FormatYAML, "":
		if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
			return Record{}, fmt.Errorf("failed to decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&rec); err != nil {
			return Record{}, fmt.Errorf("failed to decode json: %w", err)
		}
	default:
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return rec, nil
}

// ReadFile decodes the record at path, choosing the format from the file
// extension.
func ReadFile(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	return Decode(f, format)
}

// Draft turns the record back into a draft for pre-filling the wizard. A
// resume that no longer passes the acceptance policy is dropped. When the
// record names a path, the file is inspected again and the recorded
// metadata is ignored.
func (r Record) Draft() profile.Draft {
	return profile.Draft{}.Merge(profile.Patch{
		FullName:         profile.String(r.FullName),
		JobTitle:         profile.String(r.JobTitle),
		Location:         profile.String(r.Location),
		Bio:              profile.String(r.Bio),
		Resume:           reinspect(r.Resume),
		Skills:           profile.Strings(r.Skills),
		JobTypes:         profile.Strings(r.JobTypes),
		Industries:       profile.Strings(r.Industries),
		SalaryRange:      profile.String(r.SalaryRange),
		RemotePreference: profile.String(r.RemotePreference),
	})
}

func reinspect(h *resume.Handle) *resume.Handle {
	if h == nil || h.Path == "" {
		return h
	}
	fresh, err := resume.Inspect(h.Path)
	if err != nil {
		logger.Warn("handoff: dropping imported resume: %v", err)
		return nil
	}
	return &fresh
}

// DefaultFilename derives a file name from the profile owner's name.
func DefaultFilename(fullName, format string) string {
	ext := ".yml"
	if strings.EqualFold(format, FormatJSON) {
		ext = ".json"
	}
	name := slug.Make(fullName)
	if name == "" {
		name = "profile"
	}
	return name + ext
}

// Deliver exports rec according to cfg. With no output configured the
// record goes to stdout. An output that is an existing directory receives
// a file named by DefaultFilename. It returns where the record was written.
func Deliver(cfg *config.Config, rec Record) (string, error) {
	return deliver(cfg, rec, os.Stdout)
}

func deliver(cfg *config.Config, rec Record, stdout io.Writer) (string, error) {
	if cfg.Output == "" || cfg.Output == "-" {
		if err := Export(stdout, rec, cfg.Format); err != nil {
			return "", err
		}
		logger.Info("handoff: draft %s written to stdout", rec.DraftID)
		return "stdout", nil
	}

	path := cfg.Output
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFilename(rec.FullName, cfg.Format))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Export(f, rec, cfg.Format); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	logger.Info("handoff: draft %s written to %s", rec.DraftID, path)
	return path, nil
}
