// Package resume implements the acceptance policy for the optional resume
// attached during onboarding. Only metadata is captured; content is never read
// beyond the header bytes needed to detect the file type.
package resume

import (
	"errors"
	"fmt"
	"slices"
)

// MaxSize is the largest accepted resume, in bytes (5 MiB).
const MaxSize int64 = 5 * 1024 * 1024

// Accepted MIME types.
const (
	TypePDF  = "application/pdf"
	TypeDoc  = "application/msword"
	TypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AcceptedTypes lists the MIME types a resume may have.
var AcceptedTypes = []string{TypePDF, TypeDoc, TypeDocx}

var (
	// ErrUnsupportedType is returned for anything that is not PDF or Word.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrOversizedFile is returned for files larger than MaxSize.
	ErrOversizedFile = errors.New("file exceeds size limit")
)

// Handle describes a selected file. It carries metadata only.
type Handle struct {
	Name     string `json:"name" yaml:"name"`
	Size     int64  `json:"size" yaml:"size"`
	MIMEType string `json:"mimeType" yaml:"mime_type"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
}

// RejectionError reports why a handle was refused.
type RejectionError struct {
	Handle Handle
	Err    error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("resume %q rejected: %v", e.Handle.Name, e.Err)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// Accept applies the acceptance policy. The type is checked before the size,
// so an oversized PNG reports the type problem.
func Accept(h Handle) error {
	if !slices.Contains(AcceptedTypes, h.MIMEType) {
		return &RejectionError{Handle: h, Err: ErrUnsupportedType}
	}
	if h.Size > MaxSize {
		return &RejectionError{Handle: h, Err: ErrOversizedFile}
	}
	return nil
}

// UserMessage converts an acceptance or inspection error into the inline
// message shown under the drop zone.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedType):
		return "Please upload a PDF or Word document"
	case errors.Is(err, ErrOversizedFile):
		return "File size must be less than 5MB"
	default:
		return err.Error()
	}
}
