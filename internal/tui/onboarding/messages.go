package onboarding

import (
	"github.com/mark3labs/sorra/internal/profile"
)

// MergeFunc applies a partial update to the draft owned by the wizard and
// returns the resulting snapshot.
type MergeFunc func(profile.Patch) profile.Draft

// ExitMsg is sent by the completion screen when the user leaves for the
// dashboard.
type ExitMsg struct{}

// BioEditedMsg carries the bio returned from the external editor.
type BioEditedMsg struct {
	Content string
}
