package onboarding

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/sorra/internal/logger"
	"github.com/mark3labs/sorra/internal/profile"
)

// ErrCancelled is returned when the user leaves the wizard before reaching
// the completion screen.
var ErrCancelled = errors.New("onboarding cancelled")

// Controller is the single owner of the wizard's step index and profile
// draft. Views read snapshots through Draft and write only through Merge.
// A Controller is not safe for concurrent use; the Bubble Tea update loop
// is its only caller.
type Controller struct {
	id    string
	step  Step
	draft profile.Draft
}

// New returns a controller on the first step with an empty draft.
func New() *Controller {
	return NewWithDraft(profile.Draft{})
}

// NewWithDraft returns a controller on the first step, pre-filled with d.
func NewWithDraft(d profile.Draft) *Controller {
	c := &Controller{
		id:    uuid.NewString(),
		step:  StepBasicInfo,
		draft: d.Snapshot(),
	}
	logger.Debug("onboarding %s started", c.id)
	return c
}

// ID identifies this draft for downstream consumers of the hand-off.
func (c *Controller) ID() string { return c.id }

// Step returns the current step.
func (c *Controller) Step() Step { return c.step }

// Draft returns a snapshot of the current draft. Mutating it does not
// affect the controller.
func (c *Controller) Draft() profile.Draft { return c.draft.Snapshot() }

// Done reports whether the completion screen has been reached.
func (c *Controller) Done() bool { return c.step == StepComplete }

// CanBack reports whether Back would move.
func (c *Controller) CanBack() bool { return PrevOf(c.step) != c.step }

// CanSkip reports whether the current step offers Skip.
func (c *Controller) CanSkip() bool { return c.step == StepResume }

// Next advances one step. Nothing gates progression; on the completion
// screen it is a no-op.
func (c *Controller) Next() Step {
	return c.moveTo(NextOf(c.step), "next")
}

// Back moves one step backwards. It is a no-op on the first step and on
// the completion screen.
func (c *Controller) Back() Step {
	return c.moveTo(PrevOf(c.step), "back")
}

// Skip advances exactly like Next but is only available on the resume
// step. It reports whether it moved.
func (c *Controller) Skip() bool {
	if !c.CanSkip() {
		return false
	}
	c.moveTo(NextOf(c.step), "skip")
	return true
}

// Merge applies a partial update to the draft and returns the new
// snapshot. Only field names are logged, never values.
func (c *Controller) Merge(p profile.Patch) profile.Draft {
	if p.Empty() {
		return c.Draft()
	}
	c.draft = c.draft.Merge(p)
	logger.Debug("onboarding %s merged [%s] on %s", c.id, strings.Join(p.Fields(), ", "), c.step)
	return c.Draft()
}

func (c *Controller) moveTo(to Step, action string) Step {
	if to == c.step {
		return c.step
	}
	logger.Info("onboarding %s: %s %s -> %s", c.id, action, c.step, to)
	c.step = to
	return c.step
}
