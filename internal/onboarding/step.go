// Package onboarding owns the wizard's step ordering and the profile draft
// being built across the steps.
package onboarding

// Step is one screen of the onboarding wizard. The zero value is not a
// valid step.
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepResume
	StepPreferences
	StepComplete
)

// Steps lists every step in order.
var Steps = []Step{StepBasicInfo, StepResume, StepPreferences, StepComplete}

// FormSteps are the steps shown in the progress indicator. The completion
// screen is not part of it.
var FormSteps = []Step{StepBasicInfo, StepResume, StepPreferences}

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic-info"
	case StepResume:
		return "resume"
	case StepPreferences:
		return "preferences"
	case StepComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Title is the human label of the step.
func (s Step) Title() string {
	switch s {
	case StepBasicInfo:
		return "Basic Info"
	case StepResume:
		return "Resume"
	case StepPreferences:
		return "Preferences"
	case StepComplete:
		return "Complete"
	default:
		return ""
	}
}

// Valid reports whether s is one of the declared steps.
func (s Step) Valid() bool {
	return s >= StepBasicInfo && s <= StepComplete
}

// NextOf returns the step after s. StepComplete is terminal and maps to
// itself; invalid steps map to StepBasicInfo.
func NextOf(s Step) Step {
	switch s {
	case StepBasicInfo:
		return StepResume
	case StepResume:
		return StepPreferences
	case StepPreferences, StepComplete:
		return StepComplete
	default:
		return StepBasicInfo
	}
}

// PrevOf returns the step before s. StepBasicInfo saturates, and StepComplete
// has no way back so it also maps to itself.
func PrevOf(s Step) Step {
	switch s {
	case StepResume:
		return StepBasicInfo
	case StepPreferences:
		return StepResume
	case StepComplete:
		return StepComplete
	default:
		return StepBasicInfo
	}
}
