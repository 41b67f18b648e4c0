package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Label     lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Modal
	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style

	// Inputs
	InputBlurred lipgloss.Style
	InputFocused lipgloss.Style

	// Buttons
	ButtonNormal   lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonSelected lipgloss.Style

	// Tags
	Tag         lipgloss.Style
	TagSelected lipgloss.Style

	// Lists
	ListCursor   lipgloss.Style
	ListSelected lipgloss.Style

	// Hint bar
	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	// Progress indicator
	ProgressDone    lipgloss.Style
	ProgressCurrent lipgloss.Style
	ProgressPending lipgloss.Style
	ProgressFill    lipgloss.Style
	ProgressTrack   lipgloss.Style

	// Resume drop zone
	DropZone       lipgloss.Style
	DropZoneActive lipgloss.Style
	InfoBox        lipgloss.Style

	Avatar lipgloss.Style
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	button := lipgloss.NewStyle().
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	tag := lipgloss.NewStyle().
		Padding(0, 1).
		MarginRight(1)

	return &Styles{
		Base:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		Subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)).Bold(true),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),

		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderDefault)).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true).
			MarginBottom(1),

		InputBlurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderDefault)).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocused)).
			Padding(0, 1),

		ButtonNormal: button.
			Foreground(lipgloss.Color(t.FgBase)).
			Background(lipgloss.Color(t.BgSurface0)),
		ButtonFocused: button.
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Tertiary)).
			Bold(true),
		ButtonDisabled: button.
			Foreground(lipgloss.Color(t.BgOverlay)).
			Background(lipgloss.Color(t.BgMantle)),
		ButtonSelected: button.
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true),

		Tag: tag.
			Foreground(lipgloss.Color(t.FgBase)).
			Background(lipgloss.Color(t.BgSurface0)),
		TagSelected: tag.
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Primary)),

		ListCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Background(lipgloss.Color(t.BgSurface0)).
			Bold(true),
		ListSelected: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),

		HintKey:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)).Bold(true),
		HintDesc:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface2)),

		ProgressDone:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		ProgressCurrent: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true),
		ProgressPending: lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
		ProgressFill:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)),
		ProgressTrack:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgSurface1)),

		DropZone: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderDefault)).
			Padding(1, 2).
			Align(lipgloss.Center),
		DropZoneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Primary)).
			Padding(1, 2).
			Align(lipgloss.Center),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(t.Info)).
			PaddingLeft(1),

		Avatar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgBase)).
			Background(lipgloss.Color(t.Primary)).
			Bold(true).
			Padding(0, 1),
	}
}
