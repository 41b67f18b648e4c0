package onboarding

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/sorra/internal/config"
	"github.com/mark3labs/sorra/internal/logger"
	"github.com/mark3labs/sorra/internal/onboarding"
	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/tui/theme"
	"github.com/mark3labs/sorra/internal/tui/wizard"
)

// Modal layout constants
const (
	modalWidth        = 76                                                       // Total modal width including border
	modalPadding      = 2                                                        // Horizontal padding on each side
	modalBorderWidth  = 1                                                        // Border width on each side
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 70
)

// stepView is implemented by every screen of the wizard.
type stepView interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	SetSize(width, height int)
	Focus() tea.Cmd
	FocusLast() tea.Cmd
	Blur()
	// Reset drops transient UI state when the wizard navigates away.
	// Values already merged into the draft are kept.
	Reset()
	Hints() []string
}

// modalStep is implemented by steps that can temporarily own the keyboard,
// such as the resume file browser.
type modalStep interface {
	Modal() bool
}

// Options configures a wizard run.
type Options struct {
	Config *config.Config
	// Draft pre-fills the wizard, for example from a previous export.
	Draft profile.Draft
}

// Result is what the wizard hands back once it exits.
type Result struct {
	DraftID string
	Draft   profile.Draft
	// Exited is true when the user left through the completion screen.
	Exited bool
}

// Model is the Bubble Tea model for the onboarding wizard:
// basic info → resume → preferences → completion.
type Model struct {
	ctl *onboarding.Controller
	cfg *config.Config

	basicInfo   *BasicInfoStep
	resume      *ResumeStep
	preferences *PreferencesStep
	completion  *CompletionStep

	// Button bar with focus tracking
	buttonBar     *wizard.ButtonBar
	buttonFocused bool

	// Cached button bars per step (prevents focus reset on re-render)
	buttonBars map[onboarding.Step]*wizard.ButtonBar

	cancelled bool
	exited    bool
	width     int
	height    int
}

// New creates the wizard model. A nil Config uses the defaults.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Defaults()
	}

	m := &Model{
		ctl:        onboarding.NewWithDraft(opts.Draft),
		cfg:        cfg,
		buttonBars: map[onboarding.Step]*wizard.ButtonBar{},
	}

	merge := m.ctl.Merge
	d := m.ctl.Draft()
	m.basicInfo = NewBasicInfoStep(d, merge)
	m.resume = NewResumeStep(d, merge, cfg.ResumeDir)
	m.preferences = NewPreferencesStep(d, merge)
	m.completion = NewCompletionStep(d)
	m.updateCurrentStepSize()

	return m
}

// Run starts the wizard in its own Bubble Tea program and blocks until it
// exits. Leaving before the completion screen returns ErrCancelled.
func Run(ctx context.Context, opts Options) (*Result, error) {
	m := New(opts)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", onboarding.ErrCancelled, ctx.Err())
		}
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*Model)
	if !ok {
		return nil, errors.New("unexpected model type")
	}

	res := wizModel.Result()
	if wizModel.cancelled || !wizModel.ctl.Done() {
		return &res, onboarding.ErrCancelled
	}
	return &res, nil
}

// Result returns the current outcome of the wizard.
func (m *Model) Result() Result {
	return Result{
		DraftID: m.ctl.ID(),
		Draft:   m.ctl.Draft(),
		Exited:  m.exited,
	}
}

// Step returns the step being shown.
func (m *Model) Step() onboarding.Step { return m.ctl.Step() }

// Cancelled reports whether the user quit without finishing.
func (m *Model) Cancelled() bool { return m.cancelled }

// Init initializes the wizard model.
func (m *Model) Init() tea.Cmd {
	return m.currentStep().Init()
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m.cancel()
		}

		// The file browser owns every other key while it is open.
		if m.currentModal() {
			return m, m.currentStep().Update(msg)
		}

		// Handle button-focused keyboard input
		if m.buttonFocused && m.buttonBar != nil {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					return m, m.focusStepContentFirst()
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					m.buttonFocused = false
					m.buttonBar.Blur()
					return m, m.focusStepContentLast()
				}
				return m, nil
			case "enter", "space", " ":
				return m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		// Global keybindings
		switch msg.String() {
		case "esc":
			if m.ctl.Step() == onboarding.StepBasicInfo {
				return m.cancel()
			}
			if m.ctl.Step() == onboarding.StepComplete {
				return m, nil
			}
			return m.goBack()
		case "ctrl+n":
			if m.hasButtons() {
				return m.goNext()
			}
		case "ctrl+b":
			if m.hasButtons() {
				return m.goBack()
			}
		case "ctrl+s":
			return m.skip()
		}

		if m.buttonFocused {
			return m, nil
		}

	case tea.PasteMsg:
		msg.Content = SanitizePaste(msg.Content)
		return m, m.currentStep().Update(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateCurrentStepSize()
		return m, nil

	case ExitMsg:
		logger.Info("onboarding %s: leaving for dashboard", m.ctl.ID())
		m.exited = true
		return m, tea.Quit

	case wizard.TabExitForwardMsg:
		// Tab from last input - move to buttons
		if !m.hasButtons() {
			return m, m.focusStepContentFirst()
		}
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusFirst()
		return m, nil

	case wizard.TabExitBackwardMsg:
		// Shift+Tab from first input - move to buttons from end
		if !m.hasButtons() {
			return m, m.focusStepContentLast()
		}
		m.buttonFocused = true
		m.blurStepContent()
		m.ensureButtonBar()
		m.buttonBar.FocusLast()
		return m, nil
	}

	// Forward messages to current step
	return m, m.currentStep().Update(msg)
}

// View renders the wizard.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 {
		// Not ready to render
		view.Content = lipgloss.NewLayer("")
		return view
	}

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderCurrentStep(),
	)

	// Draw to canvas using ultraviolet
	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, canvas.Bounds())

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// currentStep returns the view for the controller's step.
func (m *Model) currentStep() stepView {
	return m.stepAt(m.ctl.Step())
}

func (m *Model) stepAt(step onboarding.Step) stepView {
	switch step {
	case onboarding.StepResume:
		return m.resume
	case onboarding.StepPreferences:
		return m.preferences
	case onboarding.StepComplete:
		return m.completion
	default:
		return m.basicInfo
	}
}

func (m *Model) currentModal() bool {
	if ms, ok := m.currentStep().(modalStep); ok {
		return ms.Modal()
	}
	return false
}

// getModalContentSize returns the internal content dimensions for the modal.
func (m *Model) getModalContentSize() (width, height int) {
	width = modalContentWidth

	height = m.height - 4 // Terminal margin
	height = min(max(height, 20), 48)
	// Subtract modal chrome: padding, border, progress, buttons and hint
	height = max(height-14, 10)
	return width, height
}

// updateCurrentStepSize updates the size of every step so navigation never
// shows a stale layout.
func (m *Model) updateCurrentStepSize() {
	w, h := m.getModalContentSize()
	m.basicInfo.SetSize(w, h)
	m.resume.SetSize(w, h)
	m.preferences.SetSize(w, h)
	m.completion.SetSize(w, h)
}

// renderCurrentStep renders the modal for the current step.
func (m *Model) renderCurrentStep() string {
	t := theme.Current()
	s := t.S()
	step := m.ctl.Step()

	title := theme.ApplyGradient("Sorra", t.Primary, t.Secondary) + s.Muted.Render(" · Onboarding")

	parts := []string{title, ""}
	if step != onboarding.StepComplete {
		parts = append(parts, renderProgress(step, modalContentWidth), "")
	}
	parts = append(parts, m.currentStep().View())

	if m.hasButtons() {
		m.ensureButtonBar()
		parts = append(parts, "", m.buttonBar.Render())
	}
	parts = append(parts, "", m.renderHints())

	modalStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Padding(1, modalPadding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderDefault))

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *Model) renderHints() string {
	var pairs []string
	switch {
	case m.currentModal():
		pairs = []string{"↑↓", "navigate", "enter", "open", "backspace", "parent", "esc", "close"}
	case m.buttonFocused:
		pairs = []string{"←→", "move", "enter", "select", "tab", "fields"}
	default:
		pairs = append(pairs, m.currentStep().Hints()...)
	}

	switch m.ctl.Step() {
	case onboarding.StepBasicInfo:
		pairs = append(pairs, "esc", "cancel")
	case onboarding.StepComplete:
	default:
		if !m.currentModal() {
			pairs = append(pairs, "esc", "back")
		}
	}
	return wizard.RenderHintBar(pairs...)
}

// hasButtons reports whether the current step shows wizard-level
// navigation. The completion screen renders its own button.
func (m *Model) hasButtons() bool {
	return m.ctl.Step() != onboarding.StepComplete
}

// ensureButtonBar creates the button bar if needed, using cached instance per step.
func (m *Model) ensureButtonBar() {
	step := m.ctl.Step()
	if bar, ok := m.buttonBars[step]; ok {
		m.buttonBar = bar
		return
	}

	back := wizard.Button{ID: wizard.ButtonBack, Label: "← Back", State: wizard.ButtonNormal}
	if !m.ctl.CanBack() {
		back.State = wizard.ButtonDisabled
	}
	buttons := []wizard.Button{back}

	if m.ctl.CanSkip() {
		buttons = append(buttons, wizard.Button{ID: wizard.ButtonSkip, Label: "Skip", State: wizard.ButtonNormal})
	}

	nextLabel := "Continue →"
	if onboarding.NextOf(step) == onboarding.StepComplete {
		nextLabel = "Complete"
	}
	buttons = append(buttons, wizard.Button{ID: wizard.ButtonNext, Label: nextLabel, State: wizard.ButtonNormal})

	bar := wizard.NewButtonBar(buttons)
	bar.SetWidth(modalContentWidth)
	m.buttonBars[step] = bar
	m.buttonBar = bar
}

// activateButton handles button activation.
func (m *Model) activateButton(id wizard.ButtonID) (tea.Model, tea.Cmd) {
	switch id {
	case wizard.ButtonBack:
		return m.goBack()
	case wizard.ButtonSkip:
		return m.skip()
	case wizard.ButtonNext:
		return m.goNext()
	}
	return m, nil
}

func (m *Model) goNext() (tea.Model, tea.Cmd) {
	from := m.ctl.Step()
	return m, m.enter(from, m.ctl.Next())
}

func (m *Model) goBack() (tea.Model, tea.Cmd) {
	from := m.ctl.Step()
	return m, m.enter(from, m.ctl.Back())
}

func (m *Model) skip() (tea.Model, tea.Cmd) {
	from := m.ctl.Step()
	if !m.ctl.Skip() {
		return m, nil
	}
	return m, m.enter(from, m.ctl.Step())
}

// enter moves focus from the old step to the new one and resets the old
// step's transient state. Nothing happens when the step did not change.
func (m *Model) enter(from, to onboarding.Step) tea.Cmd {
	if from == to {
		return nil
	}

	left := m.stepAt(from)
	left.Blur()
	left.Reset()
	if m.buttonBar != nil {
		m.buttonBar.Blur()
	}
	m.buttonFocused = false
	m.buttonBar = nil

	if to == onboarding.StepComplete {
		m.completion.SetDraft(m.ctl.Draft())
	}
	return m.focusStepContentFirst()
}

func (m *Model) cancel() (tea.Model, tea.Cmd) {
	logger.Info("onboarding %s: cancelled on %s", m.ctl.ID(), m.ctl.Step())
	m.cancelled = true
	return m, tea.Quit
}

func (m *Model) focusStepContentFirst() tea.Cmd {
	return m.currentStep().Focus()
}

func (m *Model) focusStepContentLast() tea.Cmd {
	return m.currentStep().FocusLast()
}

func (m *Model) blurStepContent() {
	m.currentStep().Blur()
}
