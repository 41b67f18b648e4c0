package onboarding

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/sorra/internal/logger"
	"github.com/mark3labs/sorra/internal/profile"
	"github.com/mark3labs/sorra/internal/resume"
	"github.com/mark3labs/sorra/internal/tui/theme"
	"github.com/mark3labs/sorra/internal/tui/wizard"
)

// ResumeStep accepts a single resume, either dropped onto the terminal
// (which arrives as a bracketed paste of its path) or chosen in the file
// browser. A rejected file never reaches the draft; it only sets fileErr,
// which the next attempt clears.
type ResumeStep struct {
	draft profile.Draft
	merge MergeFunc

	startDir   string
	picker     *wizard.FilePicker
	dragActive bool
	fileErr    string
	focused    bool

	width  int
	height int
}

// NewResumeStep creates the step. startDir is where the file browser opens.
func NewResumeStep(d profile.Draft, merge MergeFunc, startDir string) *ResumeStep {
	return &ResumeStep{
		draft:    d,
		merge:    merge,
		startDir: startDir,
		width:    60,
	}
}

// Init initializes the resume step.
func (s *ResumeStep) Init() tea.Cmd {
	return s.Focus()
}

// Focus gives the step keyboard focus.
func (s *ResumeStep) Focus() tea.Cmd {
	s.focused = true
	return nil
}

// FocusLast is the same as Focus: the step has a single control.
func (s *ResumeStep) FocusLast() tea.Cmd {
	return s.Focus()
}

// Blur removes keyboard focus.
func (s *ResumeStep) Blur() {
	s.focused = false
}

// Reset closes the file browser and clears the drag state and any rejection
// message.
func (s *ResumeStep) Reset() {
	s.picker = nil
	s.dragActive = false
	s.fileErr = ""
}

// Modal reports whether the file browser is open and owns the keyboard.
func (s *ResumeStep) Modal() bool {
	return s.picker != nil
}

// DragActive reports whether a drop is in progress.
func (s *ResumeStep) DragActive() bool { return s.dragActive }

// Error returns the inline rejection message, if any.
func (s *ResumeStep) Error() string { return s.fileErr }

// Draft returns the step's view of the draft.
func (s *ResumeStep) Draft() profile.Draft { return s.draft }

// SetSize updates the size of the step.
func (s *ResumeStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	if s.picker != nil {
		s.picker.SetSize(width, height)
	}
}

// Update handles messages for the resume step.
func (s *ResumeStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.PasteStartMsg:
		if s.picker == nil {
			s.dragActive = true
		}
		return nil

	case tea.PasteEndMsg:
		s.dragActive = false
		return nil

	case tea.PasteMsg:
		if s.picker != nil {
			return nil
		}
		s.dragActive = false
		path := resume.NormalizeDroppedPath(msg.Content)
		if path == "" {
			return nil
		}
		s.accept(path)
		return nil

	case wizard.FileSelectedMsg:
		s.picker = nil
		s.accept(msg.Path)
		return nil

	case wizard.FilePickerCancelledMsg:
		s.picker = nil
		return nil
	}

	if s.picker != nil {
		return s.picker.Update(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return nil
	}

	switch keyMsg.String() {
	case "tab":
		return func() tea.Msg { return wizard.TabExitForwardMsg{} }
	case "shift+tab":
		return func() tea.Msg { return wizard.TabExitBackwardMsg{} }
	case "b", "o":
		s.openPicker()
	case "enter", "space", " ":
		if s.draft.HasResume() {
			s.remove()
		} else {
			s.openPicker()
		}
	case "x", "delete", "backspace":
		if s.draft.HasResume() {
			s.remove()
		}
	}
	return nil
}

func (s *ResumeStep) openPicker() {
	s.picker = wizard.NewFilePicker(s.startDir)
	s.picker.SetSize(s.width, s.height)
}

// accept inspects the file at path and stores it if the acceptance policy
// allows.
func (s *ResumeStep) accept(path string) {
	s.fileErr = ""

	h, err := resume.Inspect(path)
	if err != nil {
		logger.Debug("resume: cannot inspect %s: %v", path, err)
		s.fileErr = fmt.Sprintf("Could not read file: %v", err)
		return
	}

	if err := resume.Accept(h); err != nil {
		logger.Debug("resume: %v", err)
		s.fileErr = resume.UserMessage(err)
		return
	}

	s.draft = s.merge(profile.Patch{Resume: &h})
}

func (s *ResumeStep) remove() {
	s.fileErr = ""
	s.draft = s.merge(profile.Patch{ClearResume: true})
}

// View renders the resume step.
func (s *ResumeStep) View() string {
	st := theme.Current().S()

	if s.picker != nil {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			st.Title.Render("Choose your resume"),
			"",
			s.picker.View(),
		)
	}

	sections := []string{
		st.Title.Render("Upload your resume"),
		st.Subtitle.Render("This step is optional, but a resume helps us match you with better opportunities"),
		"",
	}

	if s.draft.HasResume() {
		sections = append(sections, s.renderUploaded())
	} else {
		sections = append(sections, s.renderDropZone())
	}

	if s.fileErr != "" {
		sections = append(sections, "", st.Error.Render("✗ Error: "+s.fileErr))
	}

	sections = append(sections, "", s.renderInfoBox())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *ResumeStep) renderDropZone() string {
	st := theme.Current().S()

	zone := st.DropZone
	headline := "Drag and drop your resume here"
	if s.dragActive {
		zone = st.DropZoneActive
		headline = "Drop to upload"
	}

	browse := st.ButtonNormal.Render("Browse files")
	if s.focused {
		browse = st.ButtonFocused.Render("Browse files")
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		st.Highlight.Render("⇪"),
		"",
		st.Label.Render(headline),
		st.Muted.Render("Supports PDF, DOC, DOCX (Max 5MB)"),
		"",
		st.Subtle.Render("or"),
		"",
		browse,
	)

	return zone.Width(s.width).Render(body)
}

func (s *ResumeStep) renderUploaded() string {
	st := theme.Current().S()
	h := s.draft.Resume

	remove := st.ButtonNormal.Render("Remove")
	if s.focused {
		remove = st.ButtonFocused.Render("Remove")
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		st.Success.Render("✓ Resume uploaded"),
		st.Muted.Render("Your resume is ready for AI analysis"),
		"",
		st.Label.Render("📄 "+h.Name)+" "+st.Subtle.Render(formatSize(h.Size)),
		"",
		remove,
	)

	return st.ModalContainer.Width(s.width).Render(body)
}

func (s *ResumeStep) renderInfoBox() string {
	st := theme.Current().S()
	return st.InfoBox.Render(strings.Join([]string{
		st.Warning.Bold(true).Render("Why upload a resume?"),
		st.Muted.Render("Sorra's AI will analyze your resume to:"),
		st.Muted.Render("• Extract your skills and experience"),
		st.Muted.Render("• Suggest job matches based on your background"),
		st.Muted.Render("• Highlight your strengths to potential employers"),
	}, "\n"))
}

// Hints returns the key hints for the current state.
func (s *ResumeStep) Hints() []string {
	if s.picker != nil {
		return nil
	}
	if s.draft.HasResume() {
		return []string{"x", "remove", "tab", "buttons"}
	}
	return []string{"drop file", "upload", "b", "browse", "tab", "buttons"}
}

func formatSize(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
