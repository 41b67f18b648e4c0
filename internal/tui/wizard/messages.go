package wizard

// TabExitForwardMsg is sent by a step when tab leaves its last control, so
// the wizard can move focus to the button bar.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent by a step when shift+tab leaves its first
// control.
type TabExitBackwardMsg struct{}

// FileSelectedMsg is sent when a file is chosen in the file picker.
type FileSelectedMsg struct {
	Path string
}

// FilePickerCancelledMsg is sent when the file picker is dismissed.
type FilePickerCancelledMsg struct{}
