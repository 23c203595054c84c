package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// ShowAllAction lists every action while the keyword is empty
type ShowAllAction struct{}

func (a ShowAllAction) Type() string { return "show_all" }

// ConfirmAction runs the highlighted action
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

// CancelAction closes the dialog without running anything
type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

// MoveDialogAction shifts the dialog by a number of cells
type MoveDialogAction struct {
	DX, DY int
}

func (a MoveDialogAction) Type() string { return "move_dialog" }
