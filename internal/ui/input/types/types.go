package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeKeyword Mode = iota // typing into the keyword entry
	ModeResults             // moving through the result list
)

func (m Mode) String() string {
	switch m {
	case ModeKeyword:
		return "keyword"
	case ModeResults:
		return "results"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to dialog state needed for input handling
type Context interface {
	Keyword() string
	ResultsVisible() bool
	SelectedIndex() int
	ResultCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
