package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"actionsearch/internal/ui/input/types"
)

// ResultsMode moves the highlight through the result list
type ResultsMode struct{}

func NewResultsMode() *ResultsMode {
	return &ResultsMode{}
}

func (m *ResultsMode) Name() string {
	return "results"
}

func (m *ResultsMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ResultsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := dialogKey(msg); ok {
		return actions, true
	}

	switch msg.Type {
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	}

	// Anything else goes back to the keyword entry, which then receives the key
	return []types.Action{types.ChangeModeAction{Mode: types.ModeKeyword}}, false
}
