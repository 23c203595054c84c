package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"actionsearch/internal/ui/input/types"
)

// dialogKey handles the keys that behave the same in every mode
func dialogKey(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.CancelAction{}}, true
	case "enter":
		return []types.Action{types.ConfirmAction{}}, true
	case "f1":
		return []types.Action{types.ShowHelpAction{}}, true
	case "alt+up":
		return []types.Action{types.MoveDialogAction{DY: -1}}, true
	case "alt+down":
		return []types.Action{types.MoveDialogAction{DY: 1}}, true
	case "alt+left":
		return []types.Action{types.MoveDialogAction{DX: -1}}, true
	case "alt+right":
		return []types.Action{types.MoveDialogAction{DX: 1}}, true
	}
	return nil, false
}
