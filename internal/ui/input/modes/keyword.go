package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"actionsearch/internal/ui/input/types"
)

// KeywordMode edits the search keyword. Keys it does not consume are
// typed into the shared text input.
type KeywordMode struct {
	textInput *textinput.Model
}

func NewKeywordMode(ti *textinput.Model) *KeywordMode {
	return &KeywordMode{textInput: ti}
}

func (m *KeywordMode) Name() string {
	return "keyword"
}

func (m *KeywordMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Focus()
	}
	return nil
}

func (m *KeywordMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m *KeywordMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if actions, ok := dialogKey(msg); ok {
		return actions, true
	}

	if msg.Type == tea.KeyDown {
		// Down on an empty keyword lists everything
		if ctx.Keyword() == "" && !ctx.ResultsVisible() {
			return []types.Action{
				types.ShowAllAction{},
				types.ChangeModeAction{Mode: types.ModeResults},
			}, true
		}
		if ctx.ResultCount() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeResults}}, true
		}
		return nil, true
	}

	return nil, false
}
