package domain

import "strings"

// Action is an invokable application command owned by the action registry.
// The search dialog only reads it and calls Activate.
type Action struct {
	Name      string // unique identifier, e.g. "filters-gaussian-blur"
	Label     string // display label, may contain mnemonic underscores
	Tooltip   string // "" when the action has no tooltip
	Icon      string // icon name shown next to the label
	Shortcut  string // visible accelerator label, "" if none
	Toggle    bool   // toggle actions show their state instead of Icon
	Active    bool   // toggle state
	Sensitive bool
	Value     string // payload for string actions, e.g. an operation name
	Callback  func(a *Action)
}

// Activate runs the action callback if the action is sensitive.
// It reports whether the callback was invoked.
func (a *Action) Activate() bool {
	if a == nil || !a.Sensitive {
		return false
	}
	if a.Toggle {
		a.Active = !a.Active
	}
	if a.Callback != nil {
		a.Callback(a)
	}
	return true
}

// DisplayLabel returns the label with mnemonic underscores removed and
// surrounding whitespace trimmed. A doubled underscore stands for a
// literal one.
func (a *Action) DisplayLabel() string {
	return StripMnemonic(a.Label)
}

// StripMnemonic removes mnemonic markers from a label.
func StripMnemonic(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for i := 0; i < len(label); i++ {
		if label[i] == '_' {
			if i+1 < len(label) && label[i+1] == '_' {
				b.WriteByte('_')
				i++
			}
			continue
		}
		b.WriteByte(label[i])
	}
	return strings.TrimSpace(b.String())
}

// ActionGroup is a named set of actions, as registered by one subsystem.
type ActionGroup struct {
	Name    string
	Actions []*Action
}

// Lookup returns the action with the given name, or nil.
func (g *ActionGroup) Lookup(name string) *Action {
	for _, a := range g.Actions {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Language is a (display name, ISO code) pair shown in the language picker.
type Language struct {
	Name string
	Code string
}

// Rect is a window rectangle in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}
