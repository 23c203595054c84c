package search

import "actionsearch/internal/domain"

// Icons used for toggle actions instead of their own icon.
const (
	IconToggleOn  = "toggle-on"
	IconToggleOff = "toggle-off"
)

// Entry is one row of the result list. It lives for one search only.
type Entry struct {
	Action    *domain.Action
	Section   int
	Icon      string
	Label     string
	Shortcut  string
	Tooltip   string
	Sensitive bool
}

// NewEntry builds the row for action. Actions without a visible label
// produce no row.
func NewEntry(action *domain.Action, section int) (Entry, bool) {
	label := action.DisplayLabel()
	if label == "" {
		return Entry{}, false
	}

	icon := action.Icon
	if action.Toggle {
		icon = IconToggleOff
		if action.Active {
			icon = IconToggleOn
		}
	}

	return Entry{
		Action:    action,
		Section:   section,
		Icon:      icon,
		Label:     label,
		Shortcut:  action.Shortcut,
		Tooltip:   action.Tooltip,
		Sensitive: action.Sensitive,
	}, true
}

// ResultList keeps entries ordered by ascending section. Entries of the
// same section stay in insertion order.
type ResultList struct {
	entries []Entry
}

// Insert places e after every entry whose section is not greater than its own.
func (l *ResultList) Insert(e Entry) {
	i := len(l.entries)
	for j, cur := range l.entries {
		if cur.Section > e.Section {
			i = j
			break
		}
	}
	l.entries = append(l.entries, Entry{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = e
}

// Entries returns the ordered entries
func (l *ResultList) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries
func (l *ResultList) Len() int {
	return len(l.entries)
}
