package views

import (
	"strings"

	"actionsearch/internal/search"
)

// IconGlyph returns the one-cell glyph drawn for an entry icon
func IconGlyph(icon string) string {
	switch icon {
	case search.IconToggleOn:
		return "✓"
	case search.IconToggleOff:
		return "✗"
	case "":
		return " "
	default:
		return "•"
	}
}

// Markup renders an entry as its label, then " | shortcut" when the action
// has a visible shortcut, then the tooltip on its own line.
func Markup(e search.Entry, s *Styles) string {
	label := s.Label
	if !e.Sensitive {
		label = s.Insensitive
	}

	var b strings.Builder
	b.WriteString(label.Render(e.Label))
	if e.Shortcut != "" {
		b.WriteString(s.Shortcut.Render(" | " + e.Shortcut))
	}
	if e.Tooltip != "" {
		b.WriteString("\n")
		b.WriteString(s.Tooltip.Render(e.Tooltip))
	}
	return b.String()
}

// visibleWindow returns the first entry to draw so that selected stays
// inside a window of rows entries.
func visibleWindow(selected, total, rows int) (start, end int) {
	if rows <= 0 || total <= rows {
		return 0, total
	}
	if selected >= rows {
		start = selected - rows + 1
	}
	return start, min(start+rows, total)
}
