package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"actionsearch/internal/domain"
	"actionsearch/internal/search"
)

// DialogView is everything needed to draw the search dialog
type DialogView struct {
	Input    string // rendered keyword entry
	Entries  []search.Entry
	Selected int
	ShowList bool
	Rect     domain.Rect // position and width; Height is the full height with results shown
	Opacity  int
	Help     string
	Status   string
}

// Renderer draws the search dialog
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with the default styles
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render draws the dialog at its position
func (r *Renderer) Render(v DialogView) string {
	s := r.styles.WithOpacity(v.Opacity)

	inner := innerWidth(v.Rect)

	var b strings.Builder
	b.WriteString(s.Prompt.Render("› "))
	b.WriteString(v.Input)

	if v.ShowList {
		b.WriteString("\n")
		b.WriteString(r.renderResults(v, s, inner))
	}

	if v.Status != "" {
		b.WriteString("\n")
		b.WriteString(s.StatusError.Render(v.Status))
	}
	if v.Help != "" {
		b.WriteString("\n")
		b.WriteString(s.Help.Render(v.Help))
	}

	box := s.Dialog.Width(inner + 2).Render(b.String())
	return lipgloss.NewStyle().
		MarginLeft(max(v.Rect.X, 0)).
		MarginTop(max(v.Rect.Y, 0)).
		Render(box)
}

func (r *Renderer) renderResults(v DialogView, s *Styles, width int) string {
	if len(v.Entries) == 0 {
		return s.Scroll.Render("No matching actions")
	}

	start, end := visibleWindow(v.Selected, len(v.Entries), resultRows(v.Rect))

	var lines []string
	if start > 0 {
		lines = append(lines, s.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}

	line := lipgloss.NewStyle().MaxWidth(width)
	for i := start; i < end; i++ {
		e := v.Entries[i]
		row := s.Icon.Render(IconGlyph(e.Icon)) + " " + Markup(e, s)
		row = line.Render(indentContinuation(row))
		if i == v.Selected {
			row = s.SelectionBg.Width(width).Render(row)
		}
		lines = append(lines, row)
	}

	if end < len(v.Entries) {
		lines = append(lines, s.Scroll.Render(fmt.Sprintf("↓ %d more", len(v.Entries)-end)))
	}
	return strings.Join(lines, "\n")
}

// indentContinuation aligns tooltip lines with the label after the icon
func indentContinuation(row string) string {
	return strings.ReplaceAll(row, "\n", "\n  ")
}

// EntryAt returns the index of the entry drawn at screen cell x, y. It
// follows the layout of Render: top border, keyword row, optional scroll
// hint, then one row per entry plus one for its tooltip.
func (r *Renderer) EntryAt(v DialogView, x, y int) (int, bool) {
	if !v.ShowList || len(v.Entries) == 0 {
		return -1, false
	}

	left := max(v.Rect.X, 0)
	if x < left || x >= left+innerWidth(v.Rect)+4 {
		return -1, false
	}

	start, end := visibleWindow(v.Selected, len(v.Entries), resultRows(v.Rect))
	line := max(v.Rect.Y, 0) + 2
	if start > 0 {
		line++
	}
	for i := start; i < end; i++ {
		height := 1
		if v.Entries[i].Tooltip != "" {
			height++
		}
		if y >= line && y < line+height {
			return i, true
		}
		line += height
	}
	return -1, false
}

// innerWidth is the content width; border and padding take two cells on
// each side.
func innerWidth(rect domain.Rect) int {
	return max(rect.Width-4, 20)
}

// resultRows is how many entries fit. Each entry takes up to two lines;
// keep room for the entry row and scroll hints.
func resultRows(rect domain.Rect) int {
	return max((rect.Height-3)/2, 1)
}
