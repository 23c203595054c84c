package views

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"actionsearch/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Dialog      lipgloss.Style
	Prompt      lipgloss.Style
	Label       lipgloss.Style
	Shortcut    lipgloss.Style
	Tooltip     lipgloss.Style
	Insensitive lipgloss.Style
	Icon        lipgloss.Style
	SelectionBg lipgloss.Style
	Scroll      lipgloss.Style
	Help        lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Shortcut:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Tooltip:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true),
		Insensitive: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

// WithOpacity returns a copy whose text colors fade towards the terminal
// background as opacity drops. Full opacity returns s unchanged.
func (s *Styles) WithOpacity(opacity int) *Styles {
	if opacity >= config.MaxOpacity {
		return s
	}
	faded := *s
	c := OpacityColor(opacity)
	faded.Label = s.Label.Foreground(c)
	faded.Shortcut = s.Shortcut.Foreground(c)
	faded.Prompt = s.Prompt.Foreground(c)
	faded.Icon = s.Icon.Foreground(c)
	faded.Dialog = s.Dialog.BorderForeground(c)
	return &faded
}

// OpacityColor maps an opacity percentage onto the 24-step grayscale ramp
// of the 256-color palette (232 is darkest, 255 lightest).
func OpacityColor(opacity int) lipgloss.Color {
	opacity = min(max(opacity, config.MinOpacity), config.MaxOpacity)
	return lipgloss.Color(strconv.Itoa(232 + opacity*23/100))
}
