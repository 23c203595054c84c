package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(k, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", k)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Action Search Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Keyword entry"))
	help.WriteString("\n")
	help.WriteString(row("type", "Search actions by label, initials or tooltip"))
	help.WriteString(row("↓", "Move to the results; on an empty keyword, list all actions"))
	help.WriteString(row("Enter", "Run the highlighted action"))
	help.WriteString(row("Esc", "Close the dialog"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	help.WriteString(row("↑/↓", "Previous/next result; ↑ on the first returns to the entry"))
	help.WriteString(row("PgUp/PgDn", "Page up/down"))
	help.WriteString(row("Home/End", "First/last result"))
	help.WriteString(row("other keys", "Continue typing the keyword"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Dialog"))
	help.WriteString("\n")
	help.WriteString(row("Alt+arrows", "Move the dialog"))
	help.WriteString(row("Ctrl+wheel", "Change opacity"))
	help.WriteString(row("F1", "Show this help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Ranking"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  Recently used actions come first, then label prefix and initials matches,"))
	help.WriteString("\n")
	help.WriteString(descStyle.Render("  then label substrings, tooltip matches, and finally scattered letters."))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	return ShowInPager(helpContent)
}

// ShowInPager runs the ov pager over content until the user quits it
func ShowInPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
