package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"actionsearch/internal/config"
	"actionsearch/internal/domain"
	"actionsearch/internal/eventbus"
	"actionsearch/internal/search"
	"actionsearch/internal/ui/input"
	inputtypes "actionsearch/internal/ui/input/types"
	"actionsearch/internal/ui/views"
)

// Model is the search dialog
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	session *search.Session

	// UI-specific state
	screen      domain.Rect
	dialog      domain.Rect // placed dialog; Height is the expanded height
	placed      bool
	status      string
	inPagerMode bool

	help         help.Model
	keys         keyMap
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the dialog for session. Geometry and opacity changes
// are written to cfg and announced with ConfigChanged events.
func NewModel(bus eventbus.EventBus, cfg *config.Config, session *search.Session) *Model {
	return &Model{
		bus:          bus,
		config:       cfg,
		session:      session,
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Session returns the search session driven by the dialog
func (m *Model) Session() *search.Session {
	return m.session
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Dialog returns the rectangle the dialog is drawn in
func (m *Model) Dialog() domain.Rect {
	return m.dialog
}

// Context implementation for the input handler

func (m *Model) Keyword() string      { return m.session.Keyword() }
func (m *Model) ResultsVisible() bool { return m.session.ResultsVisible() }
func (m *Model) SelectedIndex() int   { return m.session.SelectedIndex() }
func (m *Model) ResultCount() int     { return len(m.session.Results()) }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m.handleNonKeyboardMsg(msg)
}

// View renders the dialog
func (m *Model) View() string {
	if m.session.Phase().Terminal() || m.inPagerMode {
		return ""
	}

	return m.renderer.Render(m.dialogView())
}

func (m *Model) dialogView() views.DialogView {
	return views.DialogView{
		Input:    m.inputHandler.TextInput().View(),
		Entries:  m.session.Results(),
		Selected: m.session.SelectedIndex(),
		ShowList: m.session.ResultsVisible(),
		Rect:     m.dialog,
		Opacity:  m.config.Search.Dialog.Opacity,
		Help:     m.help.View(m.keys),
		Status:   m.status,
	}
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.session.SetKeyword(a.Text)

	case inputtypes.ShowAllAction:
		m.session.ShowAll()

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ConfirmAction:
		if m.session.Confirm() {
			log.Printf("Dialog: ran %s", m.session.Current().Action.Name)
			return tea.Quit
		}

	case inputtypes.CancelAction:
		m.session.Cancel()
		return tea.Quit

	case inputtypes.QuitAction:
		m.session.Cancel()
		return tea.Quit

	case inputtypes.ShowHelpAction:
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
		return m.fetchHelpPager(NewHelpRenderer().RenderHelpContent())

	case inputtypes.MoveDialogAction:
		m.moveDialog(a.DX, a.DY)
	}
	return nil
}

func (m *Model) navigate(direction string) {
	count := len(m.session.Results())
	switch direction {
	case "up":
		if m.session.MoveUp() {
			m.inputHandler.ChangeMode(inputtypes.ModeKeyword, m)
		}
	case "down":
		m.session.MoveDown()
	case "pageup":
		m.session.Select(max(m.session.SelectedIndex()-m.pageSize(), 0))
	case "pagedown":
		m.session.Select(min(m.session.SelectedIndex()+m.pageSize(), count-1))
	case "home":
		m.session.Select(0)
	case "end":
		m.session.Select(count - 1)
	}
}

func (m *Model) pageSize() int {
	return max((m.dialog.Height-3)/2, 1)
}

// resize places the dialog against the terminal, which acts as both the
// parent window and the screen.
func (m *Model) resize(width, height int) {
	m.screen = domain.Rect{Width: width, Height: height}
	m.help.Width = width

	geometry := &m.config.Search.Dialog
	r := geometry.Place(m.screen, m.screen)
	r.Height = geometry.Height
	m.dialog = r

	if !m.placed {
		log.Printf("Dialog: placed at %d,%d width %d on %dx%d", r.X, r.Y, r.Width, width, height)
		m.placed = true
	}
}

func (m *Model) moveDialog(dx, dy int) {
	r := m.dialog
	r.X = min(max(r.X+dx, 0), max(m.screen.Width-r.Width, 0))
	r.Y = min(max(r.Y+dy, 0), max(m.screen.Height-r.Height, 0))
	if r == m.dialog {
		return
	}
	m.dialog = r

	m.config.Search.Dialog.Configure(r, m.session.ResultsVisible())
	m.configChanged("dialog moved")
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.activateAt(msg.X, msg.Y)
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if msg.Ctrl && m.config.Search.Dialog.AdjustOpacity(msg.Button == tea.MouseButtonWheelUp) {
			m.configChanged(fmt.Sprintf("opacity %d%%", m.config.Search.Dialog.Opacity))
		}
	}
	return nil
}

// activateAt runs the result row under a click
func (m *Model) activateAt(x, y int) tea.Cmd {
	index, ok := m.renderer.EntryAt(m.dialogView(), x, y)
	if !ok {
		return nil
	}
	m.session.Select(index)
	if m.session.Confirm() {
		log.Printf("Dialog: ran %s from click", m.session.Current().Action.Name)
		return tea.Quit
	}
	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		switch e := msg.Event.(type) {
		case eventbus.ErrorEvent:
			m.status = e.Message
		case eventbus.ActivationIgnoredEvent:
			m.status = fmt.Sprintf("%s is not available right now", e.Label)
		default:
			return m, nil
		}
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

// configChanged announces a geometry or opacity change; the palette
// command saves the configuration once the dialog closes.
func (m *Model) configChanged(reason string) {
	m.publish(eventbus.ConfigChangedEvent{Reason: reason})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}
