package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"actionsearch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// statusEvents are the bus events the dialog shows in its status line
var statusEvents = []eventbus.EventType{
	eventbus.EventError,
	eventbus.EventActivationIgnored,
}

// ForwardEvents delivers status events from bus to the program through
// send, usually (*tea.Program).Send.
func ForwardEvents(bus eventbus.EventBus, send func(tea.Msg)) (unsubscribe func()) {
	var unsubscribers []func()
	for _, t := range statusEvents {
		unsubscribers = append(unsubscribers, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			send(EventMsg{Event: e})
		}))
	}
	return func() {
		for _, u := range unsubscribers {
			u()
		}
	}
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
