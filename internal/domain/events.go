package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventActionActivated   EventType = "ActionActivated"
	EventActivationIgnored EventType = "ActivationIgnored"
	EventLanguagesLoaded   EventType = "LanguagesLoaded"
	EventError             EventType = "Error"
	EventConfigChanged     EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ActionActivatedEvent is emitted when the selected action was run
type ActionActivatedEvent struct {
	Name    string
	Keyword string
}

func (e ActionActivatedEvent) Type() EventType { return EventActionActivated }

// ActivationIgnoredEvent is emitted when the user confirmed an insensitive action
type ActivationIgnoredEvent struct {
	Name  string
	Label string
}

func (e ActivationIgnoredEvent) Type() EventType { return EventActivationIgnored }

// LanguagesLoadedEvent is emitted after the language store was populated.
// Path is empty when no data file was found.
type LanguagesLoadedEvent struct {
	Count int
	Path  string
}

func (e LanguagesLoadedEvent) Type() EventType { return EventLanguagesLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigChangedEvent is emitted when dialog settings changed and need saving
type ConfigChangedEvent struct {
	Reason string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
