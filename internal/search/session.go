package search

import (
	"log"

	"actionsearch/internal/eventbus"
)

// Phase is the lifecycle state of a search session
type Phase int

const (
	PhaseEmpty     Phase = iota // no keyword typed, results hidden
	PhaseSearching              // keyword typed or show-all requested, nothing highlighted
	PhaseSelected               // a result is highlighted
	PhaseActivated              // the selected action ran; terminal
	PhaseDismissed              // cancelled; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseSearching:
		return "searching"
	case PhaseSelected:
		return "selected"
	case PhaseActivated:
		return "activated"
	case PhaseDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has been torn down
func (p Phase) Terminal() bool {
	return p == PhaseActivated || p == PhaseDismissed
}

// State holds session state
type State struct {
	Phase    Phase
	Keyword  string
	ShowAll  bool
	Results  []Entry
	Selected int // index into Results, -1 when nothing is highlighted
}

// Searcher produces ranked entries for a keyword
type Searcher interface {
	Search(keyword *string) []Entry
}

// Session drives one opening of the search dialog, from the first
// keystroke to activation or dismissal. Activations are announced on the
// bus; the history subscribes to them to record usage.
type Session struct {
	state    *State
	bus      eventbus.EventBus
	searcher Searcher
}

// NewSession creates a session in the Empty phase
func NewSession(searcher Searcher, bus eventbus.EventBus) *Session {
	return &Session{
		state: &State{
			Phase:    PhaseEmpty,
			Selected: -1,
		},
		bus:      bus,
		searcher: searcher,
	}
}

// SetKeyword reruns the search for keyword and highlights the best result.
// An empty keyword hides the results.
func (s *Session) SetKeyword(keyword string) {
	if s.state.Phase.Terminal() {
		return
	}

	s.state.Keyword = keyword
	s.state.ShowAll = false

	if keyword == "" {
		s.clear()
		return
	}

	s.load(s.searcher.Search(&keyword))
}

// ShowAll lists every eligible action unranked. It only applies while the
// keyword is empty.
func (s *Session) ShowAll() {
	if s.state.Phase.Terminal() || s.state.Keyword != "" {
		return
	}

	s.state.ShowAll = true
	s.load(s.searcher.Search(nil))
}

// Select highlights the result at index. Out of range indexes are ignored.
func (s *Session) Select(index int) {
	if s.state.Phase.Terminal() || index < 0 || index >= len(s.state.Results) {
		return
	}
	s.state.Selected = index
	s.state.Phase = PhaseSelected
}

// MoveDown highlights the next result, stopping at the last one
func (s *Session) MoveDown() {
	if s.state.Selected+1 < len(s.state.Results) {
		s.Select(s.state.Selected + 1)
	}
}

// MoveUp highlights the previous result. At the top of the list it
// reports that focus should go back to the keyword entry; the session
// state does not change in that case.
func (s *Session) MoveUp() (focusKeyword bool) {
	if s.state.Phase.Terminal() {
		return false
	}
	if s.state.Selected <= 0 {
		return true
	}
	s.Select(s.state.Selected - 1)
	return false
}

// Confirm activates the highlighted action. Insensitive actions are
// ignored and the session stays open. It reports whether an action ran.
func (s *Session) Confirm() bool {
	entry := s.Current()
	if s.state.Phase.Terminal() || entry == nil {
		return false
	}

	if !entry.Action.Activate() {
		log.Printf("Search: ignoring activation of insensitive action %s", entry.Action.Name)
		s.publish(eventbus.ActivationIgnoredEvent{Name: entry.Action.Name, Label: entry.Label})
		return false
	}

	s.state.Phase = PhaseActivated
	s.publish(eventbus.ActionActivatedEvent{Name: entry.Action.Name, Keyword: s.state.Keyword})
	return true
}

// Cancel dismisses the session without running anything
func (s *Session) Cancel() {
	if s.state.Phase.Terminal() {
		return
	}
	s.state.Phase = PhaseDismissed
	log.Printf("Search: dismissed with keyword %q", s.state.Keyword)
}

// Current returns the highlighted entry, or nil
func (s *Session) Current() *Entry {
	if s.state.Selected < 0 || s.state.Selected >= len(s.state.Results) {
		return nil
	}
	return &s.state.Results[s.state.Selected]
}

// Phase returns the session phase
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Keyword returns the current keyword
func (s *Session) Keyword() string {
	return s.state.Keyword
}

// Results returns the current result list
func (s *Session) Results() []Entry {
	return s.state.Results
}

// SelectedIndex returns the highlighted index, -1 if none
func (s *Session) SelectedIndex() int {
	return s.state.Selected
}

// ResultsVisible reports whether the result list is shown
func (s *Session) ResultsVisible() bool {
	return s.state.Keyword != "" || s.state.ShowAll
}

// Internal methods
func (s *Session) load(results []Entry) {
	s.state.Results = results
	if len(results) > 0 {
		s.state.Selected = 0
		s.state.Phase = PhaseSelected
	} else {
		s.state.Selected = -1
		s.state.Phase = PhaseSearching
	}
}

func (s *Session) clear() {
	s.state.Results = nil
	s.state.Selected = -1
	s.state.Phase = PhaseEmpty
}

func (s *Session) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
