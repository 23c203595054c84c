// Package history records which actions were run recently and answers
// keyword queries over them for the search dialog.
package history

import (
	"log"

	"actionsearch/internal/domain"
	"actionsearch/internal/eventbus"
)

// DefaultSize is the number of actions remembered when no size is configured.
const DefaultSize = 100

// Store persists action names in recency order.
type Store interface {
	// Add records a use of the named action, making it the most recent.
	Add(name string) error
	// Names returns the remembered names, most recent first.
	Names() ([]string, error)
	Close() error
}

// Resolver maps action names back to live actions.
type Resolver interface {
	Lookup(name string) *domain.Action
}

// MatchFunc decides whether an action matches a keyword.
type MatchFunc func(action *domain.Action, keyword *string) (section int, ok bool)

// History is the recent-usage collaborator of the search dialog.
type History struct {
	store    Store
	resolver Resolver
	bus      eventbus.EventBus
}

// New creates a history backed by store
func New(store Store, resolver Resolver) *History {
	return &History{store: store, resolver: resolver}
}

// Subscribe records every action activated on bus. Store failures are
// reported back on the bus as error events.
func (h *History) Subscribe(bus eventbus.EventBus) (unsubscribe func()) {
	h.bus = bus
	return bus.Subscribe(eventbus.EventActionActivated, func(e eventbus.DomainEvent) {
		if activated, ok := e.(eventbus.ActionActivatedEvent); ok {
			h.add(activated.Name)
		}
	})
}

// Record remembers that the action was run. Failures are logged; history
// is best-effort.
func (h *History) Record(action *domain.Action) {
	if action == nil {
		return
	}
	h.add(action.Name)
}

func (h *History) add(name string) {
	err := h.store.Add(name)
	if err == nil {
		return
	}
	log.Printf("History: failed to record %s: %v", name, err)
	if h.bus != nil {
		h.bus.Publish(eventbus.ErrorEvent{Message: "Failed to update recent actions", Err: err})
	}
}

// Search returns the remembered actions that match keyword, most recent
// first. Actions that no longer exist are skipped, and so are insensitive
// ones unless showUnavailable is set.
func (h *History) Search(keyword *string, match MatchFunc, showUnavailable bool) []*domain.Action {
	names, err := h.store.Names()
	if err != nil {
		log.Printf("History: failed to read history: %v", err)
		return nil
	}

	var result []*domain.Action
	for _, name := range names {
		action := h.resolver.Lookup(name)
		if action == nil {
			continue
		}
		if !action.Sensitive && !showUnavailable {
			continue
		}
		if _, ok := match(action, keyword); ok {
			result = append(result, action)
		}
	}
	return result
}

// Close closes the underlying store
func (h *History) Close() error {
	return h.store.Close()
}
