// Package registry holds the application's action catalog: ordered action
// groups, the canonical action ordering, and the built-in groups.
package registry

import (
	"log"
	"slices"
	"strings"
	"sync"

	"actionsearch/internal/domain"
)

// Registry is an ordered collection of action groups.
type Registry struct {
	mu     sync.RWMutex
	groups []*domain.ActionGroup
}

// New creates an empty registry
func New() *Registry {
	return &Registry{}
}

// AddGroup appends a group. A group with the same name is replaced in place.
func (r *Registry) AddGroup(group *domain.ActionGroup) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, g := range r.groups {
		if g.Name == group.Name {
			log.Printf("Registry: replacing action group %q", group.Name)
			r.groups[i] = group
			return
		}
	}
	r.groups = append(r.groups, group)
}

// Groups returns the groups in registration order
func (r *Registry) Groups() []*domain.ActionGroup {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ActionGroup, len(r.groups))
	copy(out, r.groups)
	return out
}

// Group returns the named group, or nil
func (r *Registry) Group(name string) *domain.ActionGroup {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Lookup finds an action by name across all groups
func (r *Registry) Lookup(name string) *domain.Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.groups {
		if a := g.Lookup(name); a != nil {
			return a
		}
	}
	return nil
}

// SetCallback installs fn on every action that has no callback yet
func (r *Registry) SetCallback(fn func(a *domain.Action)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.groups {
		for _, a := range g.Actions {
			if a.Callback == nil {
				a.Callback = fn
			}
		}
	}
}

// CompareNames is the canonical action ordering: byte-wise by name.
func CompareNames(a, b *domain.Action) int {
	return strings.Compare(a.Name, b.Name)
}

// SortedActions returns a copy of the group's actions in canonical order
func SortedActions(group *domain.ActionGroup) []*domain.Action {
	out := slices.Clone(group.Actions)
	slices.SortStableFunc(out, CompareNames)
	return out
}
