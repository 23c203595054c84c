package search

import (
	"log"
	"strings"

	"actionsearch/internal/domain"
	"actionsearch/internal/history"
	"actionsearch/internal/registry"
)

// Names with these affixes are structural entries (menus, popups, context
// and recently-used proxies) and are never listed.
var (
	skippedSuffixes = []string{"-menu", "-popup"}
	skippedPrefixes = []string{"context-", "plug-in-recent-"}
)

// Catalog enumerates action groups in registry order.
type Catalog interface {
	Groups() []*domain.ActionGroup
}

// Recent answers keyword queries over recently used actions.
type Recent interface {
	Search(keyword *string, match history.MatchFunc, showUnavailable bool) []*domain.Action
}

// Aggregator builds the ranked result list for a keyword.
type Aggregator struct {
	catalog         Catalog
	recent          Recent
	showUnavailable func() bool
}

// NewAggregator creates an aggregator. recent may be nil. showUnavailable
// is consulted on every search so configuration changes apply immediately.
func NewAggregator(catalog Catalog, recent Recent, showUnavailable func() bool) *Aggregator {
	if showUnavailable == nil {
		showUnavailable = func() bool { return false }
	}
	return &Aggregator{catalog: catalog, recent: recent, showUnavailable: showUnavailable}
}

// Search returns the matching entries, best sections first. A nil keyword
// lists every eligible action in SectionHistory; an empty one lists nothing.
func (a *Aggregator) Search(keyword *string) []Entry {
	if keyword != nil && *keyword == "" {
		return nil
	}

	showUnavailable := a.showUnavailable()

	var results ResultList
	fromHistory := make(map[string]bool)

	if a.recent != nil {
		for _, action := range a.recent.Search(keyword, MatchKeyword, showUnavailable) {
			if fromHistory[action.Name] {
				continue
			}
			fromHistory[action.Name] = true
			if e, ok := NewEntry(action, SectionHistory); ok {
				results.Insert(e)
			}
		}
	}

	for _, group := range a.catalog.Groups() {
		for _, action := range registry.SortedActions(group) {
			if skipped(action.Name) {
				continue
			}
			if !action.Sensitive && !showUnavailable {
				continue
			}

			section, ok := MatchKeyword(action, keyword)
			if !ok || fromHistory[action.Name] {
				continue
			}
			if e, ok := NewEntry(action, section); ok {
				results.Insert(e)
			}
		}
	}

	if keyword != nil {
		log.Printf("Search: %q matched %d actions", *keyword, results.Len())
	}
	return results.Entries()
}

func skipped(name string) bool {
	for _, s := range skippedSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	for _, p := range skippedPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
