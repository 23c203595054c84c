// Package language builds the list of languages offered by the language
// picker from the iso-codes ISO-639 data file.
package language

import (
	"log"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"actionsearch/internal/domain"
)

// Store receives the parsed languages
type Store interface {
	Add(name, code string)
}

// MemoryStore keeps languages in the order they were added
type MemoryStore struct {
	mu        sync.RWMutex
	languages []domain.Language
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Add appends a language
func (s *MemoryStore) Add(name, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.languages = append(s.languages, domain.Language{Name: name, Code: code})
}

// Languages returns the languages in insertion order
func (s *MemoryStore) Languages() []domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.languages)
}

// Len returns the number of languages
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.languages)
}

// Sorted returns the languages ordered by display name using the collation
// rules of locale. Equal names keep insertion order.
func (s *MemoryStore) Sorted(locale string) []domain.Language {
	tag, err := language.Parse(locale)
	if err != nil {
		log.Printf("Language: unknown collation locale %q, using root order: %v", locale, err)
		tag = language.Und
	}
	c := collate.New(tag, collate.IgnoreCase)

	out := s.Languages()
	slices.SortStableFunc(out, func(a, b domain.Language) int {
		return c.CompareString(a.Name, b.Name)
	})
	return out
}
