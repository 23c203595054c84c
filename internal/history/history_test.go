package history

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"actionsearch/internal/domain"
	"actionsearch/internal/eventbus"
)

type mapResolver map[string]*domain.Action

func (m mapResolver) Lookup(name string) *domain.Action { return m[name] }

func containsMatch(a *domain.Action, keyword *string) (int, bool) {
	if keyword == nil {
		return 0, true
	}
	return 2, strings.Contains(strings.ToLower(a.Label), strings.ToLower(*keyword))
}

func ptr(s string) *string { return &s }

func TestMemoryStoreOrderAndSize(t *testing.T) {
	s := NewMemoryStore(3)
	for _, n := range []string{"a", "b", "c", "a", "d"} {
		require.NoError(t, s.Add(n))
	}

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "a", "c"}, names)
}

func TestSearchFiltersAndKeepsRecency(t *testing.T) {
	resolver := mapResolver{
		"blur":    {Name: "blur", Label: "Gaussian Blur", Sensitive: true},
		"motion":  {Name: "motion", Label: "Linear Motion Blur", Sensitive: false},
		"sharpen": {Name: "sharpen", Label: "Sharpen", Sensitive: true},
	}
	h := New(NewMemoryStore(10), resolver)
	for _, n := range []string{"blur", "gone", "motion", "sharpen"} {
		h.Record(&domain.Action{Name: n})
	}

	got := h.Search(ptr("blur"), containsMatch, false)
	require.Len(t, got, 1)
	assert.Equal(t, "blur", got[0].Name)

	got = h.Search(ptr("blur"), containsMatch, true)
	require.Len(t, got, 2)
	assert.Equal(t, "motion", got[0].Name, "most recent first")
	assert.Equal(t, "blur", got[1].Name)

	got = h.Search(nil, containsMatch, false)
	assert.Len(t, got, 2)
}

type failingStore struct{ MemoryStore }

func (s *failingStore) Add(string) error { return errors.New("disk full") }

func TestSubscribeRecordsActivations(t *testing.T) {
	resolver := mapResolver{
		"blur":    {Name: "blur", Label: "Gaussian Blur", Sensitive: true},
		"sharpen": {Name: "sharpen", Label: "Sharpen", Sensitive: true},
	}
	store := NewMemoryStore(10)
	h := New(store, resolver)

	bus := eventbus.New()
	h.Subscribe(bus)
	bus.Publish(eventbus.ActionActivatedEvent{Name: "blur", Keyword: "gb"})
	bus.Publish(eventbus.ActionActivatedEvent{Name: "sharpen", Keyword: "sha"})
	eventbus.Close(bus)

	names, err := store.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"sharpen", "blur"}, names)
}

func TestRecordFailureIsPublished(t *testing.T) {
	h := New(&failingStore{}, mapResolver{})

	bus := eventbus.New()
	var got []eventbus.ErrorEvent
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		got = append(got, e.(eventbus.ErrorEvent))
	})
	h.Subscribe(bus)
	bus.Publish(eventbus.ActionActivatedEvent{Name: "blur"})
	eventbus.Close(bus)

	require.Len(t, got, 1)
	assert.Equal(t, "Failed to update recent actions", got[0].Message)
	assert.EqualError(t, got[0].Err, "disk full")
}

func TestBadgerStoreInMemory(t *testing.T) {
	s, err := OpenBadgerStore("", 2)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Add("edit-undo"))
	require.NoError(t, s.Add("edit-copy"))
	require.NoError(t, s.Add("edit-undo"))
	require.NoError(t, s.Add("edit-paste"))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"edit-paste", "edit-undo"}, names)
}

func TestBadgerStorePersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "history")

	s, err := OpenBadgerStore(dir, 10)
	require.NoError(t, err)
	require.NoError(t, s.Add("filters-gaussian-blur"))
	require.NoError(t, s.Add("select-feather"))
	require.NoError(t, s.Close())

	s, err = OpenBadgerStore(dir, 10)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Add("filters-gaussian-blur"))

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"filters-gaussian-blur", "select-feather"}, names)
}
