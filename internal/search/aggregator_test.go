package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"actionsearch/internal/domain"
	"actionsearch/internal/history"
	"actionsearch/internal/registry"
)

func testRegistry() *registry.Registry {
	r := registry.New()
	r.AddGroup(&domain.ActionGroup{Name: "filters", Actions: []*domain.Action{
		{Name: "filters-gaussian-blur", Label: "_Gaussian Blur...", Tooltip: "Apply a gaussian blur", Sensitive: true},
		{Name: "filters-blur-menu", Label: "_Blur", Sensitive: true},
		{Name: "filters-motion-blur-linear", Label: "_Linear Motion Blur...", Sensitive: true},
		{Name: "filters-unsharp-mask", Label: "_Unsharp Mask...", Tooltip: "The most widely useful method for sharpening", Sensitive: false},
	}})
	r.AddGroup(&domain.ActionGroup{Name: "select", Actions: []*domain.Action{
		{Name: "select-feather", Label: "Fea_ther...", Tooltip: "Blur the selection border", Sensitive: true},
		{Name: "select-popup", Label: "Select", Sensitive: true},
		{Name: "select-all", Label: "_All", Sensitive: true},
		{Name: "select-separator", Label: "", Sensitive: true},
	}})
	r.AddGroup(&domain.ActionGroup{Name: "context", Actions: []*domain.Action{
		{Name: "context-brush-radius-set", Label: "Set Brush Radius", Sensitive: true},
	}})
	r.AddGroup(&domain.ActionGroup{Name: "plug-in", Actions: []*domain.Action{
		{Name: "plug-in-recent-01", Label: "Re-run Blur", Sensitive: true},
	}})
	r.AddGroup(&domain.ActionGroup{Name: "view", Actions: []*domain.Action{
		{Name: "view-show-grid", Label: "Show _Grid", Toggle: true, Active: true, Sensitive: true},
		{Name: "view-show-guides", Label: "Show _Guides", Toggle: true, Sensitive: true},
	}})
	return r
}

func entryNames(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Action.Name)
	}
	return out
}

func sections(entries []Entry) []int {
	var out []int
	for _, e := range entries {
		out = append(out, e.Section)
	}
	return out
}

func newAggregator(r *registry.Registry, h *history.History, showUnavailable bool) *Aggregator {
	var recent Recent
	if h != nil {
		recent = h
	}
	return NewAggregator(r, recent, func() bool { return showUnavailable })
}

func TestSearchRanksBySection(t *testing.T) {
	a := newAggregator(testRegistry(), nil, false)

	entries := a.Search(kw("blur"))

	assert.Equal(t, []string{
		"filters-gaussian-blur",
		"filters-motion-blur-linear",
		"select-feather",
	}, entryNames(entries))
	assert.Equal(t, []int{SectionSubstring, SectionSubstring, SectionTooltip}, sections(entries))
}

func TestSearchSkipsStructuralNames(t *testing.T) {
	a := newAggregator(testRegistry(), nil, true)

	for _, e := range a.Search(nil) {
		assert.NotEqual(t, "filters-blur-menu", e.Action.Name)
		assert.NotEqual(t, "select-popup", e.Action.Name)
		assert.NotEqual(t, "context-brush-radius-set", e.Action.Name)
		assert.NotEqual(t, "plug-in-recent-01", e.Action.Name)
	}
}

func TestSearchInsensitiveActions(t *testing.T) {
	hidden := newAggregator(testRegistry(), nil, false).Search(kw("unsharp"))
	assert.Empty(t, hidden)

	shown := newAggregator(testRegistry(), nil, true).Search(kw("unsharp"))
	require.Len(t, shown, 1)
	assert.False(t, shown[0].Sensitive)
}

func TestSearchEmptyKeyword(t *testing.T) {
	a := newAggregator(testRegistry(), nil, true)
	assert.Empty(t, a.Search(kw("")))
}

func TestSearchShowAll(t *testing.T) {
	a := newAggregator(testRegistry(), nil, false)

	entries := a.Search(nil)

	// registry order, names sorted within a group, empty labels dropped
	assert.Equal(t, []string{
		"filters-gaussian-blur",
		"filters-motion-blur-linear",
		"select-all",
		"select-feather",
		"view-show-grid",
		"view-show-guides",
	}, entryNames(entries))
	for _, e := range entries {
		assert.Equal(t, SectionHistory, e.Section)
	}
}

func TestSearchHistoryFirstWithoutDuplicates(t *testing.T) {
	r := testRegistry()
	h := history.New(history.NewMemoryStore(10), r)
	h.Record(r.Lookup("filters-motion-blur-linear"))
	h.Record(r.Lookup("filters-unsharp-mask"))

	entries := newAggregator(r, h, false).Search(kw("blur"))

	assert.Equal(t, []string{
		"filters-motion-blur-linear",
		"filters-gaussian-blur",
		"select-feather",
	}, entryNames(entries))
	assert.Equal(t, []int{SectionHistory, SectionSubstring, SectionTooltip}, sections(entries))
}

func TestSearchStableWithinSection(t *testing.T) {
	a := newAggregator(testRegistry(), nil, false)

	entries := a.Search(kw("sg"))

	// both "Show Grid" and "Show Guides" match the initials; sorted by name
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"view-show-grid", "view-show-guides"}, entryNames(entries))
	assert.Equal(t, []int{SectionPrefix, SectionPrefix}, sections(entries))
}

func TestEntryToggleIcons(t *testing.T) {
	r := testRegistry()

	on, ok := NewEntry(r.Lookup("view-show-grid"), SectionPrefix)
	require.True(t, ok)
	assert.Equal(t, IconToggleOn, on.Icon)
	assert.Equal(t, "Show Grid", on.Label)

	off, ok := NewEntry(r.Lookup("view-show-guides"), SectionPrefix)
	require.True(t, ok)
	assert.Equal(t, IconToggleOff, off.Icon)

	_, ok = NewEntry(r.Lookup("select-separator"), SectionPrefix)
	assert.False(t, ok)
}

func TestResultListInsertIsStable(t *testing.T) {
	var l ResultList
	for i, s := range []int{4, 1, 2, 1, 0, 4, 2} {
		l.Insert(Entry{Section: s, Label: string(rune('a' + i))})
	}

	var got []string
	for _, e := range l.Entries() {
		got = append(got, e.Label)
	}
	assert.Equal(t, []string{"e", "b", "d", "c", "g", "a", "f"}, got)
}
