package language

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"actionsearch/internal/domain"
)

func TestDisplayTranslatorSelfName(t *testing.T) {
	tr := NewDisplayTranslator("en")

	name, ok := tr.Translate("German", "de")
	require.True(t, ok)
	assert.Equal(t, "Deutsch", name)

	name, ok = tr.Translate("French", "fr")
	require.True(t, ok)
	assert.Equal(t, "français", name)
}

func TestDisplayTranslatorRegionalNames(t *testing.T) {
	tr := NewDisplayTranslator("en")

	names := map[string]bool{}
	for _, code := range []string{"zh_CN", "zh_TW", "zh_HK"} {
		name, ok := tr.Translate("Chinese", code)
		require.True(t, ok, code)
		assert.Contains(t, name, "(", code)
		names[name] = true
	}
	assert.Len(t, names, 3)
}

func TestDisplayTranslatorInvalidLocale(t *testing.T) {
	tr := NewDisplayTranslator("en")

	name, ok := tr.Translate("Nonsense", "not a code!")
	assert.False(t, ok)
	assert.Equal(t, "Nonsense", name)
}

func TestEnglishIsNeverTranslated(t *testing.T) {
	doc := `<iso_639_entries>
	<iso_639_entry iso_639_1_code="en" name="English"/>
	<iso_639_entry iso_639_1_code="de" name="German"/>
</iso_639_entries>`

	store, err := parse(t, doc, NewDisplayTranslator("fr"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Language{
		{Name: "English", Code: "en"},
		{Name: "Deutsch", Code: "de"},
	}, store.Languages())
}

func TestCatalogTranslatorFallback(t *testing.T) {
	tr := &CatalogTranslator{
		Ambient: "fr",
		Messages: map[string]map[string]string{
			"de": {"German": "Deutsch"},
			"fr": {"German": "allemand", "Italian": "italien"},
		},
	}

	name, ok := tr.Translate("German", "de")
	assert.True(t, ok)
	assert.Equal(t, "Deutsch", name)

	name, ok = tr.Translate("Italian", "it")
	assert.True(t, ok)
	assert.Equal(t, "italien", name)

	name, ok = tr.Translate("Welsh", "cy")
	assert.False(t, ok)
	assert.Equal(t, "Welsh", name)
}

func TestLoadCatalogTranslator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "translations.yaml")
	require.NoError(t, os.WriteFile(path, []byte("de:\n  German: Deutsch\n  Welsh: Walisisch\n"), 0o644))

	catalog, err := LoadCatalogTranslator(path, "de")
	require.NoError(t, err)

	tr := Translators{catalog, NewDisplayTranslator("en")}

	name, ok := tr.Translate("Welsh", "cy")
	assert.True(t, ok)
	assert.Equal(t, "Walisisch", name, "catalog wins through the ambient locale")

	name, ok = tr.Translate("French", "fr")
	assert.True(t, ok)
	assert.Equal(t, "français", name)
}

func TestLoadCatalogTranslatorErrors(t *testing.T) {
	_, err := LoadCatalogTranslator(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("de: [not, a, map]\n"), 0o644))
	_, err = LoadCatalogTranslator(path, "")
	assert.Error(t, err)
}

func TestSortedUsesCollation(t *testing.T) {
	store := NewMemoryStore()
	for _, name := range []string{"English", "čeština", "Deutsch", "dansk"} {
		store.Add(name, name[:2])
	}

	var names []string
	for _, l := range store.Sorted("en") {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"čeština", "dansk", "Deutsch", "English"}, names)

	// insertion order is untouched
	assert.Equal(t, "English", store.Languages()[0].Name)
}
