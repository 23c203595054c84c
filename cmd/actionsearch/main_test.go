package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	argv := append([]string{"actionsearch", "--config", configPath, "--log-file", ""}, args...)
	err := app.Run(argv)
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSearchCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.toml")

	out, err := run(t, cfg, "search", "gaussian")

	require.NoError(t, err)
	assert.Contains(t, out, "Gaussian Blur...")
	assert.Contains(t, out, "filters-gaussian-blur")
}

func TestSearchCommandRequiresKeyword(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.toml")

	_, err := run(t, cfg, "search")

	assert.Error(t, err)
}

func TestSearchCommandUnavailable(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "missing.toml")

	out, err := run(t, cfg, "search", "redo")
	require.NoError(t, err)
	assert.NotContains(t, out, "edit-redo")

	out, err = run(t, cfg, "search", "--show-unavailable", "redo")
	require.NoError(t, err)
	assert.Contains(t, out, "Redo (unavailable)")
}

func TestRunRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "[history]\npath = '"+filepath.Join(dir, "history")+"'\nsize = 10\n")

	out, err := run(t, cfg, "search", "undo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1 Undo"), out)

	out, err = run(t, cfg, "search", "--run", "undo")
	require.NoError(t, err)
	assert.Contains(t, out, "Ran Undo")

	out, err = run(t, cfg, "search", "undo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "0 Undo"), out)
	assert.Equal(t, 1, strings.Count(out, "edit-undo"))
}

func TestLanguagesCommand(t *testing.T) {
	dir := t.TempDir()
	doc := `<iso_639_entries>
	<iso_639_entry iso_639_2B_code="ger" iso_639_2T_code="deu" iso_639_1_code="de" name="German"/>
	<iso_639_entry iso_639_2B_code="chi" iso_639_2T_code="zho" iso_639_1_code="zh" name="Chinese"/>
	<iso_639_entry iso_639_2B_code="eng" iso_639_2T_code="eng" iso_639_1_code="en" name="English"/>
</iso_639_entries>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "iso_639.xml"), []byte(doc), 0o644))
	cfg := filepath.Join(t.TempDir(), "missing.toml")

	out, err := run(t, cfg, "languages", "--iso-codes-dir", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "Deutsch")
	assert.Contains(t, out, "English")
	for _, code := range []string{"zh_CN", "zh_TW", "zh_HK"} {
		assert.Contains(t, out, code)
	}
	assert.NotContains(t, out, "zh ")
	assert.Contains(t, out, "Loaded 5 languages from "+filepath.Join(dir, "iso_639.xml"))
}

func TestLanguagesCommandUsesConfiguredNames(t *testing.T) {
	dir := t.TempDir()
	doc := `<iso_639_entries>
	<iso_639_entry iso_639_1_code="pt" name="Portuguese"/>
	<iso_639_entry iso_639_1_code="cy" name="Welsh"/>
</iso_639_entries>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "iso_639.xml"), []byte(doc), 0o644))
	names := filepath.Join(t.TempDir(), "names.yaml")
	require.NoError(t, os.WriteFile(names, []byte("cy:\n  Welsh: Cymraeg (catalog)\n"), 0o644))
	cfg := writeConfig(t, "[languages]\ntranslations = '"+names+"'\n\n[languages.variants]\npt = ['pt_PT', 'pt_BR']\n")

	out, err := run(t, cfg, "languages", "--iso-codes-dir", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "Cymraeg (catalog)")
	assert.Contains(t, out, "pt_PT")
	assert.Contains(t, out, "pt_BR")
	assert.NotContains(t, out, "pt ")
}

func TestBrokenCatalogStillSearches(t *testing.T) {
	cfg := writeConfig(t, "[catalog]\npath = '"+filepath.Join(t.TempDir(), "missing.yaml")+"'\n")

	out, err := run(t, cfg, "search", "gaussian")

	require.NoError(t, err)
	assert.Contains(t, out, "filters-gaussian-blur")
	assert.Contains(t, out, "warning: Failed to load action catalog")
}

func TestLanguagesCommandMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "iso_639.xml"), []byte("<iso_639_entries>"), 0o644))
	cfg := filepath.Join(t.TempDir(), "missing.toml")

	_, err := run(t, cfg, "languages", "--iso-codes-dir", dir)

	assert.Error(t, err)
}
