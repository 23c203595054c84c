package language

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// Translator localizes an English language name into the given locale. It
// reports false when it has no translation.
type Translator interface {
	Translate(name, locale string) (string, bool)
}

// DisplayTranslator names languages with the CLDR data bundled in
// golang.org/x/text. A language is named in itself when possible and in
// the ambient locale otherwise.
type DisplayTranslator struct {
	ambient language.Tag
}

// NewDisplayTranslator creates a translator falling back to ambient.
// An unparsable ambient locale disables the fallback.
func NewDisplayTranslator(ambient string) *DisplayTranslator {
	tag, err := language.Parse(ambient)
	if err != nil {
		tag = language.Und
	}
	return &DisplayTranslator{ambient: tag}
}

func (t *DisplayTranslator) Translate(name, locale string) (string, bool) {
	tag, err := language.Parse(locale)
	if err != nil {
		return name, false
	}

	if s, ok := regionalName(tag); ok {
		return s, true
	}
	if s := display.Self.Name(tag); s != "" {
		return s, true
	}
	if t.ambient != language.Und {
		if s := display.Tags(t.ambient).Name(tag); s != "" {
			return s, true
		}
	}
	return name, false
}

// regionalName names a tag with an explicit region as its base language
// followed by the region, so zh_TW and zh_HK stay apart.
func regionalName(tag language.Tag) (string, bool) {
	region, conf := tag.Region()
	if conf != language.Exact {
		return "", false
	}
	base, _ := tag.Base()
	lang := display.Self.Name(language.Make(base.String()))
	if lang == "" {
		return "", false
	}
	place := display.Regions(tag).Name(region)
	if place == "" {
		place = region.String()
	}
	return fmt.Sprintf("%s (%s)", lang, place), true
}

// CatalogTranslator looks names up in a message catalog keyed by locale and
// English name, as shipped with the iso-codes translations.
type CatalogTranslator struct {
	Messages map[string]map[string]string
	Ambient  string
}

func (t *CatalogTranslator) Translate(name, locale string) (string, bool) {
	for _, l := range []string{locale, t.Ambient} {
		if l == "" {
			continue
		}
		if s, ok := t.Messages[l][name]; ok && s != "" {
			return s, true
		}
	}
	return name, false
}

// LoadCatalogTranslator reads a YAML file mapping locales to English names
// and their translations:
//
//	de:
//	  German: Deutsch
func LoadCatalogTranslator(path, ambient string) (*CatalogTranslator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations: %w", err)
	}

	var messages map[string]map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse translations %s: %w", path, err)
	}
	return &CatalogTranslator{Messages: messages, Ambient: ambient}, nil
}

// Translators tries each translator in turn
type Translators []Translator

func (ts Translators) Translate(name, locale string) (string, bool) {
	for _, t := range ts {
		if s, ok := t.Translate(name, locale); ok {
			return s, true
		}
	}
	return name, false
}
