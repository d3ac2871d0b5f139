package render

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys are the English texts. English therefore needs no catalog
// entries: a key without a translation is printed as-is.
var translations = map[language.Tag]map[string]string{
	language.German: {
		"Grids":                      "Tabellen",
		"Loading…":                   "Wird geladen…",
		"Previous":                   "Zurück",
		"Next":                       "Weiter",
		"Page %d of %d":              "Seite %d von %d",
		"No entries found":           "Keine Einträge gefunden",
		"Add new item":               "Neuen Eintrag hinzufügen",
		"Delete":                     "Löschen",
		"Edit":                       "Bearbeiten",
		"Could not delete the item:": "Der Eintrag konnte nicht gelöscht werden:",
		"The item was deleted.":      "Der Eintrag wurde gelöscht.",
		"Could not save the item:":   "Der Eintrag konnte nicht gespeichert werden:",
		"Could not load the data.":   "Die Daten konnten nicht geladen werden.",
		"Retry":                      "Erneut versuchen",
	},
}

var supportedLanguages = []language.Tag{language.English, language.German}

// CatalogTranslator prints messages through an x/text catalog for a single
// language.
type CatalogTranslator struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalogTranslator picks the supported language closest to lang
// ("de-AT" resolves to German, anything unmatched to English).
func NewCatalogTranslator(lang string) (*CatalogTranslator, error) {
	requested, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnsupportedLanguage, lang, err)
	}

	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("error building message catalog: %w", err)
			}
		}
	}

	_, idx, _ := language.NewMatcher(supportedLanguages).Match(requested)
	tag := supportedLanguages[idx]

	return &CatalogTranslator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

func (t *CatalogTranslator) Translate(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

func (t *CatalogTranslator) Language() language.Tag {
	return t.tag
}
