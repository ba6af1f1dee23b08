package lexicon

import (
	"strings"

	"golang.org/x/text/language"
)

// Fallbacks returned for codes missing from the tables below.
const (
	DefaultCountryCode         = "en"
	DefaultWordnetLanguageCode = "eng"
	DefaultWordnetDescription  = "english"
	DefaultSpacyModel          = "en_core_web_sm"
)

// countryCodes maps three-letter language codes to two-letter ones.
var countryCodes = map[string]string{
	"fra": "fr",
	"spa": "es",
	"ita": "it",
	"nld": "nl",
	"por": "pt",
	"ger": "de",
	"eng": "en",
	"fas": "fa",
	"jpn": "ja",
	"pol": "pl",
	"tha": "th",
}

// wordnetLanguageCodes maps two-letter codes to the codes used by the
// Open Multilingual Wordnet.
var wordnetLanguageCodes = map[string]string{
	"fr": "fra",
	"es": "spa",
	"it": "ita",
	"nl": "nld",
	"pt": "por",
	"de": "ger",
	"en": "eng",
}

var wordnetDescriptions = map[string]string{
	"fra": "french",
	"spa": "spanish",
	"ita": "italian",
	"nld": "dutch",
	"por": "portuguese",
	"ger": "german",
	"eng": "english",
}

var spacyModels = map[string]string{
	"de": "de_core_news_lg",
}

// CountryCode maps a three-letter language code ("fra") to its two-letter
// form ("fr"). Unknown codes map to "en".
func CountryCode(lang string) string {
	return lookup(countryCodes, lang, DefaultCountryCode)
}

// WordnetLanguageCode maps a two-letter code ("de") to the wordnet language
// code ("ger"). Unknown codes map to "eng".
func WordnetLanguageCode(lang string) string {
	return lookup(wordnetLanguageCodes, lang, DefaultWordnetLanguageCode)
}

// WordnetLanguageDescription names the language of a wordnet language code.
// Unknown codes map to "english".
func WordnetLanguageDescription(lang string) string {
	return lookup(wordnetDescriptions, lang, DefaultWordnetDescription)
}

// SpacyModelName returns the spaCy pipeline for a two-letter code.
// Everything except German uses the small English model.
func SpacyModelName(lang string) string {
	return lookup(spacyModels, lang, DefaultSpacyModel)
}

func lookup(table map[string]string, key, fallback string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

// BaseLanguage reduces a BCP 47 tag to its primary language subtag in
// canonical form, so "de-AT" and "DE_de" both become "de". Input that does
// not parse is returned lower-cased.
func BaseLanguage(tag string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	t, err := language.Parse(normalized)
	if err != nil {
		return strings.ToLower(normalized)
	}
	base, _ := t.Base()
	return base.String()
}
