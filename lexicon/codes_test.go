package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryCode(t *testing.T) {
	tests := map[string]string{
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
		"xyz": "en",
		"":    "en",
		"FRA": "en",
	}
	for in, want := range tests {
		assert.Equal(t, want, CountryCode(in), "CountryCode(%q)", in)
	}
}

func TestWordnetLanguageCode(t *testing.T) {
	tests := map[string]string{
		"fr": "fra",
		"es": "spa",
		"it": "ita",
		"nl": "nld",
		"pt": "por",
		"de": "ger",
		"en": "eng",
		"ja": "eng",
		"":   "eng",
	}
	for in, want := range tests {
		assert.Equal(t, want, WordnetLanguageCode(in), "WordnetLanguageCode(%q)", in)
	}
}

func TestWordnetLanguageDescription(t *testing.T) {
	tests := map[string]string{
		"fra": "french",
		"spa": "spanish",
		"ita": "italian",
		"nld": "dutch",
		"por": "portuguese",
		"ger": "german",
		"eng": "english",
		"deu": "english",
	}
	for in, want := range tests {
		assert.Equal(t, want, WordnetLanguageDescription(in), "WordnetLanguageDescription(%q)", in)
	}
}

func TestSpacyModelName(t *testing.T) {
	assert.Equal(t, "de_core_news_lg", SpacyModelName("de"))
	assert.Equal(t, "en_core_web_sm", SpacyModelName("en"))
	assert.Equal(t, "en_core_web_sm", SpacyModelName("fr"))
	assert.Equal(t, DefaultSpacyModel, SpacyModelName(""))
}

func TestCodeTablesRoundTrip(t *testing.T) {
	for two, three := range wordnetLanguageCodes {
		assert.Equal(t, two, CountryCode(three), "CountryCode(WordnetLanguageCode(%q))", two)
		if three != "eng" {
			assert.NotEqual(t, DefaultWordnetDescription, WordnetLanguageDescription(three), "description of %q", three)
		}
	}
}

func TestBaseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"de", "de"},
		{"de-AT", "de"},
		{"en-GB", "en"},
		{"pt_BR", "pt"},
		{" fr ", "fr"},
		{"not a tag!", "not a tag!"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, BaseLanguage(tt.in))
		})
	}
}
