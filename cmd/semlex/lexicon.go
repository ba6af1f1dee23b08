package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/semlex/lexicon"
)

// lookupTables maps a table name to its lookup function.
var lookupTables = map[string]func(string) string{
	"country":      lexicon.CountryCode,
	"wordnet-lang": func(code string) string { return lexicon.WordnetLanguageCode(lexicon.BaseLanguage(code)) },
	"wordnet-desc": lexicon.WordnetLanguageDescription,
	"spacy-model":  func(code string) string { return lexicon.SpacyModelName(lexicon.BaseLanguage(code)) },
	"spacy-pos":    func(tag string) string { return lexicon.SpacyToWordnetPOS(tag).String() },
	"pos":          func(tag string) string { return lexicon.WordnetPOS(tag).String() },
}

func tableNames() []string {
	names := make([]string, 0, len(lookupTables))
	for name := range lookupTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize WORD...",
		Short: "URL-decode words and strip surrounding punctuation",
		Long: `Sanitize prints one line per WORD: the word URL-decoded with at most
one leading and one trailing punctuation token removed. Words that
sanitize to nothing produce an empty line.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, word := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), lexicon.SanitizeWord(word)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup TABLE CODE",
		Short: "Look up a language code or part-of-speech tag",
		Long: `Lookup resolves CODE in one of the tables:

  country       three-letter language code to two-letter code (fra -> fr)
  wordnet-lang  language tag to Open Multilingual Wordnet code (de-AT -> ger)
  wordnet-desc  wordnet language code to its name (ger -> german)
  spacy-model   language tag to spaCy model name (de -> de_core_news_lg)
  spacy-pos     Universal POS tag to wordnet POS (NOUN -> n)
  pos           Penn Treebank tag to wordnet POS (VBD -> v)

Unknown codes resolve to the table default.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := lookupTables[args[0]]
			if !ok {
				return fmt.Errorf("unknown table %q (want one of %s)", args[0], strings.Join(tableNames(), ", "))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), fn(args[1]))
			return err
		},
	}
}
