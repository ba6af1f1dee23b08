// Package lexicon holds the word-level helpers shared by the linguistic
// resource lookups: token sanitizing, language code tables and
// part-of-speech mappings.
package lexicon

import (
	"net/url"
	"strings"
)

// leadingTokens are tried in order; only the first match is stripped.
var leadingTokens = []string{
	"...", "'", "\"", "n'", "l'", ",", ".", "!", "?", "¿", ";", "_", "-",
	"`", "~", "<", ">", "%", "$", "#", "*", "(", ")", "+", "|", "@", "&", "^", "«", "»",
}

// trailingTokens are tried in order; only the first match is stripped.
var trailingTokens = []string{
	"...", "'", "\"", "'s", ",", ".", "!", "?", "¿", ";", "_", "-", "`",
	"~", "<", ">", "%", "$", "#", "*", "(", ")", "+", "|", "@", "&", "^", "«", "»",
}

// SanitizeWord URL-decodes a token and then strips at most one leading and
// at most one trailing punctuation token.
//
//	SanitizeWord("%27hello%27") == "hello"
//	SanitizeWord("l'amour,")    == "amour"
//	SanitizeWord("...")         == ""
func SanitizeWord(input string) string {
	result := unquote(input)

	for _, token := range leadingTokens {
		if strings.HasPrefix(result, token) {
			result = result[len(token):]
			break
		}
	}

	for _, token := range trailingTokens {
		if strings.HasSuffix(result, token) {
			result = result[:len(result)-len(token)]
			break
		}
	}

	return result
}

// SanitizeWords applies SanitizeWord to each token and drops the ones that
// end up empty.
func SanitizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if s := SanitizeWord(w); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// unquote percent-decodes s with query rules ('+' is a space). Malformed
// escapes are kept literally instead of failing the whole token, and bytes
// that do not decode to UTF-8 become U+FFFD.
func unquote(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return strings.ToValidUTF8(decoded, "\uFFFD")
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			sb.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			sb.WriteByte(c)
		}
	}
	return strings.ToValidUTF8(sb.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
