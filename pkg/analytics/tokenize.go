package analytics

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// Normalize joins the non-empty comments with a single space and lowercases
// the result. No boundary marker is inserted, so the last token of one
// comment and the first token of the next become adjacent.
func Normalize(comments []string) string {
	parts := make([]string, 0, len(comments))
	for _, c := range comments {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Tokenize splits text on Unicode (UAX #29) word boundaries and keeps only
// segments made entirely of letters and digits. A possessive "'s" is cut
// first, so "mom's" yields "mom". Punctuation, whitespace and other mixed
// segments such as "don't" or "3.5" are dropped.
func Tokenize(text string) []string {
	var tokens []string
	seg := words.FromString(text)
	for seg.Next() {
		tok := trimPossessive(seg.Value())
		if isAlnum(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func trimPossessive(tok string) string {
	for _, suffix := range []string{"'s", "'S", "\u2019s", "\u2019S"} {
		if len(tok) > len(suffix) && strings.HasSuffix(tok, suffix) {
			return strings.TrimSuffix(tok, suffix)
		}
	}
	return tok
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// NGrams slides a window of width n over tokens and returns the space-joined
// windows in token order. Fewer than n tokens (or n < 1) yields nil.
func NGrams(tokens []string, n int) []string {
	if n < 1 || len(tokens) < n {
		return nil
	}
	out := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+n], " "))
	}
	return out
}

// Bigrams is NGrams with n = 2.
func Bigrams(tokens []string) []string {
	return NGrams(tokens, 2)
}
