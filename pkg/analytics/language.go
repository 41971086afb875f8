package analytics

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kljensen/snowball"
	"github.com/pemistahl/lingua-go"
)

// Language selects the language-specific stopword list.
type Language string

const (
	LanguageAuto    Language = "auto"
	LanguageEnglish Language = "english"
	LanguageGerman  Language = "german"
)

// ParseLanguage resolves a config/CLI language name. Empty means English.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case "", LanguageEnglish, "en":
		return LanguageEnglish, nil
	case LanguageGerman, "de":
		return LanguageGerman, nil
	case LanguageAuto:
		return LanguageAuto, nil
	}
	return "", fmt.Errorf("unsupported language %q (use: auto, english, german)", s)
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.German).
			Build()
	})
	return detector
}

// DetectLanguage guesses the language of text among the supported ones.
// Empty or ambiguous text falls back to English.
func DetectLanguage(text string) Language {
	if strings.TrimSpace(text) == "" {
		return LanguageEnglish
	}
	lang, ok := languageDetector().DetectLanguageOf(text)
	if !ok {
		return LanguageEnglish
	}
	if lang == lingua.German {
		return LanguageGerman
	}
	return LanguageEnglish
}

// stem reduces each token to its Snowball stem. Tokens the stemmer cannot
// handle (unsupported language) are kept unchanged.
func stem(tokens []string, lang Language) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		s, err := snowball.Stem(tok, string(lang), false)
		if err != nil || s == "" {
			out[i] = tok
			continue
		}
		out[i] = s
	}
	return out
}
