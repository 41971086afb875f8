// Package analytics turns diary comments into a bigram frequency table.
//
// The pipeline is: concatenate and lowercase, tokenize on word boundaries,
// optionally stem, form bigrams, drop stopwords, count.
package analytics

import (
	"sort"

	"github.com/dtnitsch/daily-ratings/models"
)

// Options configures the pipeline. The zero value analyzes English text,
// matching stopwords against whole bigram phrases.
type Options struct {
	ExtraStopwords []string
	Language       Language
	Stem           bool

	// PerTokenStopwords drops stopword tokens before bigrams are formed.
	// Off by default: stopwords are then compared against the full
	// "w1 w2" phrase, so single-word entries rarely remove anything.
	PerTokenStopwords bool
}

type Analytics struct {
	opts Options
}

func New(opts Options) *Analytics {
	return &Analytics{opts: opts}
}

// Result is the output of one analysis run.
type Result struct {
	Language    Language
	Tokens      int
	Frequencies map[string]int
}

// Analyze runs the full pipeline over comments. An empty input (or input
// with no word tokens) returns an empty, non-nil table.
func (a *Analytics) Analyze(comments []string) Result {
	text := Normalize(comments)

	lang := a.opts.Language
	switch lang {
	case LanguageAuto:
		lang = DetectLanguage(text)
	case "":
		lang = LanguageEnglish
	}

	tokens := Tokenize(text)
	if a.opts.Stem {
		tokens = stem(tokens, lang)
	}

	stop := BuildStopwords(lang, a.opts.ExtraStopwords)
	if a.opts.PerTokenStopwords {
		kept := tokens[:0:0]
		for _, tok := range tokens {
			if !stop.Contains(tok) {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}

	return Result{
		Language:    lang,
		Tokens:      len(tokens),
		Frequencies: CountPhrases(Bigrams(tokens), stop),
	}
}

// CountPhrases counts each phrase, skipping phrases that exactly equal a
// stopword entry.
func CountPhrases(phrases []string, stop StopwordSet) map[string]int {
	frequencies := make(map[string]int)
	for _, p := range phrases {
		if _, skip := stop[p]; skip {
			continue
		}
		frequencies[p]++
	}
	return frequencies
}

// BigramFrequency analyzes English comments with the default phrase-match
// stopword policy.
func BigramFrequency(comments []string, extraStopwords []string) map[string]int {
	return New(Options{ExtraStopwords: extraStopwords}).Analyze(comments).Frequencies
}

// TopBigrams ranks a frequency table by count descending, then phrase
// ascending. n <= 0 returns every row.
func TopBigrams(frequencies map[string]int, n int) []models.BigramCount {
	counts := make([]models.BigramCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, models.BigramCount{Phrase: k, Count: v})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Phrase < counts[j].Phrase
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
