package textnorm

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Normalizer turns free text into a canonical token sequence: lower-cased,
// purely alphabetic, stop-word-free, lemmatized. Downstream scoring depends
// on the pipeline order being reproducible.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// New creates a Normalizer backed by the English lemma dictionary.
func New() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemma dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lemmatizer}, nil
}

// Normalize tokenizes text and returns the canonical token sequence.
// It never fails: empty or non-text input yields an empty slice. Ordering is
// preserved and duplicates are kept.
func (n *Normalizer) Normalize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	for _, raw := range tokenize(strings.ToLower(text)) {
		if !isAlphabetic(raw) {
			continue
		}
		if stopWords[raw] {
			continue
		}
		tokens = append(tokens, n.lemmatizer.Lemma(raw))
	}
	return tokens
}

// NormalizeJoined returns the normalized token sequence as a single
// space-separated string.
func (n *Normalizer) NormalizeJoined(text string) string {
	return strings.Join(n.Normalize(text), " ")
}

// TokenSet returns the deduplicated set of normalized tokens.
func (n *Normalizer) TokenSet(text string) map[string]struct{} {
	tokens := n.Normalize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// tokenize splits text into maximal runs of letters and digits. Mixed
// alphanumeric tokens survive tokenization and are rejected by the
// alphabetic filter afterwards.
func tokenize(text string) []string {
	var (
		tokens []string
		word   strings.Builder
	)
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}
