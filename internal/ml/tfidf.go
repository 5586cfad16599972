package ml

import (
	"errors"
	"math"
	"strings"
	"unicode"

	"github.com/Pratikmehata/Sentiment-app/internal/domain"
)

// TFIDF is a fitted term frequency-inverse document frequency vectorizer.
// Vocabulary maps a term to its feature index; IDF holds one weight per
// feature index. The zero value is unusable; instances come from a
// serialized artifact.
type TFIDF struct {
	Vocabulary  map[string]int
	IDF         []float64
	SublinearTF bool
}

// FeatureCount returns the size of the fitted vocabulary.
func (t *TFIDF) FeatureCount() int {
	return len(t.IDF)
}

// Transform tokenizes text, weights known terms by tf*idf and returns the
// L2-normalized sparse vector. Terms outside the vocabulary are ignored;
// text with no known terms yields an empty vector.
func (t *TFIDF) Transform(text string) (domain.FeatureVector, error) {
	if len(t.Vocabulary) == 0 || len(t.IDF) == 0 {
		return nil, errors.New("vectorizer is not fitted")
	}

	counts := make(map[int]float64)
	for _, token := range tokenize(text) {
		if idx, ok := t.Vocabulary[token]; ok {
			counts[idx]++
		}
	}

	features := make(domain.FeatureVector, len(counts))
	var norm float64
	for idx, tf := range counts {
		if idx < 0 || idx >= len(t.IDF) {
			return nil, errors.New("vocabulary index out of range")
		}
		if t.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		w := tf * t.IDF[idx]
		features[idx] = w
		norm += w * w
	}

	// L2 normalization, matching the fitted transform's training-time setup
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range features {
			features[idx] /= norm
		}
	}

	return features, nil
}

// tokenize lowercases the text and splits it into runs of letters and
// digits, keeping only tokens of two or more runes.
func tokenize(text string) []string {
	text = strings.ToLower(text)

	var tokens []string
	var current []rune
	flush := func() {
		if len(current) >= 2 {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current = append(current, r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}
