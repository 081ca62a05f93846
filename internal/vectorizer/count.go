package vectorizer

import (
	"sort"
	"unicode/utf8"
)

// CountVectorizer builds a sorted vocabulary from a corpus and counts
// every vocabulary term in every document.
//
// The zero value is ready to use. A CountVectorizer is not safe for
// concurrent use; callers must serialize FitTransform.
type CountVectorizer struct {
	featureNames []string
	vocabulary   map[string]int
	fitted       bool
}

// New creates an unfitted count vectorizer.
func New() *CountVectorizer {
	return &CountVectorizer{}
}

// FitTransform builds the vocabulary from corpus and returns the count
// matrix, one row per document in corpus order and one column per
// vocabulary term. The previous vocabulary is replaced, never merged.
//
// A document that is not valid UTF-8 fails the whole call with an
// *InvalidInputError; the vectorizer keeps its previous state.
func (v *CountVectorizer) FitTransform(corpus []string) ([][]int, error) {
	for i, text := range corpus {
		if !utf8.ValidString(text) {
			return nil, &InvalidInputError{Index: i, Reason: "document is not valid UTF-8"}
		}
	}

	tokenized := make([][]string, len(corpus))
	seen := make(map[string]struct{})
	for i, text := range corpus {
		tokens := Tokenize(text)
		tokenized[i] = tokens
		for _, tok := range tokens {
			seen[tok] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	// byte order equals code point order for valid UTF-8
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	for i, term := range terms {
		vocabulary[term] = i
	}

	matrix := make([][]int, len(corpus))
	for i, tokens := range tokenized {
		row := make([]int, len(terms))
		for _, tok := range tokens {
			row[vocabulary[tok]]++
		}
		matrix[i] = row
	}

	v.featureNames = terms
	v.vocabulary = vocabulary
	v.fitted = true
	return matrix, nil
}

// FeatureNames returns the vocabulary of the most recent FitTransform, or
// an empty slice if the vectorizer was never fitted.
func (v *CountVectorizer) FeatureNames() []string {
	out := make([]string, len(v.featureNames))
	copy(out, v.featureNames)
	return out
}

// Fitted reports whether FitTransform has completed at least once.
func (v *CountVectorizer) Fitted() bool { return v.fitted }

// Index returns the column of term in the current vocabulary.
func (v *CountVectorizer) Index(term string) (int, bool) {
	idx, ok := v.vocabulary[term]
	return idx, ok
}
