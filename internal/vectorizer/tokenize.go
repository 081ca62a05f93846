package vectorizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenize lowercases text and splits it on runs of Unicode white space.
// Punctuation stays attached to the word it touches.
//
// Lowercasing applies the full Unicode case mapping of the root locale, so
// the result does not depend on the environment (no Turkish dotless i and
// the like). Final sigma is handled contextually.
func Tokenize(text string) []string {
	// cases.Caser keeps per-call state and must not be shared
	lower := cases.Lower(language.Und).String(text)
	return strings.Fields(lower)
}
