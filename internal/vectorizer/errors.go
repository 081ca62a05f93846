package vectorizer

import "fmt"

// InvalidInputKind classifies input that is not a sequence of text.
const InvalidInputKind = "invalid_input"

// InvalidInputError reports a corpus element that cannot be treated as a
// document.
type InvalidInputError struct {
	Index  int
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: document %d: %s", InvalidInputKind, e.Index, e.Reason)
}

// Kind returns InvalidInputKind.
func (e *InvalidInputError) Kind() string { return InvalidInputKind }
