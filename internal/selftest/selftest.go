package selftest

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"countvec/internal/vectorizer"
)

// Case is one documented usage example of the count vectorizer.
type Case struct {
	Name     string
	Corpus   []string
	Features []string
	Matrix   [][]int
}

// Result counts the outcome of a self-test run.
type Result struct {
	Attempted int
	Failed    int
}

// ErrFailed is returned by Run when at least one case did not match.
var ErrFailed = errors.New("self-test failed")

// Cases returns the documented examples checked by Run.
func Cases() []Case {
	return []Case{
		{
			Name: "recipes",
			Corpus: []string{
				"Crock Pot Pasta Never boil pasta again",
				"Pasta Pomodoro Fresh ingredients Parmesan to taste",
			},
			Features: []string{"again", "boil", "crock", "fresh", "ingredients", "never", "parmesan", "pasta", "pomodoro", "pot", "taste", "to"},
			Matrix: [][]int{
				{1, 1, 1, 0, 0, 1, 0, 2, 0, 1, 0, 0},
				{0, 0, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1},
			},
		},
		{Name: "empty corpus", Corpus: []string{}, Features: []string{}, Matrix: [][]int{}},
		{Name: "empty document", Corpus: []string{""}, Features: []string{}, Matrix: [][]int{{}}},
		{Name: "repeated word", Corpus: []string{"a a a"}, Features: []string{"a"}, Matrix: [][]int{{3}}},
		{
			Name:     "case folding",
			Corpus:   []string{"Fresh PASTA", "fresh pasta"},
			Features: []string{"fresh", "pasta"},
			Matrix:   [][]int{{1, 1}, {1, 1}},
		},
		{
			Name:     "attached punctuation",
			Corpus:   []string{"to taste.", "taste"},
			Features: []string{"taste", "taste.", "to"},
			Matrix:   [][]int{{0, 1, 1}, {1, 0, 0}},
		},
	}
}

// Run checks every documented case against a fresh vectorizer. With
// verbose set it prints each attempt and its outcome; a summary line is
// always written.
func Run(w io.Writer, verbose bool) (Result, error) {
	var res Result
	for _, c := range Cases() {
		res.Attempted++
		v := vectorizer.New()
		matrix, err := v.FitTransform(c.Corpus)
		names := v.FeatureNames()
		if verbose {
			fmt.Fprintf(w, "Trying:\n    fit_transform(%q)\nExpecting:\n    %v\n    %v\n", c.Corpus, c.Features, c.Matrix)
		}
		ok := err == nil && reflect.DeepEqual(names, c.Features) && reflect.DeepEqual(matrix, c.Matrix)
		if ok {
			if verbose {
				fmt.Fprintln(w, "ok")
			}
			continue
		}
		res.Failed++
		fmt.Fprintf(w, "Failed example %q:\n", c.Name)
		if err != nil {
			fmt.Fprintf(w, "    error: %v\n", err)
		} else {
			fmt.Fprintf(w, "Got:\n    %v\n    %v\n", names, matrix)
		}
	}
	fmt.Fprintf(w, "%d passed and %d failed.\n", res.Attempted-res.Failed, res.Failed)
	if res.Failed > 0 {
		return res, fmt.Errorf("%w: %d of %d examples", ErrFailed, res.Failed, res.Attempted)
	}
	fmt.Fprintln(w, "Test passed.")
	return res, nil
}
