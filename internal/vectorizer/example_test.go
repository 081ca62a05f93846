package vectorizer_test

import (
	"fmt"

	"countvec/internal/vectorizer"
)

func ExampleCountVectorizer_FitTransform() {
	corpus := []string{
		"Crock Pot Pasta Never boil pasta again",
		"Pasta Pomodoro Fresh ingredients Parmesan to taste",
	}
	v := vectorizer.New()
	matrix, err := v.FitTransform(corpus)
	if err != nil {
		panic(err)
	}
	fmt.Println(v.FeatureNames())
	fmt.Println(matrix)
	// Output:
	// [again boil crock fresh ingredients never parmesan pasta pomodoro pot taste to]
	// [[1 1 1 0 0 1 0 2 0 1 0 0] [0 0 0 1 1 0 1 1 1 0 1 1]]
}

func ExampleCountVectorizer_FeatureNames() {
	v := vectorizer.New()
	fmt.Println(len(v.FeatureNames()))
	_, _ = v.FitTransform([]string{"a a a"})
	fmt.Println(v.FeatureNames())
	// Output:
	// 0
	// [a]
}

func ExampleTokenize() {
	fmt.Printf("%q\n", vectorizer.Tokenize("  Salt to TASTE. "))
	// Output: ["salt" "to" "taste."]
}
