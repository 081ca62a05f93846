package summarizer

import (
	"errors"
	"sort"

	"countvec/internal/domain"
	"countvec/internal/vectorizer"
)

// FrequencySummarizer ranks vocabulary terms by their total count in the corpus.
type FrequencySummarizer struct{}

// NewFrequencySummarizer creates a frequency-based term ranker.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{}
}

// Summarize returns up to topN terms ordered by total count, highest first.
// Ties keep vocabulary order. Terms that never occur are left out.
func (s *FrequencySummarizer) Summarize(featureNames []string, matrix [][]int, topN int) ([]domain.TermStat, error) {
	if topN <= 0 {
		topN = 10
	}
	for _, row := range matrix {
		if len(row) != len(featureNames) {
			return nil, errors.New("matrix row length does not match vocabulary size")
		}
	}
	totals := vectorizer.ColumnTotals(matrix, len(featureNames))
	df := vectorizer.DocumentFrequencies(matrix, len(featureNames))

	stats := make([]domain.TermStat, 0, len(featureNames))
	for j, term := range featureNames {
		if totals[j] == 0 {
			continue
		}
		stats = append(stats, domain.TermStat{Term: term, Total: totals[j], DocCount: df[j]})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Total > stats[j].Total })
	if topN < len(stats) {
		stats = stats[:topN]
	}
	return stats, nil
}
