package domain

// Document represents a single corpus entry loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// TermStat is one line of the corpus term report.
type TermStat struct {
	Term     string
	Total    int
	DocCount int
}

// SimilarResult is a document with its similarity to a reference document.
type SimilarResult struct {
	Document Document
	Index    int
	Score    float64
}

// Vectorizer turns an ordered corpus into a count matrix aligned to a
// vocabulary that it keeps until the next fit.
type Vectorizer interface {
	FitTransform(corpus []string) ([][]int, error)
	FeatureNames() []string
}

// Splitter divides a loaded file into one or more documents.
type Splitter interface {
	Split(document Document) ([]Document, error)
}

// SimilarityStore keeps count rows and answers nearest-document queries.
type SimilarityStore interface {
	Init(dimension int) error
	Upsert(documents []Document, rows [][]int) error
	Similar(index int, topK int) ([]SimilarResult, error)
	Clear() error
}

// Summarizer reports the most frequent terms of a fitted corpus.
type Summarizer interface {
	Summarize(featureNames []string, matrix [][]int, topN int) ([]TermStat, error)
}

// VectorizeService defines the operations exposed by the application core.
type VectorizeService interface {
	Vectorize(paths []string) ([]TermStat, error)
	FeatureNames() []string
	Matrix() [][]int
	Documents() []Document
	Similar(index int, topK int) ([]SimilarResult, error)
}
