package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"countvec/internal/corpus"
	"countvec/internal/domain"
)

var _ domain.VectorizeService = (*VectorizeServiceImpl)(nil)

type VectorizeServiceImpl struct {
	splitter   domain.Splitter
	vectorizer domain.Vectorizer
	store      domain.SimilarityStore
	summarizer domain.Summarizer
	topTerms   int
	log        zerolog.Logger

	documents    []domain.Document
	featureNames []string
	matrix       [][]int
}

func NewVectorizeService(splitter domain.Splitter, vectorizer domain.Vectorizer, store domain.SimilarityStore, summarizer domain.Summarizer, topTerms int, log zerolog.Logger) *VectorizeServiceImpl {
	return &VectorizeServiceImpl{
		splitter:   splitter,
		vectorizer: vectorizer,
		store:      store,
		summarizer: summarizer,
		topTerms:   topTerms,
		log:        log,
	}
}

// Vectorize loads the corpus named by paths, fits the vectorizer on it and
// indexes the rows for similarity lookups. It returns the term report.
func (s *VectorizeServiceImpl) Vectorize(paths []string) ([]domain.TermStat, error) {
	start := time.Now()
	documents, err := corpus.Load(paths, s.splitter)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	s.log.Debug().Int("documents", len(documents)).Strs("inputs", paths).Msg("corpus loaded")

	matrix, err := s.vectorizer.FitTransform(corpus.Texts(documents))
	if err != nil {
		return nil, fmt.Errorf("vectorize: %w", err)
	}
	names := s.vectorizer.FeatureNames()
	s.log.Debug().Int("vocabulary", len(names)).Msg("vocabulary built")

	if err := s.store.Init(len(names)); err != nil {
		return nil, err
	}
	if err := s.store.Upsert(documents, matrix); err != nil {
		return nil, err
	}
	stats, err := s.summarizer.Summarize(names, matrix, s.topTerms)
	if err != nil {
		return nil, err
	}

	s.documents = documents
	s.featureNames = names
	s.matrix = matrix
	s.log.Info().
		Int("documents", len(documents)).
		Int("vocabulary", len(names)).
		Dur("took", time.Since(start)).
		Msg("corpus vectorized")
	return stats, nil
}

func (s *VectorizeServiceImpl) FeatureNames() []string { return s.featureNames }

func (s *VectorizeServiceImpl) Matrix() [][]int { return s.matrix }

func (s *VectorizeServiceImpl) Documents() []domain.Document { return s.documents }

func (s *VectorizeServiceImpl) Similar(index int, topK int) ([]domain.SimilarResult, error) {
	return s.store.Similar(index, topK)
}
