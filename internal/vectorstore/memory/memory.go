package memory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"

	"countvec/internal/domain"
)

// Storage is a simple in-memory store of count rows using brute-force
// cosine similarity.
type Storage struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float64
	norms     []float64
	documents []domain.Document
}

var _ domain.SimilarityStore = (*Storage)(nil)

func NewStorage() *Storage { return &Storage{} }

// Init resets the store for rows of the given width. A zero width is
// valid: it is what an all-empty corpus produces.
func (s *Storage) Init(dimension int) error {
	if dimension < 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.vectors = nil
	s.norms = nil
	s.documents = nil
	return nil
}

func (s *Storage) Upsert(documents []domain.Document, rows [][]int) error {
	if len(documents) != len(rows) {
		return errors.New("documents and rows length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rows {
		if len(r) != s.dimension {
			return errors.New("row dimension mismatch")
		}
	}
	for _, r := range rows {
		v := make([]float64, len(r))
		for j, c := range r {
			v[j] = float64(c)
		}
		s.vectors = append(s.vectors, v)
		s.norms = append(s.norms, floats.Norm(v, 2))
	}
	s.documents = append(s.documents, documents...)
	return nil
}

// Similar returns the topK documents closest to the one stored at index,
// excluding itself. Documents with no tokens score 0.
func (s *Storage) Similar(index int, topK int) ([]domain.SimilarResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.vectors) {
		return nil, fmt.Errorf("document index %d out of range [0, %d)", index, len(s.vectors))
	}
	if topK <= 0 {
		topK = 5
	}
	idxs := make([]int, 0, len(s.vectors)-1)
	scores := make([]float64, len(s.vectors))
	for i := range s.vectors {
		if i == index {
			continue
		}
		scores[i] = s.cosine(index, i)
		idxs = append(idxs, i)
	}
	sort.SliceStable(idxs, func(a, b int) bool { return scores[idxs[a]] > scores[idxs[b]] })
	if topK > len(idxs) {
		topK = len(idxs)
	}
	results := make([]domain.SimilarResult, 0, topK)
	for _, j := range idxs[:topK] {
		results = append(results, domain.SimilarResult{Document: s.documents[j], Index: j, Score: scores[j]})
	}
	return results, nil
}

func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vectors = nil
	s.norms = nil
	s.documents = nil
	return nil
}

// Len returns the number of stored rows.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

func (s *Storage) cosine(a, b int) float64 {
	if s.norms[a] == 0 || s.norms[b] == 0 {
		return 0
	}
	return floats.Dot(s.vectors[a], s.vectors[b]) / (s.norms[a] * s.norms[b])
}
