package service

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countvec/internal/chunker"
	"countvec/internal/corpus"
	"countvec/internal/logging"
	"countvec/internal/summarizer"
	"countvec/internal/vectorizer"
	"countvec/internal/vectorstore/memory"
)

func newService(splitter *chunker.LineSplitter, buf *bytes.Buffer) *VectorizeServiceImpl {
	return NewVectorizeService(splitter, vectorizer.New(), memory.NewStorage(), summarizer.NewFrequencySummarizer(), 3, logging.New("debug", buf))
}

func TestVectorize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "recipes.txt")
	content := "Crock Pot Pasta Never boil pasta again\nPasta Pomodoro Fresh ingredients Parmesan to taste\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var logs bytes.Buffer
	svc := newService(chunker.NewLineSplitter(), &logs)
	stats, err := svc.Vectorize([]string{path})
	require.NoError(t, err)

	assert.Equal(t, []string{"again", "boil", "crock", "fresh", "ingredients", "never", "parmesan", "pasta", "pomodoro", "pot", "taste", "to"}, svc.FeatureNames())
	assert.Equal(t, [][]int{
		{1, 1, 1, 0, 0, 1, 0, 2, 0, 1, 0, 0},
		{0, 0, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1},
	}, svc.Matrix())
	assert.Len(t, svc.Documents(), 2)

	require.NotEmpty(t, stats)
	assert.Equal(t, "pasta", stats[0].Term)
	assert.Equal(t, 3, stats[0].Total)
	assert.Len(t, stats, 3)

	sim, err := svc.Similar(0, 1)
	require.NoError(t, err)
	require.Len(t, sim, 1)
	assert.Equal(t, 1, sim[0].Index)
	assert.Greater(t, sim[0].Score, 0.0)

	assert.Contains(t, logs.String(), "corpus vectorized")
}

func TestVectorizeErrors(t *testing.T) {
	dir := t.TempDir()
	svc := newService(chunker.NewLineSplitter(), &bytes.Buffer{})

	_, err := svc.Vectorize([]string{filepath.Join(dir, "*.txt")})
	assert.ErrorIs(t, err, corpus.ErrNoDocuments)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`["ok", 1]`), 0o644))
	_, err = svc.Vectorize([]string{bad})
	var invalid *vectorizer.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
	assert.Nil(t, svc.Matrix())
}
