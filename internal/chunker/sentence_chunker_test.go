package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countvec/internal/domain"
)

func contents(docs []domain.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.Content
	}
	return out
}

func TestSentenceChunker(t *testing.T) {
	doc := domain.Document{ID: "d", Path: "a.txt", Content: "One. Two! Three? Four. Five"}

	docs, err := NewSentenceChunker(2, 0).Split(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"One. Two!", "Three? Four.", "Five"}, contents(docs))
	assert.Equal(t, "d:0", docs[0].ID)
	assert.Equal(t, "d:2", docs[2].ID)
	assert.Equal(t, "a.txt", docs[1].Path)

	docs, err = NewSentenceChunker(2, 1).Split(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"One. Two!", "Two! Three?", "Three? Four.", "Four. Five"}, contents(docs))
}

func TestSentenceChunkerEmpty(t *testing.T) {
	docs, err := NewSentenceChunker(3, 1).Split(domain.Document{ID: "d", Content: "  \n "})
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSentenceChunkerOverlapClamped(t *testing.T) {
	c := NewSentenceChunker(1, 4)
	docs, err := c.Split(domain.Document{ID: "d", Content: "A. B. C."})
	require.NoError(t, err)
	assert.Equal(t, []string{"A.", "B.", "C."}, contents(docs))
}

func TestLineSplitter(t *testing.T) {
	doc := domain.Document{ID: "d", Content: "first line\r\n\n  \nSecond Line\n"}
	docs, err := NewLineSplitter().Split(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"first line", "Second Line"}, contents(docs))
	assert.Equal(t, "d:1", docs[1].ID)
}

func TestFileSplitter(t *testing.T) {
	doc := domain.Document{ID: "d", Content: "whole. file."}
	docs, err := NewFileSplitter().Split(doc)
	require.NoError(t, err)
	assert.Equal(t, []domain.Document{doc}, docs)
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", "file", "line", "sentence"} {
		s, ok := New(name, 2, 0)
		assert.True(t, ok, name)
		assert.NotNil(t, s, name)
	}
	_, ok := New("paragraph", 2, 0)
	assert.False(t, ok)
}
