package chunker

import (
	"regexp"
	"strconv"
	"strings"

	"countvec/internal/domain"
)

// SentenceChunker splits text into documents of a few sentences, with overlap.
type SentenceChunker struct {
	sentencesPerChunk int
	overlapSentences  int
	splitter          *regexp.Regexp
}

func NewSentenceChunker(sentencesPerChunk, overlapSentences int) *SentenceChunker {
	if sentencesPerChunk <= 0 {
		sentencesPerChunk = 5
	}
	if overlapSentences < 0 {
		overlapSentences = 0
	}
	if overlapSentences >= sentencesPerChunk {
		overlapSentences = sentencesPerChunk - 1
	}
	return &SentenceChunker{
		sentencesPerChunk: sentencesPerChunk,
		overlapSentences:  overlapSentences,
		splitter:          regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
	}
}

// Split implements domain.Splitter. Text after the last terminator is kept
// as a final sentence.
func (c *SentenceChunker) Split(document domain.Document) ([]domain.Document, error) {
	sentences := c.sentences(document.Content)
	if len(sentences) == 0 {
		return nil, nil
	}
	var docs []domain.Document
	i := 0
	idx := 0
	for i < len(sentences) {
		end := i + c.sentencesPerChunk
		if end > len(sentences) {
			end = len(sentences)
		}
		docs = append(docs, derive(document, idx, strings.Join(sentences[i:end], " ")))
		if end == len(sentences) {
			break
		}
		i = end - c.overlapSentences
		idx++
	}
	return docs, nil
}

func (c *SentenceChunker) sentences(text string) []string {
	locs := c.splitter.FindAllStringIndex(text, -1)
	var out []string
	last := 0
	for _, loc := range locs {
		if s := strings.TrimSpace(text[loc[0]:loc[1]]); s != "" {
			out = append(out, s)
		}
		last = loc[1]
	}
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		out = append(out, tail)
	}
	return out
}

// LineSplitter makes one document per non-blank line.
type LineSplitter struct{}

func NewLineSplitter() *LineSplitter { return &LineSplitter{} }

// Split implements domain.Splitter.
func (LineSplitter) Split(document domain.Document) ([]domain.Document, error) {
	var docs []domain.Document
	for _, line := range strings.Split(document.Content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		docs = append(docs, derive(document, len(docs), line))
	}
	return docs, nil
}

// FileSplitter keeps the whole file as a single document.
type FileSplitter struct{}

func NewFileSplitter() *FileSplitter { return &FileSplitter{} }

// Split implements domain.Splitter.
func (FileSplitter) Split(document domain.Document) ([]domain.Document, error) {
	return []domain.Document{document}, nil
}

// New returns the splitter registered under name.
func New(name string, sentencesPerChunk, overlapSentences int) (domain.Splitter, bool) {
	switch name {
	case "file", "":
		return NewFileSplitter(), true
	case "line":
		return NewLineSplitter(), true
	case "sentence":
		return NewSentenceChunker(sentencesPerChunk, overlapSentences), true
	}
	return nil, false
}

func derive(parent domain.Document, idx int, text string) domain.Document {
	return domain.Document{
		ID:      parent.ID + ":" + strconv.Itoa(idx),
		Path:    parent.Path,
		Content: text,
	}
}
