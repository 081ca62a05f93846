package corpus

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"countvec/internal/chunker"
	"countvec/internal/domain"
	"countvec/internal/vectorizer"
)

// ErrNoDocuments is returned when the inputs expand to no readable files.
var ErrNoDocuments = errors.New("no documents found")

// Load reads the files named by paths (glob patterns allowed) and returns
// their documents in input order. Plain text files are passed through
// splitter; JSON and YAML files must hold a list of strings, one document
// each. A nil splitter keeps each text file whole.
func Load(paths []string, splitter domain.Splitter) ([]domain.Document, error) {
	if splitter == nil {
		splitter = chunker.NewFileSplitter()
	}
	var documents []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if matches == nil && !strings.ContainsAny(p, "*?[") {
			matches = []string{p}
		}
		sort.Strings(matches)
		for _, m := range matches {
			docs, err := loadFile(m, splitter)
			if err != nil {
				return nil, err
			}
			documents = append(documents, docs...)
		}
	}
	if len(documents) == 0 {
		return nil, ErrNoDocuments
	}
	return documents, nil
}

// Texts returns the document contents in order, ready for FitTransform.
func Texts(documents []domain.Document) []string {
	out := make([]string, len(documents))
	for i, d := range documents {
		out[i] = d.Content
	}
	return out
}

func loadFile(path string, splitter domain.Splitter) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: expected a JSON array of strings: %w", path, err)
		}
		texts := make([]string, len(raw))
		for i, r := range raw {
			r = bytes.TrimSpace(r)
			if len(r) == 0 || r[0] != '"' {
				return nil, fmt.Errorf("%s: %w", path, &vectorizer.InvalidInputError{Index: i, Reason: "element is not a string"})
			}
			if err := json.Unmarshal(r, &texts[i]); err != nil {
				return nil, fmt.Errorf("%s: %w", path, &vectorizer.InvalidInputError{Index: i, Reason: "element is not a string"})
			}
		}
		return fromList(path, texts)
	case ".yaml", ".yml":
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if len(root.Content) == 0 {
			return fromList(path, nil)
		}
		seq := root.Content[0]
		if seq.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%s: expected a YAML sequence of strings", path)
		}
		texts := make([]string, len(seq.Content))
		for i, n := range seq.Content {
			if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
				return nil, fmt.Errorf("%s: %w", path, &vectorizer.InvalidInputError{Index: i, Reason: "element is not a string"})
			}
			texts[i] = n.Value
		}
		return fromList(path, texts)
	default:
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%s: %w", path, &vectorizer.InvalidInputError{Index: 0, Reason: "file is not valid UTF-8"})
		}
		doc := domain.Document{ID: hashString(path), Path: path, Content: string(data)}
		docs, err := splitter.Split(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return docs, nil
	}
}

func fromList(path string, texts []string) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(texts))
	for i, t := range texts {
		if !utf8.ValidString(t) {
			return nil, fmt.Errorf("%s: %w", path, &vectorizer.InvalidInputError{Index: i, Reason: "document is not valid UTF-8"})
		}
		docs = append(docs, domain.Document{ID: hashString(path + "#" + strconv.Itoa(i)), Path: path, Content: t})
	}
	return docs, nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
