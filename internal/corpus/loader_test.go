package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"countvec/internal/chunker"
	"countvec/internal/vectorizer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTextFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "Pasta Pomodoro")
	writeFile(t, dir, "a.txt", "Crock Pot Pasta")

	docs, err := Load([]string{filepath.Join(dir, "*.txt")}, nil)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, []string{"Crock Pot Pasta", "Pasta Pomodoro"}, Texts(docs))
	assert.NotEqual(t, docs[0].ID, docs[1].ID)
	assert.Len(t, docs[0].ID, 16)
}

func TestLoadKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	b := writeFile(t, dir, "b.txt", "second")
	a := writeFile(t, dir, "a.txt", "first")

	docs, err := Load([]string{b, a}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, Texts(docs))
}

func TestLoadLineSplitter(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "recipes.txt", "Crock Pot Pasta\n\nPasta Pomodoro\n")

	docs, err := Load([]string{path}, chunker.NewLineSplitter())
	require.NoError(t, err)
	assert.Equal(t, []string{"Crock Pot Pasta", "Pasta Pomodoro"}, Texts(docs))
}

func TestLoadJSONAndYAML(t *testing.T) {
	dir := t.TempDir()
	j := writeFile(t, dir, "c.json", `["Crock Pot Pasta", "", "Pasta Pomodoro"]`)
	y := writeFile(t, dir, "c.yaml", "- Fresh ingredients\n- 'to taste'\n")

	docs, err := Load([]string{j, y}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Crock Pot Pasta", "", "Pasta Pomodoro", "Fresh ingredients", "to taste"}, Texts(docs))
}

func TestLoadRejectsNonStringElements(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"num.json":  `["ok", 42]`,
		"null.json": `["ok", null]`,
		"obj.json":  `["ok", {"a": 1}]`,
		"num.yaml":  "- ok\n- 42\n",
		"map.yaml":  "- ok\n- a: b\n",
		"bool.yml":  "- ok\n- true\n",
	}
	for name, content := range cases {
		path := writeFile(t, dir, name, content)
		_, err := Load([]string{path}, nil)
		require.Error(t, err, name)

		var invalid *vectorizer.InvalidInputError
		require.True(t, errors.As(err, &invalid), name)
		assert.Equal(t, 1, invalid.Index, name)
	}
}

func TestLoadRejectsMalformedContainers(t *testing.T) {
	dir := t.TempDir()
	obj := writeFile(t, dir, "obj.json", `{"docs": []}`)
	_, err := Load([]string{obj}, nil)
	assert.Error(t, err)

	scalar := writeFile(t, dir, "scalar.yaml", "just a string\n")
	_, err = Load([]string{scalar}, nil)
	assert.Error(t, err)
}

func TestLoadInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.txt", "caf\xe9")
	_, err := Load([]string{path}, nil)

	var invalid *vectorizer.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

func TestLoadNoDocuments(t *testing.T) {
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.json", `[]`)
	_, err := Load([]string{empty}, nil)
	assert.ErrorIs(t, err, ErrNoDocuments)

	_, err = Load([]string{filepath.Join(dir, "missing.txt")}, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
