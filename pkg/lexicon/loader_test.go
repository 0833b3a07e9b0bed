package lexicon

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleJSONL = `{"word": "кошка", "zipf": 4.73}
{"word": "МЫШКА", "zipf": 4.11}
{"word": "ёжики"}

{"word": "кошка", "zipf": 3.50}
{"word": "кот", "zipf": 5.00}
{"word": "cat22", "zipf": 5.00}
not json at all
{"word": "пышка", "zipf": 3.89}
`

func TestLoadReader(t *testing.T) {
	lex, err := LoadReader(strings.NewReader(sampleJSONL), "test")
	require.NoError(t, err)

	// кот is too short, cat22 is not Cyrillic, one line is not JSON.
	require.Equal(t, []string{"кошка", "мышка", "ежики", "пышка"}, lex.Words())

	z, ok := lex.Zipf("кошка")
	require.True(t, ok)
	require.InDelta(t, 4.73, z, 1e-9, "duplicates keep the highest zipf")

	z, ok = lex.Zipf("мышка")
	require.True(t, ok)
	require.InDelta(t, 4.11, z, 1e-9, "words are case folded before storing")

	_, ok = lex.Zipf("ежики")
	require.False(t, ok, "entries without a score stay unscored")
}

func TestLoadReaderDuplicateKeepsFirstPosition(t *testing.T) {
	input := `{"word": "мышка", "zipf": 1.0}
{"word": "кошка", "zipf": 9.0}
{"word": "мышка", "zipf": 9.5}
`
	lex, err := LoadReader(strings.NewReader(input), "test")
	require.NoError(t, err)
	require.Equal(t, []string{"мышка", "кошка"}, lex.Words())

	z, _ := lex.Zipf("мышка")
	require.InDelta(t, 9.5, z, 1e-9)
}

func TestLoadReaderEmpty(t *testing.T) {
	lex, err := LoadReader(strings.NewReader(""), "test")
	require.NoError(t, err)
	require.Zero(t, lex.Len())
	require.False(t, lex.HasFrequencies())
}

func TestLoadPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSONL), 0o644))

	lex, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, lex.Len())
}

func TestLoadGzipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.jsonl.gz")

	file, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(file)
	_, err = gz.Write([]byte(sampleJSONL))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, file.Close())

	lex, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, lex.Len())

	z, ok := lex.Zipf("пышка")
	require.True(t, ok)
	require.InDelta(t, 3.89, z, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
}
