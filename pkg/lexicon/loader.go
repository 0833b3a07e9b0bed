package lexicon

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// maxLineSize bounds a single lexicon line. The format carries one
// small JSON object per line, so anything bigger is garbage.
const maxLineSize = 64 * 1024

type lexiconEntry struct {
	Word string   `json:"word"`
	Zipf *float64 `json:"zipf"`
}

// Load reads a lexicon from path. Files ending in .gz are
// transparently decompressed.
func Load(path string) (*Lexicon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon %s: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("decompressing lexicon %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	}
	return LoadReader(reader, path)
}

// LoadReader reads JSONL lexicon data from r. Each line is an object
// with a "word" string and an optional "zipf" score. Invalid lines and
// words that are not exactly WordLen alphabet letters are skipped.
// Duplicate words keep their first position and their highest zipf.
// The name is used for logging only.
func LoadReader(r io.Reader, name string) (*Lexicon, error) {
	start := time.Now()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var words []string
	zipf := make(map[string]float64)
	seen := make(map[string]bool)
	lines, skipped := 0, 0

	for scanner.Scan() {
		lines++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry lexiconEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			skipped++
			log.Debugf("skipping line %d of %s: %v", lines, name, err)
			continue
		}

		word := Normalize(entry.Word)
		if !isWord(word) {
			skipped++
			continue
		}

		if entry.Zipf != nil {
			if prev, ok := zipf[word]; !ok || *entry.Zipf > prev {
				zipf[word] = *entry.Zipf
			}
		}
		if !seen[word] {
			seen[word] = true
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", name, err)
	}

	if skipped > 0 {
		log.Warnf("skipped %d of %d lexicon lines in %s", skipped, lines, name)
	}
	log.Debugf("loaded %d unique words (%d scored) from %d lines in %v",
		len(words), len(zipf), lines, time.Since(start))

	return New(words, zipf), nil
}

// isWord reports whether w is exactly WordLen letters of the alphabet.
func isWord(w string) bool {
	if utf8.RuneCountInString(w) != WordLen {
		return false
	}
	for _, r := range w {
		if !IsAlphabetic(r) {
			return false
		}
	}
	return true
}
