// Package cli handles interactive query input for testing searches against a loaded lexicon.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/velikanov/slovoserve/internal/logger"
	"github.com/velikanov/slovoserve/internal/utils"
	"github.com/velikanov/slovoserve/pkg/lexicon"
	"github.com/velikanov/slovoserve/pkg/query"
	"github.com/velikanov/slovoserve/pkg/search"
)

var log = logger.New("cli")

// InputHandler reads raw queries from stdin and prints ranked matches.
// sortMode is one of "freq", "alpha", "none" or empty for automatic
// (freq when zipf data is loaded, alpha otherwise).
type InputHandler struct {
	lex          *lexicon.Lexicon
	displayLimit int
	sortMode     string
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(lex *lexicon.Lexicon, displayLimit int, sortMode string) *InputHandler {
	return &InputHandler{
		lex:          lex,
		displayLimit: displayLimit,
		sortMode:     sortMode,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and
// passes the trimmed query to handleQuery. The loop ends on EOF.
func (h *InputHandler) Start() error {
	log.Printf("slovoserve CLI: %s words loaded", utils.FormatWithCommas(h.lex.Len()))
	log.Print("enter search parameters (-абв +где _а___ 2к), Ctrl+C to exit:")
	reader := bufio.NewReader(os.Stdin)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleQuery(line)
	}
}

// handleQuery parses one query, reports conflicts or runs the filter
// and prints the ranked matches up to the display limit.
func (h *InputHandler) handleQuery(text string) {
	params := query.Parse(text)
	h.showParams(params)

	if len(params.Conflicts) > 0 {
		log.Error("conflicts detected:")
		for _, msg := range params.Conflicts {
			log.Errorf("  - %s", msg)
		}
		log.Error("search aborted")
		return
	}

	start := time.Now()
	matches, stats := search.Filter(h.lex.Words(), params)
	matches = h.sorted(matches)
	elapsed := time.Since(start)

	log.Debugf("took [ %v ] for query '%s'", elapsed, text)
	log.Debugf("filtered: gray=%d yellow=%d pattern=%d antipattern=%d",
		stats.Excluded, stats.Required, stats.Pattern, stats.Antipattern)

	if len(matches) == 0 {
		log.Warn("no words found")
		return
	}

	total := len(matches)
	shown := matches
	if h.displayLimit > 0 && len(shown) > h.displayLimit {
		shown = shown[:h.displayLimit]
	}

	log.Printf("found %d words:", total)
	for i, word := range shown {
		zipfCol := "    -"
		if z, ok := h.lex.Zipf(word); ok {
			zipfCol = fmt.Sprintf("%5.2f", z)
		}
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", word)
		log.Printf("%3d. %-24s (zipf: %s)", i+1, clWord, zipfCol)
	}
	if total > len(shown) {
		log.Printf("...and %d more", total-len(shown))
	}
}

// showParams echoes the parsed constraint set.
func (h *InputHandler) showParams(params query.Params) {
	log.Print("parameters:")
	log.Printf("  gray (excluded):    %s", orNone(query.SortedLetters(params.Excluded)))
	log.Printf("  yellow (required):  %s", orNone(query.SortedLetters(params.Required)))
	pattern := ""
	if params.Pattern != nil {
		pattern = params.Pattern.String()
	}
	log.Printf("  pattern:            %s", orNone(pattern))
	log.Printf("  antipattern:        %s", orNone(params.RawAntipattern))
}

// sorted applies the configured sort mode.
func (h *InputHandler) sorted(matches []string) []string {
	mode := h.sortMode
	if mode == "" {
		if h.lex.HasFrequencies() {
			mode = "freq"
		} else {
			mode = "alpha"
		}
	}

	switch mode {
	case "freq":
		if h.lex.HasFrequencies() {
			log.Debug("sorting: by frequency (zipf)")
			return search.Rank(matches, h.lex.Frequencies())
		}
		log.Debug("sorting: alphabetical (frequency unavailable)")
		return search.Rank(matches, nil)
	case "alpha":
		log.Debug("sorting: alphabetical")
		return search.Rank(matches, nil)
	default:
		log.Debug("sorting: none (lexicon order)")
		return matches
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
