package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/velikanov/slovoserve/internal/logger"
	"github.com/velikanov/slovoserve/pkg/config"
	"github.com/velikanov/slovoserve/pkg/lexicon"
	"github.com/velikanov/slovoserve/pkg/query"
	"github.com/velikanov/slovoserve/pkg/search"
)

var log = logger.New("ipc")

// Server handles the IPC for word searches against a shared read-only
// lexicon. All state lives in the lexicon and the config; requests do
// not mutate anything, so one Server may serve a pipelined stream.
type Server struct {
	lex *lexicon.Lexicon
	cfg *config.Config
	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a search server over stdin/stdout.
func NewServer(lex *lexicon.Lexicon, cfg *config.Config) *Server {
	return NewServerWithIO(lex, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a search server over the given stream pair.
func NewServerWithIO(lex *lexicon.Lexicon, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		lex: lex,
		cfg: cfg,
		dec: msgpack.NewDecoder(bufio.NewReader(r)),
		enc: msgpack.NewEncoder(w),
	}
}

// Start begins the request loop. It returns nil when the client
// closes the stream and an error when the stream itself breaks; a
// malformed frame is fatal because the decoder cannot resync past it.
func (s *Server) Start() error {
	log.Debug("starting server")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("decoding request: %v", err)
			s.sendError("", "invalid msgpack message", 400)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(request Request) {
	switch request.Cmd {
	case "search":
		s.handleSearch(request)
	case "prefix":
		s.handlePrefix(request)
	case "info":
		s.handleInfo(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("unknown command: %s", request.Cmd), 400)
	}
}

// handleSearch parses the query, halts on conflicts, otherwise filters
// and ranks the lexicon. Matches are capped at the request limit
// bounded by the configured maximum; Total carries the uncapped count.
func (s *Server) handleSearch(request Request) {
	text := strings.TrimSpace(request.Query)

	if text == "" {
		s.sendError(request.ID, "missing 'q' parameter", 400)
		log.Debug("query is empty in request")
		return
	}
	if len(text) > s.cfg.Server.MaxQueryLen {
		s.sendError(request.ID, fmt.Sprintf("query exceeds maximum length of %d", s.cfg.Server.MaxQueryLen), 400)
		log.Debug("query is too long in request")
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	params := query.Parse(text)

	if len(params.Conflicts) > 0 {
		log.Debugf("conflicting query %q: %d conflicts", text, len(params.Conflicts))
		s.send(SearchResponse{
			ID:        request.ID,
			Conflicts: params.Conflicts,
			TimeTaken: time.Since(start).Milliseconds(),
		})
		return
	}

	result := search.Run(s.lex, params)
	elapsed := time.Since(start)

	total := len(result.Matches)
	capped := result.Matches
	if len(capped) > limit {
		capped = capped[:limit]
	}

	matches := make([]Match, len(capped))
	for i, word := range capped {
		match := Match{Word: word, Rank: uint16(i + 1)}
		if z, ok := s.lex.Zipf(word); ok {
			match.Zipf = z
		}
		matches[i] = match
	}

	s.send(SearchResponse{
		ID:      request.ID,
		Matches: matches,
		Count:   len(matches),
		Total:   total,
		Stats: FilterStats{
			Excluded:    result.Stats.Excluded,
			Required:    result.Stats.Required,
			Pattern:     result.Stats.Pattern,
			Antipattern: result.Stats.Antipattern,
		},
		TimeTaken: elapsed.Milliseconds(),
	})
}

// handlePrefix lists lexicon words under a normalized prefix.
func (s *Server) handlePrefix(request Request) {
	prefix := lexicon.Normalize(strings.TrimSpace(request.Query))
	if prefix == "" {
		s.sendError(request.ID, "missing 'q' parameter", 400)
		return
	}

	words := s.lex.WithPrefix(prefix)
	limit := request.Limit
	if limit < 1 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}
	if len(words) > limit {
		words = words[:limit]
	}

	s.send(PrefixResponse{
		ID:    request.ID,
		Words: words,
		Count: len(words),
	})
}

// handleInfo reports lexicon statistics.
func (s *Server) handleInfo(request Request) {
	stats := s.lex.Stats()
	s.send(InfoResponse{
		ID:         request.ID,
		TotalWords: stats.TotalWords,
		FreqCount:  stats.FreqCount,
		HasFreq:    stats.HasFreq,
	})
}

// send encodes one response frame onto the stream.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
