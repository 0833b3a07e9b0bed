/*
Package main implements the 5-letter Russian word search server and
CLI application.

slovoserve answers Wordle-style constraint queries against a
frequency-ranked lexicon. It can operate as a MessagePack IPC server
for integration with chat bots and editors, or as an interactive CLI
for testing queries by hand.

The lexicon is loaded once at startup and is immutable afterwards, so
every query runs against the same read-only word list without
coordination.

# Usage

Start the server with default settings:

	slovoserve

Use a custom lexicon file and enable debug mode:

	slovoserve -data /path/to/lexicon_ru_5.jsonl.gz -d

Run in CLI mode for interactive testing:

	slovoserve -c -limit 25 -sort freq

The lexicon file is JSON Lines, optionally gzip-compressed, with one
{"word": ..., "zipf": ...} object per line. Words are normalized on
load (lowercased, ё folded onto е) and deduplicated.

# Query syntax

Queries are free-order, whitespace-separated constraint tokens:

	-абв    gray letters (excluded everywhere)
	+где    yellow letters (required somewhere)
	_а___   green pattern (5 characters, _ for open slots)
	2кр5н   antipattern (letters banned at positions)

The antipattern also accepts the legacy %-delimited form (%кр%%%н).
Contradictory constraints are reported back as conflict messages and
no search runs.

# Configuration

Runtime configuration is managed through a TOML file that is created
with defaults when missing:

	[server]
	max_limit = 50
	max_query_len = 200

	[lexicon]
	path = "data/lexicon_ru_5.jsonl.gz"

	[cli]
	default_limit = 50
	sort = "freq"

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a
search request:

	{"id": "req1", "cmd": "search", "q": "-нзф +ки _а___ 2к", "l": 25}

and receive ranked matches with zipf scores, conflict messages, and
per-predicate filter counters. See the server package doc for the
full message set.

# Command Line Flags

	-data string
	    Lexicon file to load (overrides the config path)
	-config string
	    Config file path (default: ~/.config/slovoserve/config.toml)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of matches to display in CLI mode
	-sort string
	    CLI sort mode: freq, alpha or none
	-version
	    Show current version
*/
package main

import (
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"

	"github.com/velikanov/slovoserve/internal/cli"
	"github.com/velikanov/slovoserve/pkg/config"
	"github.com/velikanov/slovoserve/pkg/lexicon"
	"github.com/velikanov/slovoserve/pkg/server"
)

const (
	Version = "1.0.0"
	AppName = "slovoserve"
	gh      = "https://github.com/velikanov/slovoserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, lexicon and the chosen frontend together; the
// logic lives in the packages.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Lexicon file to load (overrides config)")
	configPath := flag.String("config", "", "Config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of matches to display in CLI mode")
	sortMode := flag.String("sort", "", "CLI sort mode: freq, alpha or none")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig := config.InitConfig(*configPath)

	lexiconPath := appConfig.Lexicon.Path
	if *dataPath != "" {
		lexiconPath = *dataPath
	}

	log.Debugf("using lexicon at: %s", lexiconPath)
	lex, err := loadLexicon(lexiconPath)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}
	log.Debugf("lexicon ready: %d words, %d scored", lex.Len(), lex.Stats().FreqCount)

	if *cliMode {
		log.SetReportTimestamp(false)
		mode := *sortMode
		if mode == "" {
			mode = appConfig.CLI.Sort
		}
		displayLimit := *limit
		if displayLimit < 1 {
			displayLimit = appConfig.CLI.DefaultLimit
		}

		inputHandler := cli.NewInputHandler(lex, displayLimit, mode)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(lexiconPath, lex)

	srv := server.NewServer(lex, appConfig)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// loadLexicon opens the lexicon file with byte progress on stderr.
// Protocol output owns stdout, so the bar must stay off it.
func loadLexicon(path string) (*lexicon.Lexicon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat lexicon %s: %w", path, err)
	}

	bar := progressbar.NewOptions64(info.Size(),
		progressbar.OptionSetDescription("loading lexicon"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	var reader io.Reader = io.TeeReader(file, bar)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("decompressing lexicon %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	}

	return lexicon.LoadReader(reader, path)
}

// printVersion displays the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Printf("[ %s ] 5-letter Russian word search", AppName)
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(lexiconPath string, lex *lexicon.Lexicon) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("version: %s", Version)
	log.Infof("process ID: [ %d ]", pid)
	log.Infof("lexicon: ( %s ) with %d words", lexiconPath, lex.Len())
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
