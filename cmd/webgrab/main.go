package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webgrab"
	webgoquery "github.com/fwojciec/webgrab/goquery"
	webrod "github.com/fwojciec/webgrab/rod"
	"github.com/fwojciec/webgrab/scrape"
	webtrafilatura "github.com/fwojciec/webgrab/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webgrab"),
		kong.Description("Extract text content from rendered web pages as docx and txt documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webgrab --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags.
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire command-specific dependencies based on the parsed command, so
	// global flags may appear before the command name.
	switch strings.Fields(kongCtx.Command())[0] {
	case "scrape":
		var fetcher webgrab.Fetcher = webrod.NewFetcher()
		if cli.Verbose {
			fetcher = webrod.NewLoggingFetcher(fetcher, deps.Logger)
		}
		deps.Scraper = &scrape.Scraper{
			Fetcher:   fetcher,
			Extractor: newExtractor(cli.Scrape.Engine),
			Logger:    deps.Logger,
		}
	case "extract":
		deps.Extractor = newExtractor(cli.Extract.Engine)
	}

	return kongCtx.Run(deps)
}

// newExtractor selects the extraction engine.
func newExtractor(engine string) webgrab.Extractor {
	if engine == "article" {
		return webtrafilatura.NewExtractor()
	}
	return webgoquery.NewExtractor()
}
