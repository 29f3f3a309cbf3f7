package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Scraper   *scrape.Scraper
	Extractor webgrab.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Scrape  ScrapeCmd  `cmd:"" help:"Fetch a URL in a headless browser and extract its content"`
	Extract ExtractCmd `cmd:"" help:"Extract content from local or piped HTML without a browser"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL     string `arg:"" help:"Page URL (must start with http:// or https://)"`
	Format  string `short:"f" default:"both" enum:"docx,txt,both" help:"Output format"`
	Out     string `short:"o" default:"." help:"Output directory"`
	Engine  string `short:"e" default:"dom" enum:"dom,article" help:"Extraction engine"`
	Preview bool   `short:"p" help:"Print extracted blocks instead of writing files"`
	Quiet   bool   `short:"q" help:"Suppress progress output"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File    string `arg:"" optional:"" help:"HTML file to read (defaults to stdin)"`
	Format  string `short:"f" default:"both" enum:"docx,txt,both" help:"Output format"`
	Out     string `short:"o" default:"." help:"Output directory"`
	Engine  string `short:"e" default:"dom" enum:"dom,article" help:"Extraction engine"`
	Preview bool   `short:"p" help:"Print extracted blocks instead of writing files"`
}
