package main

import (
	"context"
	"io"
	"time"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/enrich"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	BaseURL string

	Fetcher    kosdex.Fetcher
	Cache      kosdex.PageCache
	Discoverer kosdex.Discoverer
	Harvester  kosdex.Harvester
	Registry   kosdex.ParserRegistry
	Pipeline   *enrich.Pipeline
	Writer     kosdex.IndexWriter
	Exporter   kosdex.Exporter

	// Extractor is the primary main-content extractor for preview;
	// Fallback takes over when it fails on a page.
	Extractor kosdex.Extractor
	Fallback  kosdex.Extractor
	Converter kosdex.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `help:"Enable debug logging"`
	CachePath string        `name:"cache" env:"KOSDEX_CACHE" help:"Page cache database path (default: ~/.kosdex/cache.db)"`
	BaseURL   string        `name:"base-url" default:"${base_url}" help:"Documentation site root"`
	Timeout   time.Duration `default:"10s" help:"Fetch timeout per page"`

	Build    BuildCmd    `cmd:"" help:"Build the documentation index"`
	Validate ValidateCmd `cmd:"" help:"Run the pipeline and report validation warnings without writing"`
	Discover DiscoverCmd `cmd:"" help:"List discovered documentation pages by kind"`
	Preview  PreviewCmd  `cmd:"" help:"Fetch one page and print its extracted content as Markdown"`
	Export   ExportCmd   `cmd:"" help:"Build and export per-category Markdown reference files"`
	Cache    CacheCmd    `cmd:"" help:"Manage the page cache"`
}

// harvestFlags are the fetch-policy flags shared by the pipeline
// commands.
type harvestFlags struct {
	NoCache     bool          `help:"Ignore cached pages and re-fetch everything"`
	MaxAge      time.Duration `default:"24h" help:"Serve cached pages younger than this"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Output string `short:"o" default:"kos_docs.json" help:"Output path for the index JSON"`
	Pretty bool   `help:"Indent the output JSON"`
	harvestFlags
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	harvestFlags
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct{}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL string `arg:"" help:"Documentation page URL"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `default:"kos_docs" help:"Output directory for the Markdown export"`
	harvestFlags
}

// CacheCmd groups the cache administration subcommands.
type CacheCmd struct {
	Stats CacheStatsCmd `cmd:"" help:"Show cache size and age"`
	Purge CachePurgeCmd `cmd:"" help:"Remove cached pages older than a cutoff"`
}

// CacheStatsCmd is the "cache stats" subcommand.
type CacheStatsCmd struct{}

// CachePurgeCmd is the "cache purge" subcommand.
type CachePurgeCmd struct {
	OlderThan time.Duration `default:"24h" help:"Remove pages fetched more than this long ago (0 removes everything)"`
}
