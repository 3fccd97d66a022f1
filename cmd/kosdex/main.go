package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kspcapcom/kosdex"
	"github.com/kspcapcom/kosdex/enrich"
	"github.com/kspcapcom/kosdex/fetch"
	"github.com/kspcapcom/kosdex/fs"
	"github.com/kspcapcom/kosdex/goquery"
	"github.com/kspcapcom/kosdex/htmltomarkdown"
	koshttp "github.com/kspcapcom/kosdex/http"
	"github.com/kspcapcom/kosdex/readability"
	kosslog "github.com/kspcapcom/kosdex/slog"
	"github.com/kspcapcom/kosdex/sqlite"
	"github.com/kspcapcom/kosdex/trafilatura"
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
type Main struct {
	// Page cache database path. Set before calling Run().
	CachePath string

	// SQLite database backing the page cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("kosdex"),
		kong.Description("Build a normalized knowledge base from the kOS documentation site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"base_url": kosdex.BaseURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kosdex --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := stdlog.LevelInfo
	if cli.Verbose {
		level = stdlog.LevelDebug
	}
	logger := stdlog.New(stdlog.NewTextHandler(stderr, &stdlog.HandlerOptions{Level: level}))

	if cli.CachePath != "" {
		m.CachePath = cli.CachePath
	}

	// Open the page cache database
	m.DB = sqlite.NewDB(m.CachePath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set KOSDEX_CACHE or --cache to use a different cache path")
		return fmt.Errorf("failed to open page cache at %q: %w", m.CachePath, err)
	}
	defer m.Close()

	deps.BaseURL = cli.BaseURL

	deps.Fetcher = koshttp.NewFetcher(koshttp.WithTimeout(cli.Timeout))
	deps.Cache = sqlite.NewPageCache(m.DB)
	if cli.Verbose {
		deps.Fetcher = kosslog.NewLoggingFetcher(deps.Fetcher, logger)
		deps.Cache = kosslog.NewLoggingCache(deps.Cache, logger)
	}
	defer deps.Fetcher.Close()

	limiter := fetch.NewDomainLimiter(fetch.DefaultRPS)

	deps.Discoverer = &fetch.Discoverer{
		Fetcher: deps.Fetcher,
		TOC:     goquery.NewTOC(),
		Sitemap: koshttp.NewSitemapService(nil),
		Links:   goquery.NewSphinxSelector(),
		Limiter: limiter,
	}
	if cli.Verbose {
		deps.Discoverer = kosslog.NewLoggingDiscoverer(deps.Discoverer, logger)
	}

	deps.Registry = goquery.DefaultRegistry()
	deps.Pipeline = enrich.New()
	deps.Exporter = fs.NewExporter()
	deps.Extractor = trafilatura.NewExtractor()
	deps.Fallback = readability.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()

	// Wire command-specific dependencies
	var hf *harvestFlags
	switch cmdWord(kongCtx.Command()) {
	case "build":
		hf = &cli.Build.harvestFlags
		deps.Writer = fs.NewIndexWriter(cli.Build.Pretty)
	case "validate":
		hf = &cli.Validate.harvestFlags
	case "export":
		hf = &cli.Export.harvestFlags
	}
	if hf != nil {
		deps.Harvester = &fetch.Harvester{
			Fetcher:     deps.Fetcher,
			Cache:       deps.Cache,
			Limiter:     limiter,
			MaxAge:      hf.MaxAge,
			NoCache:     hf.NoCache,
			Concurrency: hf.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// cmdWord returns the leading word of a kong command path, e.g.
// "preview <url>" becomes "preview".
func cmdWord(command string) string {
	if i := strings.IndexByte(command, ' '); i >= 0 {
		return command[:i]
	}
	return command
}

func defaultCachePath() string {
	if path := os.Getenv("KOSDEX_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "kosdex-cache.db"
	}
	dir := filepath.Join(home, ".kosdex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cache.db")
}
