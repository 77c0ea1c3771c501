package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	tagesschau "github.com/Kaschi14/TagesschauScraper"
	"github.com/Kaschi14/TagesschauScraper/goquery"
	tshttp "github.com/Kaschi14/TagesschauScraper/http"
	"github.com/Kaschi14/TagesschauScraper/markdown"
	"github.com/Kaschi14/TagesschauScraper/scrape"
	tsslog "github.com/Kaschi14/TagesschauScraper/slog"
	"github.com/Kaschi14/TagesschauScraper/sqlite"
)

// defaultRPS is the per-domain request rate for scraping the site.
const defaultRPS = 1.0

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
	// Database path. Set before calling Run().
	DBPath string

	// Fetcher used for page retrieval. Replaced in end-to-end tests;
	// defaults to the HTTP fetcher.
	Fetcher tagesschau.Fetcher

	// SQLite database used by the teaser store.
	DB *sqlite.DB

	// Services for end-to-end testing.
	TeaserService tagesschau.TeaserService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("tagesschau"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tagesschau --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TAGESSCHAU_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.TeaserService = sqlite.NewTeaserService(m.DB)
	deps.DB = m.DB
	deps.Teasers = m.TeaserService

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = tshttp.NewFetcher()
	}
	defer fetcher.Close()

	deps.Scraper = &scrape.Scraper{
		Fetcher:     tsslog.NewLoggingFetcher(fetcher, logger),
		Parser:      tsslog.NewLoggingTeaserParser(goquery.NewParser(), logger),
		Extractor:   goquery.NewExtractor(),
		Renderer:    markdown.NewRenderer(),
		Store:       m.TeaserService,
		Limiter:     scrape.NewDomainLimiter(defaultRPS),
		EnrichTags:  cli.Teaser.EnrichTags,
		Concurrency: cli.Teaser.Concurrency,
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("TAGESSCHAU_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tagesschau.db"
	}
	dir := filepath.Join(home, ".tagesschau")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "tagesschau.db")
}
