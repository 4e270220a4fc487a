package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sitewise/sitebot"
	"github.com/sitewise/sitebot/chat"
	"github.com/sitewise/sitebot/corpus"
	"github.com/sitewise/sitebot/crawl"
	"github.com/sitewise/sitebot/goquery"
	sitehttp "github.com/sitewise/sitebot/http"
	"github.com/sitewise/sitebot/htmltomarkdown"
	"github.com/sitewise/sitebot/readability"
	"github.com/sitewise/sitebot/rod"
	botslog "github.com/sitewise/sitebot/slog"
	"github.com/sitewise/sitebot/sqlite"
	"github.com/sitewise/sitebot/tfidf"
	"github.com/sitewise/sitebot/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin feeds the interactive chat command.
	Stdin io.Reader

	// SQLite page cache, open only when configured.
	DB *sqlite.DB

	// Fetcher kept for shutdown; browser fetchers hold a process.
	Fetcher sitebot.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		if err := m.Fetcher.Close(); err != nil {
			return err
		}
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitebot"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitebot --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		return err
	}
	deps.Config = cfg
	deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))

	if err := m.wire(deps); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the corpus pipeline from the configuration.
func (m *Main) wire(deps *Dependencies) error {
	cfg := deps.Config

	var fetcher sitebot.Fetcher
	if cfg.Fetch.Browser {
		f, err := rod.NewFetcher(rod.WithUserAgent(cfg.Fetch.UserAgent))
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = sitehttp.NewFetcher(
			sitehttp.WithTimeout(time.Duration(cfg.Fetch.Timeout)),
			sitehttp.WithUserAgent(cfg.Fetch.UserAgent),
		)
	}
	m.Fetcher = fetcher
	fetcher = botslog.NewLoggingFetcher(fetcher, deps.Logger)

	var extractor sitebot.Extractor
	switch cfg.Fetch.Extractor {
	case "trafilatura":
		extractor = trafilatura.NewExtractor()
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	limiter := crawl.NewDomainLimiter(cfg.Fetch.RPS)

	c := &corpus.Corpus{
		Fetcher:     fetcher,
		Extractor:   extractor,
		Fragmenter:  goquery.NewFragmenter(),
		Limiter:     limiter,
		Logger:      deps.Logger,
		Concurrency: cfg.Fetch.Concurrency,
		ChunkOptions: sitebot.ChunkOptions{
			MaxSentences: cfg.Chunk.MaxSentences,
			MaxWords:     cfg.Chunk.MaxWords,
			MinWords:     cfg.Chunk.MinWords,
		},
		IndexOptions: tfidf.Options{
			MaxFeatures: cfg.Index.MaxFeatures,
			MinDocFreq:  cfg.Index.MinDocFreq,
			MaxDocShare: cfg.Index.MaxDocShare,
		},
	}

	if cfg.Cache.Path != "" {
		m.DB = sqlite.NewDB(cfg.Cache.Path)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open page cache at %q: %w", cfg.Cache.Path, err)
		}
		c.Pages = sqlite.NewPageStore(m.DB)
		c.Converter = htmltomarkdown.NewConverter()
		c.CacheTTL = time.Duration(cfg.Cache.TTL)
	}

	deps.Corpus = c
	deps.Responder = &chat.Responder{
		Source:   c,
		SiteName: cfg.Site.Name,
		TopK:     cfg.Retrieval.TopK,
		MinScore: cfg.Retrieval.MinScore,
	}
	deps.Discoverer = &crawl.Discoverer{
		Source:   sitehttp.NewSitemapSource(nil),
		Fetcher:  fetcher,
		Links:    goquery.NewLinkExtractor(),
		Limiter:  limiter,
		Logger:   deps.Logger,
		MaxPages: cfg.Discover.MaxPages,
	}

	return nil
}
