// Command pagemark converts article pages and video transcripts to markdown.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/pagemark/pagemark"
	"github.com/pagemark/pagemark/convert"
	"github.com/pagemark/pagemark/etree"
	"github.com/pagemark/pagemark/goquery"
	"github.com/pagemark/pagemark/htmltomarkdown"
	pmhttp "github.com/pagemark/pagemark/http"
	"github.com/pagemark/pagemark/markdown"
	"github.com/pagemark/pagemark/readability"
	pmslog "github.com/pagemark/pagemark/slog"
	"github.com/pagemark/pagemark/sqlite"
	"github.com/pagemark/pagemark/trafilatura"
	"github.com/pagemark/pagemark/youtube"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the link journal.
	DB *sqlite.DB

	// LinkService for end-to-end testing.
	LinkService pagemark.LinkService
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
		kong.Name("pagemark"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemark --help' to see available commands")
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

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGEMARK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.LinkService = sqlite.NewLinkService(m.DB)
	deps.DB = m.DB
	deps.Links = m.LinkService

	if cmd == "convert" {
		deps.Converter = newConverter(&cli.Convert, deps.Links, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newConverter wires the conversion service from the convert command's flags.
func newConverter(cmd *ConvertCmd, links pagemark.LinkService, logger *slog.Logger) *convert.Service {
	direct := pmslog.NewLoggingFetcher(pmhttp.NewFetcher(), logger)

	// Page fetches go through the relay when one is configured; caption
	// endpoint fetches always go direct.
	var pages pagemark.Fetcher = direct
	if cmd.Proxy != "" {
		pages = pmslog.NewLoggingFetcher(pmhttp.NewProxyFetcher(cmd.Proxy), logger)
	}
	if cmd.RateLimit > 0 {
		pages = pmhttp.NewThrottledFetcher(pages, cmd.RateLimit)
	}

	transcripts := &youtube.Extractor{
		Direct:    direct,
		Proxy:     pages,
		TimedText: etree.NewParser(),
		Logger:    logger,
	}
	if cmd.YoutubeProxy != "" {
		transcripts.Relay = pmhttp.NewTranscriptRelay(cmd.YoutubeProxy, pmhttp.DefaultFetchTimeout)
	}

	return &convert.Service{
		Documents: &convert.DocumentPipeline{
			Fetcher:  pages,
			Preparer: goquery.NewPreparer(),
			Extractor: pagemark.FallbackExtractor{
				readability.NewExtractor(),
				trafilatura.NewExtractor(),
			},
			Converter: htmltomarkdown.NewConverter(),
		},
		Transcripts: transcripts,
		Renderer:    markdown.NewRenderer(),
		Links:       links,
		Concurrency: cmd.Concurrency,
		Logger:      logger,
	}
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEMARK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagemark.db"
	}
	dir := filepath.Join(home, ".pagemark")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagemark.db")
}
