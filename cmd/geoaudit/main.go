package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/kimmoihanus/geoaudit"
	"github.com/kimmoihanus/geoaudit/audit"
	"github.com/kimmoihanus/geoaudit/gemini"
	"github.com/kimmoihanus/geoaudit/goquery"
	geohttp "github.com/kimmoihanus/geoaudit/http"
	geoslog "github.com/kimmoihanus/geoaudit/slog"
	"github.com/kimmoihanus/geoaudit/sqlite"
	"google.golang.org/genai"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	AuditService      geoaudit.AuditService
	SubscriberService geoaudit.SubscriberService
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
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel()}))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("geoaudit"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'geoaudit --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GEOAUDIT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.AuditService = sqlite.NewAuditService(m.DB)
	m.SubscriberService = sqlite.NewSubscriberService(m.DB)
	deps.DB = m.DB
	deps.Audits = m.AuditService
	deps.Subscribers = m.SubscriberService

	// The generator is optional: without GEMINI_API_KEY every audit
	// degrades to deterministic rule-based scoring.
	var generator geoaudit.TextGenerator
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		generator = geoslog.NewLoggingGenerator(
			gemini.NewGenerator(client, os.Getenv("GEOAUDIT_MODEL")), logger)
		deps.AIEnabled = true
	}

	deps.Auditor = &audit.Auditor{
		Sanitizer: goquery.NewSanitizer(),
		Extractor: goquery.NewExtractor(),
		Analyzer:  goquery.NewAnalyzer(),
		Generator: generator,
		Logger:    logger,
	}

	fetchOpts := []geohttp.FetcherOption{}
	if proxy := proxyURL(); proxy != nil {
		fetchOpts = append(fetchOpts, geohttp.WithProxy(proxy))
	}
	deps.Fetcher = geoslog.NewLoggingFetcher(geohttp.NewFetcher(fetchOpts...), logger)
	deps.Discoverer = geohttp.NewSitemapDiscoverer(nil)

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("GEOAUDIT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "geoaudit.db"
	}
	dir := filepath.Join(home, ".geoaudit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "geoaudit.db")
}

// proxyURL builds the unblocker proxy URL from the environment, or nil
// when not configured.
func proxyURL() *url.URL {
	host := os.Getenv("PROXY_HOST")
	if host == "" {
		return nil
	}
	u := &url.URL{Scheme: "http", Host: host}
	if port := os.Getenv("PROXY_PORT"); port != "" {
		u.Host = host + ":" + port
	}
	if user := os.Getenv("PROXY_USERNAME"); user != "" {
		u.User = url.UserPassword(user, os.Getenv("PROXY_PASSWORD"))
	}
	return u
}

func logLevel() slog.Level {
	if os.Getenv("GEOAUDIT_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
