package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/enrich"
	"github.com/raingarden/plantfill/fs"
	"github.com/raingarden/plantfill/gnparser"
	"github.com/raingarden/plantfill/goquery"
	pfhttp "github.com/raingarden/plantfill/http"
	pfslog "github.com/raingarden/plantfill/slog"
	"github.com/raingarden/plantfill/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Master list database path. Set before calling Run().
	DBPath string

	// Default fetch cache directory. Set before calling Run().
	CacheDir string

	// SQLite database used by the master list store.
	DB *sqlite.DB

	// Fetcher replaces the network fetcher when set, for end-to-end testing.
	Fetcher plantfill.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		CacheDir: defaultCacheDir(),
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
		kong.Name("plantfill"),
		kong.Description("Fill missing plant list fields from botanical and nursery websites."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'plantfill --help' to see available commands")
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

	cfg, err := LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", plantfill.ErrorMessage(err))
		return err
	}
	cfg.override(cli)
	cfg.applyDefaults(m.CacheDir)
	deps.Config = cfg
	deps.Logger = newLogger(stderr, cli.Verbose)

	parsers := goquery.NewDefaultRegistry(goquery.WithConditions(cfg.Conditions()))
	deps.Detect = func(html string) plantfill.SiteParser {
		if p := parsers.GetForHTML(html); p != nil {
			return pfslog.NewLoggingParser(p, deps.Logger)
		}
		return nil
	}
	deps.Parsers = pfslog.NewLoggingRegistry(parsers, deps.Logger)
	deps.Keys = gnparser.NewKeyGenerator()

	switch strings.Fields(kongCtx.Command())[0] {
	case "enrich", "parse":
		deps.Cache = fs.NewCache(cfg.CacheDir)
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher = pfhttp.NewFetcher(
				pfhttp.WithTimeout(cfg.Timeout),
				pfhttp.WithUserAgents(cfg.UserAgent, cfg.AlternateUserAgent),
				pfhttp.WithLimiter(enrich.NewDomainLimiter(cfg.RequestsPerSecond)),
			)
		}
		fetcher = pfslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Fetcher = fs.NewCachedFetcher(deps.Cache, fetcher, fs.WithLogger(deps.Logger))
		defer deps.Fetcher.Close()

	case "merge", "export":
		dbPath := m.DBPath
		if cli.DB != "" {
			dbPath = cli.DB
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PLANTFILL_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.Store = sqlite.NewRecordStore(m.DB)
	}

	return kongCtx.Run(deps)
}

// newLogger returns a text logger on w; verbose lowers the level to Debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("PLANTFILL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "plantfill.db"
	}
	return filepath.Join(home, ".plantfill", "master.db")
}

func defaultCacheDir() string {
	if dir := os.Getenv("PLANTFILL_CACHE"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "plantfill-cache")
	}
	return filepath.Join(home, ".plantfill", "cache")
}
