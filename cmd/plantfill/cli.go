package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Config  *Config
	Fetcher plantfill.Fetcher
	Cache   *fs.Cache
	Parsers plantfill.ParserRegistry
	Keys    plantfill.KeyGenerator
	Store   plantfill.RecordStore

	// Detect picks the parser for a saved page whose source is unknown.
	Detect func(html string) plantfill.SiteParser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" type:"path" help:"YAML configuration file"`
	Verbose bool   `short:"v" help:"Log fetches, parses and skipped sources"`
	DB      string `type:"path" help:"Master list database (default ~/.plantfill/master.db, env PLANTFILL_DB)"`

	CacheDir          string        `type:"path" help:"Fetch cache directory (default ~/.plantfill/cache, env PLANTFILL_CACHE)"`
	Timeout           time.Duration `help:"Per-request fetch timeout (default 10s)"`
	RequestsPerSecond float64       `name:"rps" help:"Requests per second per host (default 1)"`

	Enrich EnrichCmd `cmd:"" help:"Fill missing fields of a plant table from source websites"`
	Parse  ParseCmd  `cmd:"" help:"Print the fields a site parser finds in a page"`
	Keys   KeysCmd   `cmd:"" help:"Assign keys to plants that have none"`
	Merge  MergeCmd  `cmd:"" help:"Merge a reviewed plant table into the master list"`
	Export ExportCmd `cmd:"" help:"Write the master list as CSV"`
}

// EnrichCmd is the "enrich" subcommand.
type EnrichCmd struct {
	Input       string   `arg:"" type:"existingfile" help:"Plant table CSV"`
	Output      string   `short:"o" type:"path" help:"Output CSV (default: overwrite input)"`
	Refresh     bool     `help:"Re-fetch pages instead of using cached copies"`
	Concurrency int      `short:"c" help:"Records enriched in parallel (default 1)"`
	Source      []string `short:"s" name:"source" help:"Only consult these sources (repeatable: mbg, wildflower, pleasantrun, newmoon, pinelands)"`
	Quiet       bool     `short:"q" help:"Hide the progress bar"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	Target string `arg:"" help:"Saved HTML file or page URL"`
	Source string `short:"s" default:"auto" help:"Source parser to use, or auto to detect it"`
}

// KeysCmd is the "keys" subcommand.
type KeysCmd struct {
	Input  string `arg:"" type:"existingfile" help:"Plant table CSV"`
	Output string `short:"o" type:"path" help:"Output CSV (default: overwrite input)"`
}

// MergeCmd is the "merge" subcommand.
type MergeCmd struct {
	Input string `arg:"" type:"existingfile" help:"Reviewed plant table CSV"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `short:"o" type:"path" help:"Output CSV (default: stdout)"`
}
