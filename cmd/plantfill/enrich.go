package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/enrich"
)

// Run executes the enrich command.
func (c *EnrichCmd) Run(deps *Dependencies) error {
	sources, err := c.sources()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantfill.ErrorMessage(err))
		return err
	}

	table, err := readTable(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantfill.ErrorMessage(err))
		return err
	}

	log := logger(deps)
	if c.Refresh && deps.Cache != nil {
		evicted := 0
		for _, rec := range table.Records {
			for _, src := range sources {
				if link := enrich.Link(rec, src); link != "" {
					if err := deps.Cache.Evict(link); err != nil {
						log.Warn("cache evict failed", "url", link, "err", err)
						continue
					}
					evicted++
				}
			}
		}
		log.Debug("cache refresh", "urls", evicted)
	}

	concurrency := c.Concurrency
	if concurrency <= 0 && deps.Config != nil {
		concurrency = deps.Config.Concurrency
	}

	enricher := &enrich.Enricher{
		Fetcher:     deps.Fetcher,
		Parsers:     deps.Parsers,
		Keys:        deps.Keys,
		Sources:     sources,
		Logger:      log,
		Concurrency: concurrency,
	}

	var bar *pb.ProgressBar
	progress := func(event enrich.ProgressEvent) {
		switch event.Type {
		case enrich.ProgressStarted:
			if !c.Quiet && event.Total > 0 {
				bar = newProgressBar(deps.Stderr, event.Total, "Enriching: ")
			}
		case enrich.ProgressRecord:
			if bar != nil {
				bar.Increment()
			}
		case enrich.ProgressFinished:
			if bar != nil {
				bar.Finish()
			}
		}
	}

	result, runErr := enricher.EnrichAll(deps.Ctx, table.Records, progress)

	out := outputPath(c.Input, c.Output)
	if err := writeTable(out, table); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", out, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Enriched %s of %s plants: %s fields filled, %s pages read, %s unavailable",
		humanize.Comma(int64(result.Processed)),
		humanize.Comma(int64(result.Total)),
		humanize.Comma(int64(result.FieldsFilled)),
		humanize.Comma(int64(result.SourcesFetched)),
		humanize.Comma(int64(result.SourcesFailed)),
	)
	if result.KeysAssigned > 0 {
		fmt.Fprintf(deps.Stdout, ", %s keys assigned", humanize.Comma(int64(result.KeysAssigned)))
	}
	if result.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, ", %s rows without a name skipped", humanize.Comma(int64(result.Skipped)))
	}
	fmt.Fprintln(deps.Stdout)

	if runErr != nil {
		fmt.Fprintf(deps.Stderr, "interrupted: partial results written to %s\n", out)
		return runErr
	}
	return nil
}

// sources resolves the --source flags, defaulting to every source.
func (c *EnrichCmd) sources() ([]plantfill.Source, error) {
	if len(c.Source) == 0 {
		return plantfill.Sources(), nil
	}
	// Keep priority order regardless of flag order.
	want := make(map[plantfill.Source]bool, len(c.Source))
	for _, s := range c.Source {
		src, err := plantfill.ParseSource(s)
		if err != nil {
			return nil, err
		}
		want[src] = true
	}
	var sources []plantfill.Source
	for _, src := range plantfill.Sources() {
		if want[src] {
			sources = append(sources, src)
		}
	}
	return sources, nil
}

// newProgressBar starts a progress bar on w.
func newProgressBar(w io.Writer, total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.New(total)
	bar.SetWriter(w)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar.Start()
}

// logger returns deps.Logger, or a discarding logger when none is set.
func logger(deps *Dependencies) *slog.Logger {
	if deps.Logger != nil {
		return deps.Logger
	}
	return slog.New(slog.DiscardHandler)
}
