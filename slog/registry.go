package slog

import (
	"log/slog"
	"time"

	"github.com/raingarden/plantfill"
)

var (
	_ plantfill.ParserRegistry = (*LoggingRegistry)(nil)
	_ plantfill.SiteParser     = (*LoggingParser)(nil)
)

// LoggingRegistry wraps a ParserRegistry so every parser it hands out logs
// its results.
type LoggingRegistry struct {
	next   plantfill.ParserRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next plantfill.ParserRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Get returns the wrapped registry's parser decorated with logging.
func (r *LoggingRegistry) Get(source plantfill.Source) plantfill.SiteParser {
	p := r.next.Get(source)
	if p == nil {
		r.logger.Debug("no parser", "source", source.Name())
		return nil
	}
	return NewLoggingParser(p, r.logger)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(parser plantfill.SiteParser) {
	r.next.Register(parser)
}

// LoggingParser wraps a SiteParser and logs what each page yielded.
type LoggingParser struct {
	next   plantfill.SiteParser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next plantfill.SiteParser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Source delegates to the wrapped parser.
func (p *LoggingParser) Source() plantfill.Source {
	return p.next.Source()
}

// Parse delegates to the wrapped parser and logs the number of fields found.
func (p *LoggingParser) Parse(html string) (plantfill.PartialRecord, error) {
	begin := time.Now()
	rec, err := p.next.Parse(html)
	if err != nil {
		p.logger.Warn("parse failed",
			"source", p.next.Source().Name(),
			"err", err,
		)
		return nil, err
	}
	p.logger.Debug("parse",
		"source", p.next.Source().Name(),
		"fields", len(rec),
		"duration", time.Since(begin),
	)
	return rec, nil
}
