package goquery

import (
	"slices"

	"github.com/raingarden/plantfill"
)

var _ plantfill.ParserRegistry = (*Registry)(nil)

// Registry holds one site parser per source and can pick the parser for a
// saved page using a SourceDetector.
type Registry struct {
	detector plantfill.SourceDetector
	parsers  map[plantfill.Source]plantfill.SiteParser
}

// NewRegistry creates an empty Registry using detector for GetForHTML.
func NewRegistry(detector plantfill.SourceDetector) *Registry {
	return &Registry{
		detector: detector,
		parsers:  make(map[plantfill.Source]plantfill.SiteParser),
	}
}

// NewDefaultRegistry creates a Registry with a parser for every known source.
func NewDefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(NewDetector())
	r.Register(NewMBGParser(opts...))
	r.Register(NewWildflowerParser(opts...))
	r.Register(NewPleasantRunParser(opts...))
	r.Register(NewNewMoonParser(opts...))
	r.Register(NewPinelandsParser(opts...))
	return r
}

// Get returns the parser for a source.
// Returns nil if no parser is registered for the source.
func (r *Registry) Get(source plantfill.Source) plantfill.SiteParser {
	return r.parsers[source]
}

// GetForHTML detects the source of a page and returns its parser.
// Returns nil when the source is unknown or has no parser.
func (r *Registry) GetForHTML(html string) plantfill.SiteParser {
	if r.detector == nil {
		return nil
	}
	source, ok := r.detector.Detect(html)
	if !ok {
		return nil
	}
	return r.parsers[source]
}

// Register adds a parser under its own source.
// If a parser is already registered for the source, it is replaced.
func (r *Registry) Register(parser plantfill.SiteParser) {
	r.parsers[parser.Source()] = parser
}

// List returns the registered sources in priority order.
func (r *Registry) List() []plantfill.Source {
	var sources []plantfill.Source
	for _, src := range plantfill.Sources() {
		if _, ok := r.parsers[src]; ok {
			sources = append(sources, src)
		}
	}
	for src := range r.parsers {
		if !slices.Contains(sources, src) {
			sources = append(sources, src)
		}
	}
	return sources
}
