package mock

import "github.com/raingarden/plantfill"

var _ plantfill.SiteParser = (*SiteParser)(nil)

// SiteParser is a mock implementation of plantfill.SiteParser.
type SiteParser struct {
	SourceFn func() plantfill.Source
	ParseFn  func(html string) (plantfill.PartialRecord, error)
}

func (p *SiteParser) Source() plantfill.Source {
	return p.SourceFn()
}

func (p *SiteParser) Parse(html string) (plantfill.PartialRecord, error) {
	return p.ParseFn(html)
}

var _ plantfill.ParserRegistry = (*ParserRegistry)(nil)

// ParserRegistry is a mock implementation of plantfill.ParserRegistry.
type ParserRegistry struct {
	GetFn      func(source plantfill.Source) plantfill.SiteParser
	RegisterFn func(parser plantfill.SiteParser)
}

func (r *ParserRegistry) Get(source plantfill.Source) plantfill.SiteParser {
	return r.GetFn(source)
}

func (r *ParserRegistry) Register(parser plantfill.SiteParser) {
	r.RegisterFn(parser)
}

var _ plantfill.SourceDetector = (*SourceDetector)(nil)

// SourceDetector is a mock implementation of plantfill.SourceDetector.
type SourceDetector struct {
	DetectFn func(html string) (plantfill.Source, bool)
}

func (d *SourceDetector) Detect(html string) (plantfill.Source, bool) {
	return d.DetectFn(html)
}
