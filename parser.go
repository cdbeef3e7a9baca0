package plantfill

// PartialRecord maps fields to normalized values scraped from one source.
// An absent key means the source did not mention the field; parsers never
// store empty values.
type PartialRecord map[Field]string

// Set stores v under f unless v is empty.
func (p PartialRecord) Set(f Field, v string) {
	if v == "" {
		return
	}
	p[f] = v
}

// SiteParser turns one source's static HTML into a partial record.
type SiteParser interface {
	// Source returns the site this parser understands.
	Source() Source

	// Parse extracts the source's fields from html.
	// Labels absent from the page are omitted from the result; an error is
	// returned only when the document cannot be read at all.
	Parse(html string) (PartialRecord, error)
}

// ParserRegistry looks up the parser for a source.
type ParserRegistry interface {
	// Get returns the parser registered for the source, or nil.
	Get(source Source) SiteParser

	// Register adds a parser, replacing any parser for the same source.
	Register(parser SiteParser)
}

// SourceDetector identifies which source published a saved page.
type SourceDetector interface {
	// Detect returns the source named by the page's canonical URL or site
	// metadata, or false when the page cannot be attributed.
	Detect(html string) (Source, bool)
}
