package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raingarden/plantfill"
)

var _ plantfill.SourceDetector = (*Detector)(nil)

// Detector attributes saved pages to a source. It checks the canonical link
// and Open Graph URL first, then the og:site_name meta tag.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the source that published html.
func (d *Detector) Detect(html string) (plantfill.Source, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	for _, sel := range []struct{ selector, attr string }{
		{`link[rel="canonical"]`, "href"},
		{`meta[property="og:url"]`, "content"},
	} {
		if v, ok := doc.Find(sel.selector).First().Attr(sel.attr); ok {
			if src, ok := plantfill.SourceForURL(v); ok {
				return src, true
			}
		}
	}

	if name, ok := doc.Find(`meta[property="og:site_name"]`).First().Attr("content"); ok {
		return d.detectFromSiteName(name)
	}
	return "", false
}

// detectFromSiteName matches the site name against each source's display name.
func (d *Detector) detectFromSiteName(name string) (plantfill.Source, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	for _, src := range plantfill.Sources() {
		if strings.Contains(name, strings.ToLower(src.Name())) ||
			strings.Contains(strings.ToLower(src.Name()), name) {
			return src, true
		}
	}
	return "", false
}
