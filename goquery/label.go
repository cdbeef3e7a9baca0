package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/normalize"
	"golang.org/x/net/html"
)

// Option configures a site parser.
type Option func(*options)

type options struct {
	conditions normalize.Conditions
}

// WithConditions sets the phrase table used to normalize sun and water values.
// Defaults to normalize.DefaultPhrases.
func WithConditions(c normalize.Conditions) Option {
	return func(o *options) {
		o.conditions = c
	}
}

func newOptions(opts []Option) options {
	o := options{conditions: normalize.NewConditions(nil)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// rule maps page labels onto a record field. A label matches when it
// contains any of labels (lower case).
type rule struct {
	labels []string
	field  plantfill.Field
	norm   func(string) string
}

// rules is an ordered rule set; the first matching rule wins, so more
// specific labels must come first.
type rules []rule

func (rs rules) match(label string) (rule, bool) {
	label = cleanLabel(label)
	if label == "" {
		return rule{}, false
	}
	for _, r := range rs {
		for _, l := range r.labels {
			if strings.Contains(label, l) {
				return r, true
			}
		}
	}
	return rule{}, false
}

// apply normalizes value through the rule matching label and stores it.
// A field seen twice on one page keeps its first value unless it is additive.
func (rs rules) apply(out plantfill.PartialRecord, label, value string) {
	r, ok := rs.match(label)
	if !ok || r.field == "" {
		return
	}
	v := r.norm(value)
	if v == "" {
		return
	}
	if existing, ok := out[r.field]; ok {
		if plantfill.IsAdditive(r.field) {
			out[r.field] = normalize.Merge(r.field, existing, v)
		}
		return
	}
	out[r.field] = v
}

// normalizerFor returns the normalizer each field is routed through.
func normalizerFor(f plantfill.Field, o options) func(string) string {
	switch f {
	case plantfill.FieldHeight, plantfill.FieldSpread:
		return normalize.Range
	case plantfill.FieldBloomTime:
		return normalize.MonthRange
	case plantfill.FieldBloomColor:
		return normalize.ColorList
	case plantfill.FieldSun, plantfill.FieldWater:
		return o.conditions.Normalize
	case plantfill.FieldAttracts, plantfill.FieldTolerates:
		return normalize.List
	case plantfill.FieldUseNotes, plantfill.FieldMaintenanceNotes:
		return normalize.Notes
	}
	return normalize.Text
}

// newRule builds a rule whose normalizer is chosen by field.
func newRule(o options, f plantfill.Field, labels ...string) rule {
	return rule{labels: labels, field: f, norm: normalizerFor(f, o)}
}

// ignoreRule builds a rule that claims labels without storing a value, so a
// later generic rule cannot match them.
func ignoreRule(labels ...string) rule {
	return rule{labels: labels}
}

func newDocument(s string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return nil, plantfill.Errorf(plantfill.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// cleanLabel lower-cases a label and strips the trailing colon.
func cleanLabel(s string) string {
	s = strings.ToLower(normalize.Text(s))
	return strings.TrimSpace(strings.TrimRight(s, ":"))
}

// inlineStops are elements that end an inline "Label: value" run.
var inlineStops = map[string]bool{
	"br": true, "strong": true, "b": true, "p": true, "div": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "table": true, "dl": true,
}

// inlineValue returns the text following a label element up to the next
// line break, label or block element.
func inlineValue(label *goquery.Selection) string {
	if label.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for n := label.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && inlineStops[n.Data] {
			break
		}
		writeText(&b, n)
	}
	return strings.TrimLeft(normalize.Text(b.String()), ": ")
}

// writeText appends the text content of n, turning line breaks into spaces.
func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteString(" ")
			return
		}
		if n.Data == "script" || n.Data == "style" {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(b, c)
		}
	}
}

// sectionText returns the paragraphs following a heading, up to the next
// heading, joined with spaces.
func sectionText(heading *goquery.Selection) string {
	var parts []string
	heading.NextUntil("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if t := normalize.Text(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

// tableRows applies rules to every two-cell row of the matched tables.
func tableRows(doc *goquery.Document, selector string, rs rules, out plantfill.PartialRecord) int {
	var n int
	doc.Find(selector).Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered("th, td")
		if cells.Length() < 2 {
			return
		}
		rs.apply(out, cells.First().Text(), cells.Eq(1).Text())
		n++
	})
	return n
}

// splitLabeled splits "Label: value" text at the first colon.
func splitLabeled(s string) (label, value string, ok bool) {
	label, value, ok = strings.Cut(normalize.Text(s), ":")
	if !ok {
		return "", "", false
	}
	return label, strings.TrimSpace(value), true
}

// eachInlineLabel calls fn for every bold element inside scope whose text
// ends with a colon, the "Label: value" convention of attribute blocks.
func eachInlineLabel(scope *goquery.Selection, fn func(label *goquery.Selection)) {
	scope.Find("strong, b").Each(func(_ int, s *goquery.Selection) {
		if strings.HasSuffix(normalize.Text(s.Text()), ":") {
			fn(s)
		}
	})
}

// scopeOf returns the first selection matching selector, or the whole
// document when nothing matches.
func scopeOf(doc *goquery.Document, selector string) *goquery.Selection {
	if s := doc.Find(selector).First(); s.Length() > 0 {
		return s
	}
	return doc.Selection
}
