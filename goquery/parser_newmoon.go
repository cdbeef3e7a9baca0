package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/normalize"
)

var _ plantfill.SiteParser = (*NewMoonParser)(nil)

// NewMoonParser parses New Moon Nursery plant pages.
//
// Attributes come as a definition list (a table on some pages). Benefits are
// a bulleted list under a "Benefits" heading whose items either start with a
// bold category label ("<strong>Attracts:</strong> Bees") or are bare phrases,
// which are kept as use notes.
type NewMoonParser struct {
	attrs    rules
	benefits rules
}

// NewNewMoonParser creates a new NewMoonParser.
func NewNewMoonParser(opts ...Option) *NewMoonParser {
	o := newOptions(opts)
	return &NewMoonParser{
		attrs: rules{
			newRule(o, plantfill.FieldBloomTime, "bloom time", "flowering"),
			ignoreRule("foliage", "leaf", "fall color"),
			newRule(o, plantfill.FieldBloomColor, "color"),
			newRule(o, plantfill.FieldHeight, "height"),
			newRule(o, plantfill.FieldSpread, "spread", "width"),
			newRule(o, plantfill.FieldSun, "sun", "light", "exposure"),
			newRule(o, plantfill.FieldWater, "moisture", "water"),
		},
		benefits: rules{
			newRule(o, plantfill.FieldAttracts, "attract", "wildlife", "pollinator"),
			newRule(o, plantfill.FieldTolerates, "tolerat", "resist"),
			newRule(o, plantfill.FieldMaintenanceNotes, "maintenance", "care"),
			newRule(o, plantfill.FieldUseNotes, "use", "landscape"),
		},
	}
}

// Source returns plantfill.SourceNewMoon.
func (p *NewMoonParser) Source() plantfill.Source {
	return plantfill.SourceNewMoon
}

// Parse extracts the attribute list and the benefits list.
func (p *NewMoonParser) Parse(html string) (plantfill.PartialRecord, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	out := plantfill.PartialRecord{}
	var found bool
	doc.Find("dl dt").Each(func(_ int, dt *goquery.Selection) {
		dd := dt.NextFiltered("dd")
		if dd.Length() == 0 {
			return
		}
		found = true
		p.attrs.apply(out, dt.Text(), dd.Text())
	})
	if !found {
		tableRows(doc, "table", p.attrs, out)
	}

	p.parseBenefits(doc, out)
	return out, nil
}

func (p *NewMoonParser) parseBenefits(doc *goquery.Document, out plantfill.PartialRecord) {
	list := doc.Find(".benefits ul").First()
	if list.Length() == 0 {
		doc.Find("h2, h3, h4").EachWithBreak(func(_ int, h *goquery.Selection) bool {
			if !strings.Contains(strings.ToLower(h.Text()), "benefit") {
				return true
			}
			list = h.NextAllFiltered("ul").First()
			return list.Length() == 0
		})
	}

	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		label := li.ChildrenFiltered("strong, b").First()
		if label.Length() > 0 {
			p.benefits.apply(out, label.Text(), inlineValue(label))
			return
		}
		if text := normalize.Text(li.Text()); text != "" {
			p.benefits.apply(out, "use", text)
		}
	})
}
