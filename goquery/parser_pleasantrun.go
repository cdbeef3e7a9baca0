package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/raingarden/plantfill"
)

var _ plantfill.SiteParser = (*PleasantRunParser)(nil)

// PleasantRunParser parses Pleasant Run Nursery product pages.
// Attributes are rows of a two-column attribute table; older pages list
// them as "Label: value" items in the product description instead.
type PleasantRunParser struct {
	attrs rules
}

// NewPleasantRunParser creates a new PleasantRunParser.
func NewPleasantRunParser(opts ...Option) *PleasantRunParser {
	o := newOptions(opts)
	return &PleasantRunParser{
		attrs: rules{
			newRule(o, plantfill.FieldBloomTime, "bloom time", "bloom period", "flowering time"),
			ignoreRule("foliage", "leaf", "fall color"),
			newRule(o, plantfill.FieldBloomColor, "color"),
			newRule(o, plantfill.FieldPlantType, "plant type"),
			newRule(o, plantfill.FieldHeight, "height"),
			newRule(o, plantfill.FieldSpread, "spread", "width"),
			newRule(o, plantfill.FieldSun, "sun", "light", "exposure"),
			newRule(o, plantfill.FieldWater, "moisture", "water"),
			newRule(o, plantfill.FieldAttracts, "attracts", "wildlife"),
			newRule(o, plantfill.FieldTolerates, "tolerat", "resistan"),
			newRule(o, plantfill.FieldMaintenanceNotes, "maintenance", "care"),
		},
	}
}

// Source returns plantfill.SourcePleasantRun.
func (p *PleasantRunParser) Source() plantfill.Source {
	return plantfill.SourcePleasantRun
}

// Parse extracts the attribute table, falling back to description items.
func (p *PleasantRunParser) Parse(html string) (plantfill.PartialRecord, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	out := plantfill.PartialRecord{}
	if tableRows(doc, "table", p.attrs, out) > 0 {
		return out, nil
	}

	scopeOf(doc, ".product-description, .product__description").Find("li").Each(func(_ int, li *goquery.Selection) {
		if label, value, ok := splitLabeled(li.Text()); ok {
			p.attrs.apply(out, label, value)
		}
	})
	return out, nil
}
