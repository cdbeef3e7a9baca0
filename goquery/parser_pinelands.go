package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/raingarden/plantfill"
)

var _ plantfill.SiteParser = (*PinelandsParser)(nil)

// PinelandsParser parses Pinelands Nursery plant pages, whose details are
// list items holding a "label" span followed by the value. Items without the
// span are read as "Label: value" text.
type PinelandsParser struct {
	attrs rules
}

// NewPinelandsParser creates a new PinelandsParser.
func NewPinelandsParser(opts ...Option) *PinelandsParser {
	o := newOptions(opts)
	return &PinelandsParser{
		attrs: rules{
			newRule(o, plantfill.FieldBloomTime, "bloom period", "bloom time", "flowering"),
			ignoreRule("foliage", "leaf", "fall color"),
			newRule(o, plantfill.FieldBloomColor, "color"),
			newRule(o, plantfill.FieldHeight, "height"),
			newRule(o, plantfill.FieldSpread, "spread", "width"),
			newRule(o, plantfill.FieldSun, "sun", "light", "exposure"),
			newRule(o, plantfill.FieldWater, "moisture", "water"),
			newRule(o, plantfill.FieldNativeHabitats, "habitat"),
			newRule(o, plantfill.FieldAttracts, "wildlife", "attract"),
			newRule(o, plantfill.FieldTolerates, "tolera"),
			newRule(o, plantfill.FieldAGCPStatus, "agcp", "regional status", "native status"),
		},
	}
}

// Source returns plantfill.SourcePinelands.
func (p *PinelandsParser) Source() plantfill.Source {
	return plantfill.SourcePinelands
}

// Parse extracts the plant detail list.
func (p *PinelandsParser) Parse(html string) (plantfill.PartialRecord, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	out := plantfill.PartialRecord{}
	labels := doc.Find("li > span.label")
	if labels.Length() > 0 {
		labels.Each(func(_ int, label *goquery.Selection) {
			p.attrs.apply(out, label.Text(), inlineValue(label))
		})
		return out, nil
	}

	scopeOf(doc, ".plant-details, .product-details").Find("li").Each(func(_ int, li *goquery.Selection) {
		if label, value, ok := splitLabeled(li.Text()); ok {
			p.attrs.apply(out, label, value)
		}
	})
	return out, nil
}
