package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/raingarden/plantfill"
)

var _ plantfill.SiteParser = (*MBGParser)(nil)

// MBGParser parses Missouri Botanical Garden Plant Finder pages.
//
// Attributes sit in a block of "<strong>Label:</strong> value<br>" pairs;
// Culture, Uses and Problems are prose sections introduced by headings.
type MBGParser struct {
	attrs    rules
	sections rules
}

// NewMBGParser creates a new MBGParser.
func NewMBGParser(opts ...Option) *MBGParser {
	o := newOptions(opts)
	return &MBGParser{
		attrs: rules{
			newRule(o, plantfill.FieldBloomTime, "bloom time"),
			newRule(o, plantfill.FieldBloomColor, "bloom description"),
			newRule(o, plantfill.FieldNativeHabitats, "native range"),
			newRule(o, plantfill.FieldHardinessZone, "zone"),
			newRule(o, plantfill.FieldHeight, "height"),
			newRule(o, plantfill.FieldSpread, "spread"),
			newRule(o, plantfill.FieldSun, "sun"),
			newRule(o, plantfill.FieldWater, "water"),
			newRule(o, plantfill.FieldMaintenance, "maintenance"),
			newRule(o, plantfill.FieldTolerates, "tolerate"),
			newRule(o, plantfill.FieldAttracts, "attracts"),
			newRule(o, plantfill.FieldPlantType, "type"),
		},
		sections: rules{
			newRule(o, plantfill.FieldCulture, "culture"),
			newRule(o, plantfill.FieldUses, "uses"),
			newRule(o, plantfill.FieldProblems, "problems"),
		},
	}
}

// Source returns plantfill.SourceMBG.
func (p *MBGParser) Source() plantfill.Source {
	return plantfill.SourceMBG
}

// Parse extracts attributes and prose sections from a Plant Finder page.
func (p *MBGParser) Parse(html string) (plantfill.PartialRecord, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	out := plantfill.PartialRecord{}
	eachInlineLabel(doc.Selection, func(label *goquery.Selection) {
		p.attrs.apply(out, label.Text(), inlineValue(label))
	})
	doc.Find("h3, h4, h5").Each(func(_ int, h *goquery.Selection) {
		p.sections.apply(out, h.Text(), sectionText(h))
	})
	return out, nil
}
