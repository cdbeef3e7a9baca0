package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/raingarden/plantfill"
)

var _ plantfill.SiteParser = (*WildflowerParser)(nil)

// WildflowerParser parses Lady Bird Johnson Wildflower Center plant database
// pages. Each characteristic group is a heading followed by
// "<strong>Label:</strong> value" lines inside #pageContentWrapper.
type WildflowerParser struct {
	attrs rules
}

// NewWildflowerParser creates a new WildflowerParser.
func NewWildflowerParser(opts ...Option) *WildflowerParser {
	o := newOptions(opts)
	return &WildflowerParser{
		attrs: rules{
			newRule(o, plantfill.FieldBloomColor, "bloom color"),
			newRule(o, plantfill.FieldBloomTime, "bloom time"),
			newRule(o, plantfill.FieldNativeHabitats, "native habitat"),
			newRule(o, plantfill.FieldSun, "light requirement"),
			newRule(o, plantfill.FieldSoilDescription, "soil description"),
			newRule(o, plantfill.FieldWater, "soil moisture", "water use"),
			newRule(o, plantfill.FieldConditionComments, "conditions comments", "condition comments"),
			newRule(o, plantfill.FieldAttracts, "use wildlife", "attracts"),
			newRule(o, plantfill.FieldHeight, "size notes", "height"),
			newRule(o, plantfill.FieldPlantType, "habit"),
		},
	}
}

// Source returns plantfill.SourceWildflower.
func (p *WildflowerParser) Source() plantfill.Source {
	return plantfill.SourceWildflower
}

// Parse extracts the characteristic groups of a species page.
func (p *WildflowerParser) Parse(html string) (plantfill.PartialRecord, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, err
	}

	out := plantfill.PartialRecord{}
	eachInlineLabel(scopeOf(doc, "#pageContentWrapper"), func(label *goquery.Selection) {
		p.attrs.apply(out, label.Text(), inlineValue(label))
	})
	return out, nil
}
