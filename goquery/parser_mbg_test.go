package goquery_test

import (
	"testing"

	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mbgPage = `<!DOCTYPE html>
<html>
<head>
<title>Asclepias tuberosa - Plant Finder</title>
<link rel="canonical" href="https://www.missouribotanicalgarden.org/PlantFinder/PlantFinderDetails.aspx?taxonid=277122">
</head>
<body>
<div class="row">
	<div class="column-right">
		<strong>Common Name:</strong> butterfly weed<br>
		<strong>Type:</strong> Herbaceous perennial<br>
		<strong>Family:</strong> Apocynaceae<br>
		<strong>Native Range:</strong> Eastern and southern United States<br>
		<strong>Zone:</strong> 3 to 9<br>
		<strong>Height:</strong> 1.00 to 2.50 feet<br>
		<strong>Spread:</strong> 1.00 to 1.50 feet<br>
		<strong>Bloom Time:</strong> June to August<br>
		<strong>Bloom Description:</strong> Orange<br>
		<strong>Sun:</strong> Full sun<br>
		<strong>Water:</strong> Dry to medium<br>
		<strong>Maintenance:</strong> Low<br>
		<strong>Suggested Use:</strong> Naturalize<br>
		<strong>Flower:</strong> Showy<br>
		<strong>Attracts:</strong> Hummingbirds, Butterflies<br>
		<strong>Tolerate:</strong> Deer, Drought, Erosion, Dry Soil<br>
	</div>
</div>
<h5>Culture</h5>
<p>Easily grown in dry to medium,
well-drained soils in full sun.</p>
<h5>Noteworthy Characteristics</h5>
<p>Tuberous-rooted perennial.</p>
<h5>Problems</h5>
<p>No serious insect or disease problems.</p>
<h5>Garden Uses</h5>
<p>Borders, meadows, prairies.</p>
</body>
</html>`

func TestMBGParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts attribute block and prose sections", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewMBGParser()
		got, err := p.Parse(mbgPage)

		require.NoError(t, err)
		assert.Equal(t, plantfill.PartialRecord{
			plantfill.FieldPlantType:      "Herbaceous perennial",
			plantfill.FieldNativeHabitats: "Eastern and southern United States",
			plantfill.FieldHardinessZone:  "3 to 9",
			plantfill.FieldHeight:         "1 - 2.5",
			plantfill.FieldSpread:         "1 - 1.5",
			plantfill.FieldBloomTime:      "Jun, Jul, Aug",
			plantfill.FieldBloomColor:     "Orange",
			plantfill.FieldSun:            "Full Sun",
			plantfill.FieldWater:          "Dry, Medium",
			plantfill.FieldMaintenance:    "Low",
			plantfill.FieldAttracts:       "Hummingbirds, Butterflies",
			plantfill.FieldTolerates:      "Deer, Drought, Erosion, Dry Soil",
			plantfill.FieldCulture:        "Easily grown in dry to medium, well-drained soils in full sun.",
			plantfill.FieldProblems:       "No serious insect or disease problems.",
			plantfill.FieldUses:           "Borders, meadows, prairies.",
		}, got)
	})

	t.Run("returns only the fields the page mentions", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><strong>Height:</strong> 3 feet<br><strong>Sun:</strong> Part shade</div></body></html>`

		p := goquery.NewMBGParser()
		got, err := p.Parse(html)

		require.NoError(t, err)
		assert.Equal(t, plantfill.PartialRecord{
			plantfill.FieldHeight: "3",
			plantfill.FieldSun:    "Part Shade",
		}, got)
	})

	t.Run("returns empty record for unrelated page", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewMBGParser()
		got, err := p.Parse(`<html><body><p>Page not found</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ignores bold text that is not a label", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p><strong>Water</strong> is important.</p></body></html>`

		p := goquery.NewMBGParser()
		got, err := p.Parse(html)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("uses configured condition phrases", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div><strong>Sun:</strong> Sun to part shade</div></body></html>`
		conditions := plantfillConditions(map[string]string{"sun to part shade": "Full Sun, Part Shade"})

		p := goquery.NewMBGParser(goquery.WithConditions(conditions))
		got, err := p.Parse(html)

		require.NoError(t, err)
		assert.Equal(t, "Full Sun, Part Shade", got[plantfill.FieldSun])
	})

	t.Run("reports its source", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, plantfill.SourceMBG, goquery.NewMBGParser().Source())
	})
}
