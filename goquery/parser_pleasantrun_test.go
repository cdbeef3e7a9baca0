package goquery_test

import (
	"testing"

	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPleasantRunParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts attribute table", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="product-single">
<table class="specs">
	<tr><th>Plant Type</th><td>Perennial</td></tr>
	<tr><th>Height</th><td>18-24 inches</td></tr>
	<tr><th>Spread</th><td>12-18"</td></tr>
	<tr><th>Flower Color</th><td>orange/yellow</td></tr>
	<tr><th>Bloom Time</th><td>Summer: June - August</td></tr>
	<tr><th>Sun Exposure</th><td>Full Sun</td></tr>
	<tr><th>Soil Moisture</th><td>Dry, Average</td></tr>
	<tr><th>Attracts</th><td>Butterflies; Bees</td></tr>
	<tr><th>Tolerates</th><td>Drought, Deer</td></tr>
	<tr><th>Maintenance</th><td>Cut back in late winter.</td></tr>
	<tr><th>Price</th><td>$12.00</td></tr>
</table>
</div>
</body></html>`

		p := goquery.NewPleasantRunParser()
		got, err := p.Parse(html)

		require.NoError(t, err)
		assert.Equal(t, plantfill.PartialRecord{
			plantfill.FieldPlantType:        "Perennial",
			plantfill.FieldHeight:           "1.5 - 2",
			plantfill.FieldSpread:           "1 - 1.5",
			plantfill.FieldBloomColor:       "Orange, Yellow",
			plantfill.FieldBloomTime:        "Jun, Jul, Aug",
			plantfill.FieldSun:              "Full Sun",
			plantfill.FieldWater:            "Dry, Average",
			plantfill.FieldAttracts:         "Butterflies, Bees",
			plantfill.FieldTolerates:        "Drought, Deer",
			plantfill.FieldMaintenanceNotes: "Cut back in late winter.",
		}, got)
	})

	t.Run("falls back to labeled description items", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="product-description">
	<ul>
		<li>Height: 2-3 ft</li>
		<li>Light: part shade</li>
		<li>Native to the eastern US</li>
	</ul>
</div>
</body></html>`

		p := goquery.NewPleasantRunParser()
		got, err := p.Parse(html)

		require.NoError(t, err)
		assert.Equal(t, plantfill.PartialRecord{
			plantfill.FieldHeight: "2 - 3",
			plantfill.FieldSun:    "Part Shade",
		}, got)
	})

	t.Run("ignores foliage colors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="product-single">
<table class="specs">
	<tr><th>Foliage Color</th><td>Green</td></tr>
	<tr><th>Flower Color</th><td>Purple</td></tr>
	<tr><th>Fall Color</th><td>Red</td></tr>
</table>
</div>
</body></html>`

		p := goquery.NewPleasantRunParser()
		got, err := p.Parse(html)

		require.NoError(t, err)
		assert.Equal(t, plantfill.PartialRecord{
			plantfill.FieldBloomColor: "Purple",
		}, got)
	})

	t.Run("reports its source", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, plantfill.SourcePleasantRun, goquery.NewPleasantRunParser().Source())
	})
}
