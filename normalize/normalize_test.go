package normalize_test

import (
	"strings"
	"testing"

	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/normalize"
	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	t.Parallel()

	t.Run("strips units and spaces the dash", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 - 3", normalize.Range("1-3 ft"))
	})

	t.Run("drops trailing zero decimals", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2", normalize.Range("2.0 feet"))
		assert.Equal(t, "1.5 - 2.5", normalize.Range("1.5 – 2.50'"))
	})

	t.Run("splits on the word to", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "3 - 6", normalize.Range("3.00 to 6.00 feet"))
	})

	t.Run("collapses an equal pair", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "3", normalize.Range("3 to 3 feet"))
	})

	t.Run("keeps at most two numbers", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "3 - 4", normalize.Range("3-4 ft. tall, spreading 2 ft"))
	})

	t.Run("converts inches to feet", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 - 1.5", normalize.Range("12-18 inches"))
		assert.Equal(t, "0.5 - 1", normalize.Range("6 in. to 12 in."))
		assert.Equal(t, "2", normalize.Range(`24"`))
		assert.Equal(t, "0.5 - 1", normalize.Range("6in-12in"))
	})

	t.Run("does not read the word in as a unit", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2 - 3", normalize.Range("2-3 in shade"))
		assert.Equal(t, "2", normalize.Range("Up to 2 tall in wet areas"))
	})

	t.Run("reads fractions as one number", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "0.5 - 1", normalize.Range("1/2 to 1 ft"))
		assert.Equal(t, "1.5 - 2", normalize.Range("1 1/2 - 2 feet"))
	})

	t.Run("returns text without numbers unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Varies", normalize.Range("  Varies "))
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, normalize.Range(""))
		assert.Empty(t, normalize.Range("   "))
	})
}

func TestMonthRange(t *testing.T) {
	t.Parallel()

	t.Run("abbreviates a two month range", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Apr, May", normalize.MonthRange("Apr-May"))
	})

	t.Run("expands endpoints to the contiguous span", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Jun, Jul, Aug", normalize.MonthRange("June to August"))
		assert.Equal(t, "Apr, May, Jun", normalize.MonthRange("Apr , Jun"))
	})

	t.Run("deduplicates months", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "May", normalize.MonthRange("May, may, MAY"))
	})

	t.Run("accepts long and irregular month spellings", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Sep, Oct", normalize.MonthRange("Sept - October"))
	})

	t.Run("ignores words that merely start like a month", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Jul", normalize.MonthRange("Marsh bloom in July"))
	})

	t.Run("reads lower-case may as a verb unless other months appear", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "may rebloom in fall", normalize.MonthRange("may rebloom in fall"))
		assert.Equal(t, "Apr, May", normalize.MonthRange("april to may"))
		assert.Equal(t, "May", normalize.MonthRange("May"))
	})

	t.Run("returns text without months unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Year round", normalize.MonthRange("Year  round"))
		assert.Empty(t, normalize.MonthRange(""))
	})
}

func TestColorList(t *testing.T) {
	t.Parallel()

	t.Run("splits on and", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Red, Yellow", normalize.ColorList("red and yellow"))
	})

	t.Run("deduplicates", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Red", normalize.ColorList("red, red"))
	})

	t.Run("splits on slash", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "White, Pink", normalize.ColorList("white/pink"))
	})

	t.Run("handles padded comma lists", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "White, Pink, Purple", normalize.ColorList("White , Pink , Purple"))
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, normalize.ColorList(" "))
	})
}

func TestConditionList(t *testing.T) {
	t.Parallel()

	t.Run("canonicalizes a known phrase", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Full Sun, Part Shade", normalize.ConditionList("full sun to part shade"))
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Full Sun", normalize.ConditionList("FULL SUN"))
	})

	t.Run("splits connector words", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Medium, Wet", normalize.ConditionList("medium to wet"))
		assert.Equal(t, "Dry, Medium, Wet", normalize.ConditionList("Dry & Medium or Wet"))
	})

	t.Run("keeps first-seen order without duplicates", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Part Shade, Full Sun", normalize.ConditionList("part shade, full sun, Part Shade"))
	})

	t.Run("applies extra phrases", func(t *testing.T) {
		t.Parallel()

		c := normalize.NewConditions(map[string]string{
			"Sun to Partial Shade": "Full Sun, Part Shade",
		})

		assert.Equal(t, "Full Sun, Part Shade", c.Normalize("sun to partial shade"))
		assert.Equal(t, "Full Sun, Part Shade", c.Normalize("full sun to part shade"))
	})

	t.Run("applies phrases per list segment", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Full Sun, Part Shade, Shade", normalize.ConditionList("full sun to part shade; shade"))
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("keeps first spelling of duplicates", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Deer, clay soil", normalize.List("Deer; clay soil, deer, Clay Soil."))
	})
}

func TestNotes(t *testing.T) {
	t.Parallel()

	t.Run("drops repeated sentences", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Cut back in fall", normalize.Notes("Cut back in fall;\ncut back in fall."))
	})

	t.Run("joins sentences with semicolons", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Rain gardens; Pollinator meadows", normalize.Notes("Rain gardens\nPollinator meadows"))
	})
}

func TestNormalizers_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "  ", "1-3 ft", "2.0 feet", "12-18 in", "Varies",
		"Apr-May", "June to August", "Year round",
		"red and yellow", "white/pink", "red, red",
		"full sun to part shade", "FULL SUN", "Medium to Wet",
		"Deer; clay soil, deer", "Cut back in fall;\ncut back in fall.",
		"2-3 in shade", "1/2 to 1 ft", "may rebloom in fall",
	}
	funcs := map[string]func(string) string{
		"Range":         normalize.Range,
		"MonthRange":    normalize.MonthRange,
		"ConditionList": normalize.ConditionList,
		"ColorList":     normalize.ColorList,
		"List":          normalize.List,
		"Notes":         normalize.Notes,
		"Text":          normalize.Text,
	}

	for name, f := range funcs {
		for _, in := range inputs {
			once := f(in)
			assert.Equal(t, once, f(once), "%s(%q)", name, in)
		}
	}
}

func TestMergeMonths(t *testing.T) {
	t.Parallel()

	t.Run("expands to the contiguous span of both inputs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Feb, Mar, Apr, May", normalize.MergeMonths("Apr-May", "Feb"))
	})

	t.Run("normalizes incoming when existing is empty", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Jun, Jul", normalize.MergeMonths("", "June-July"))
	})
}

func TestMergeColors(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "White, Pink, Purple", normalize.MergeColors("White, Pink", "pink/purple"))
}

func TestMergeList(t *testing.T) {
	t.Parallel()

	t.Run("appends new items in first-seen order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Bees, Butterflies, Birds", normalize.MergeList("Bees, Butterflies", "Birds"))
	})

	t.Run("result set does not depend on existing order", func(t *testing.T) {
		t.Parallel()

		a := normalize.MergeList("Bees, Butterflies", "Birds")
		b := normalize.MergeList("Butterflies, Bees", "Birds")

		assert.ElementsMatch(t, strings.Split(a, ", "), strings.Split(b, ", "))
	})

	t.Run("does not duplicate items already present", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Bees, Birds", normalize.MergeList("Bees, Birds", "birds, bees"))
	})
}

func TestMergeNotes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Cut back in spring; Divide every 3 years",
		normalize.MergeNotes("Cut back in spring", "Divide every 3 years; cut back in spring"))
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("dispatches by field", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Feb, Mar, Apr, May", normalize.Merge(plantfill.FieldBloomTime, "Apr-May", "Feb"))
		assert.Equal(t, "Red, Yellow", normalize.Merge(plantfill.FieldBloomColor, "Red", "yellow"))
		assert.Equal(t, "Bees, Birds", normalize.Merge(plantfill.FieldAttracts, "Bees", "Birds"))
	})

	t.Run("leaves non-additive fields alone", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Full Sun", normalize.Merge(plantfill.FieldSun, "Full Sun", "Shade"))
	})
}

func TestField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Apr, May", normalize.Field(plantfill.FieldBloomTime, "April - May"))
	assert.Equal(t, "raw text", normalize.Field(plantfill.FieldCulture, "raw text"))
}
