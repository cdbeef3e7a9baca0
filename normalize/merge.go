package normalize

import (
	"strings"

	"github.com/raingarden/plantfill"
)

// MergeMonths merges two bloom periods into one contiguous month span:
// "Apr-May" and "Feb" give "Feb, Mar, Apr, May".
func MergeMonths(existing, incoming string) string {
	return MonthRange(concat(existing, incoming))
}

// MergeColors merges two color lists, keeping first-seen order.
func MergeColors(existing, incoming string) string {
	return ColorList(concat(existing, incoming))
}

// MergeList merges two comma-separated lists, keeping first-seen order
// across the existing then incoming items.
func MergeList(existing, incoming string) string {
	return List(concat(existing, incoming))
}

// MergeNotes appends incoming sentences that existing does not already hold.
func MergeNotes(existing, incoming string) string {
	switch {
	case strings.TrimSpace(existing) == "":
		return Notes(incoming)
	case strings.TrimSpace(incoming) == "":
		return Notes(existing)
	}
	return Notes(existing + "; " + incoming)
}

// Merge applies the additive merge policy for f. Non-additive fields return
// existing unchanged.
func Merge(f plantfill.Field, existing, incoming string) string {
	switch f {
	case plantfill.FieldBloomTime:
		return MergeMonths(existing, incoming)
	case plantfill.FieldBloomColor:
		return MergeColors(existing, incoming)
	case plantfill.FieldAttracts, plantfill.FieldTolerates:
		return MergeList(existing, incoming)
	case plantfill.FieldUseNotes, plantfill.FieldMaintenanceNotes:
		return MergeNotes(existing, incoming)
	}
	return existing
}

// Field re-applies the canonical normalizer for an additive field.
// Other fields are returned unchanged.
func Field(f plantfill.Field, v string) string {
	switch f {
	case plantfill.FieldBloomTime:
		return MonthRange(v)
	case plantfill.FieldBloomColor:
		return ColorList(v)
	case plantfill.FieldAttracts, plantfill.FieldTolerates:
		return List(v)
	case plantfill.FieldUseNotes, plantfill.FieldMaintenanceNotes:
		return Notes(v)
	}
	return v
}

func concat(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + ", " + b
}
