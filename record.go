package plantfill

import (
	"maps"
	"slices"
	"strings"
)

// Field names a column of the plant table. The value doubles as the column
// header used by table containers.
type Field string

// Known fields in canonical column order.
const (
	FieldBotanicalName     Field = "Botanical Name"
	FieldCommonName        Field = "Common Name"
	FieldKey               Field = "Key"
	FieldPlantType         Field = "Plant Type"
	FieldHeight            Field = "Height (ft)"
	FieldSpread            Field = "Spread (ft)"
	FieldBloomColor        Field = "Bloom Color"
	FieldBloomTime         Field = "Bloom Time"
	FieldSun               Field = "Sun"
	FieldWater             Field = "Water"
	FieldTolerates         Field = "Tolerates"
	FieldAttracts          Field = "Attracts"
	FieldSoilDescription   Field = "Soil Description"
	FieldConditionComments Field = "Condition Comments"
	FieldMaintenance       Field = "Maintenance"
	FieldNativeHabitats    Field = "Native Habitats"
	FieldCulture           Field = "Culture"
	FieldUses              Field = "Uses"
	FieldUseNotes          Field = "Use Notes"
	FieldMaintenanceNotes  Field = "Maintenance Notes"
	FieldProblems          Field = "Problems"
	FieldAGCPStatus        Field = "AGCP Regional Status"
	FieldHardinessZone     Field = "USDA Hardiness Zone"
	FieldLinkMBG           Field = "Link: Missouri Botanical Garden"
	FieldLinkWildflower    Field = "Link: Wildflower.org"
	FieldLinkPleasantRun   Field = "Link: Pleasant Run"
	FieldLinkNewMoon       Field = "Link: New Moon"
	FieldLinkPinelands     Field = "Link: Pinelands"
	FieldLinkOthers        Field = "Link: Others"
	FieldRev               Field = "Rev"
)

// NotAvailable marks a value a reviewer checked and found absent.
// It is only trusted on records carrying a Rev stamp.
const NotAvailable = "NA"

var knownFields = []Field{
	FieldBotanicalName, FieldCommonName, FieldKey, FieldPlantType,
	FieldHeight, FieldSpread, FieldBloomColor, FieldBloomTime,
	FieldSun, FieldWater, FieldTolerates, FieldAttracts,
	FieldSoilDescription, FieldConditionComments, FieldMaintenance,
	FieldNativeHabitats, FieldCulture, FieldUses, FieldUseNotes,
	FieldMaintenanceNotes, FieldProblems, FieldAGCPStatus, FieldHardinessZone,
	FieldLinkMBG, FieldLinkWildflower, FieldLinkPleasantRun, FieldLinkNewMoon,
	FieldLinkPinelands, FieldLinkOthers, FieldRev,
}

// KnownFields returns every known field in canonical column order.
func KnownFields() []Field {
	return append([]Field(nil), knownFields...)
}

// AdditiveFields returns the fields whose values accumulate across sources.
func AdditiveFields() []Field {
	return []Field{
		FieldBloomColor,
		FieldBloomTime,
		FieldAttracts,
		FieldTolerates,
		FieldUseNotes,
		FieldMaintenanceNotes,
	}
}

// IsAdditive reports whether values for f are merged rather than overwritten.
func IsAdditive(f Field) bool {
	return slices.Contains(AdditiveFields(), f)
}

// Record is one row of the plant table.
// Only fields the record carries can be written; the set of carried fields
// is fixed when the record is created.
type Record struct {
	values map[Field]string
}

// NewRecord returns a record carrying every known field, overlaid with values.
// Values for unknown fields are carried as well.
func NewRecord(values map[Field]string) *Record {
	r := &Record{values: make(map[Field]string, len(knownFields)+len(values))}
	for _, f := range knownFields {
		r.values[f] = ""
	}
	maps.Copy(r.values, values)
	return r
}

// RecordFrom returns a record carrying exactly the given fields.
func RecordFrom(values map[Field]string) *Record {
	r := &Record{values: make(map[Field]string, len(values))}
	maps.Copy(r.values, values)
	return r
}

// Get returns the value of f, or "" when the record does not carry it.
func (r *Record) Get(f Field) string {
	return r.values[f]
}

// Has reports whether the record carries f.
func (r *Record) Has(f Field) bool {
	_, ok := r.values[f]
	return ok
}

// Set writes v to f. It reports false and does nothing when the record does
// not carry f.
func (r *Record) Set(f Field, v string) bool {
	if !r.Has(f) {
		return false
	}
	r.values[f] = v
	return true
}

// Reviewed reports whether a reviewer has stamped the record.
func (r *Record) Reviewed() bool {
	return strings.TrimSpace(r.values[FieldRev]) != ""
}

// Missing reports whether f still needs a value: it is empty, or it holds
// NotAvailable on a record nobody has reviewed yet.
// A field the record does not carry is never missing since it cannot be filled.
func (r *Record) Missing(f Field) bool {
	v, ok := r.values[f]
	if !ok {
		return false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return true
	}
	return v == NotAvailable && !r.Reviewed()
}

// Name returns the trimmed botanical name.
func (r *Record) Name() string {
	return strings.TrimSpace(r.values[FieldBotanicalName])
}

// Fields returns the carried fields: known fields first in canonical order,
// then any others in lexical order.
func (r *Record) Fields() []Field {
	fields := make([]Field, 0, len(r.values))
	for _, f := range knownFields {
		if r.Has(f) {
			fields = append(fields, f)
		}
	}
	var extra []Field
	for f := range r.values {
		if !slices.Contains(knownFields, f) {
			extra = append(extra, f)
		}
	}
	slices.Sort(extra)
	return append(fields, extra...)
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	return RecordFrom(r.values)
}

// Values returns a copy of the record's fields and values.
func (r *Record) Values() map[Field]string {
	return maps.Clone(r.values)
}

// Table is an ordered collection of records with the column order they were
// loaded in.
type Table struct {
	Header  []Field
	Records []*Record
}

// OtherLink is one entry of the structured "other links" collection.
type OtherLink struct {
	Tag   string
	URL   string
	Label string
}

// ParseOtherLinks parses the "[tag,url,label];[tag,url,label]" form.
// Malformed entries are dropped.
func ParseOtherLinks(s string) []OtherLink {
	var links []OtherLink
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "[")
		part = strings.TrimSuffix(part, "]")
		first := strings.Index(part, ",")
		last := strings.LastIndex(part, ",")
		if first < 0 || first == last {
			continue
		}
		link := OtherLink{
			Tag:   strings.TrimSpace(part[:first]),
			URL:   strings.TrimSpace(part[first+1 : last]),
			Label: strings.TrimSpace(part[last+1:]),
		}
		if link.URL == "" {
			continue
		}
		links = append(links, link)
	}
	return links
}

// FormatOtherLinks is the inverse of ParseOtherLinks.
func FormatOtherLinks(links []OtherLink) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		parts = append(parts, "["+l.Tag+","+l.URL+","+l.Label+"]")
	}
	return strings.Join(parts, ";")
}
