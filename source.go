package plantfill

import (
	"net/url"
	"slices"
	"strings"
)

// Source identifies one external website publishing plant attributes.
type Source string

// Known sources. Sources returns them in enrichment priority order.
const (
	SourceMBG         Source = "mbg"
	SourceWildflower  Source = "wildflower"
	SourcePleasantRun Source = "pleasantrun"
	SourceNewMoon     Source = "newmoon"
	SourcePinelands   Source = "pinelands"
)

// Sources returns every known source, highest priority first.
func Sources() []Source {
	return []Source{
		SourceMBG,
		SourceWildflower,
		SourcePleasantRun,
		SourceNewMoon,
		SourcePinelands,
	}
}

// ParseSource converts a source identifier into a Source.
func ParseSource(s string) (Source, error) {
	src := Source(s)
	if !slices.Contains(Sources(), src) {
		return "", Errorf(EINVALID, "unknown source %q", s)
	}
	return src, nil
}

// Name returns the human-readable site name.
func (s Source) Name() string {
	switch s {
	case SourceMBG:
		return "Missouri Botanical Garden"
	case SourceWildflower:
		return "Lady Bird Johnson Wildflower Center"
	case SourcePleasantRun:
		return "Pleasant Run Nursery"
	case SourceNewMoon:
		return "New Moon Nursery"
	case SourcePinelands:
		return "Pinelands Nursery"
	}
	return string(s)
}

// LinkField returns the record field holding the source's page URL.
func (s Source) LinkField() Field {
	switch s {
	case SourceMBG:
		return FieldLinkMBG
	case SourceWildflower:
		return FieldLinkWildflower
	case SourcePleasantRun:
		return FieldLinkPleasantRun
	case SourceNewMoon:
		return FieldLinkNewMoon
	case SourcePinelands:
		return FieldLinkPinelands
	}
	return ""
}

// Fields returns the fields the source is able to supply.
func (s Source) Fields() []Field {
	switch s {
	case SourceMBG:
		return []Field{
			FieldPlantType, FieldHardinessZone, FieldHeight, FieldSpread,
			FieldBloomTime, FieldBloomColor, FieldSun, FieldWater,
			FieldMaintenance, FieldTolerates, FieldAttracts, FieldNativeHabitats,
			FieldCulture, FieldUses, FieldProblems,
		}
	case SourceWildflower:
		return []Field{
			FieldPlantType, FieldBloomColor, FieldBloomTime, FieldHeight,
			FieldSun, FieldWater, FieldSoilDescription, FieldConditionComments,
			FieldNativeHabitats, FieldAttracts,
		}
	case SourcePleasantRun:
		return []Field{
			FieldPlantType, FieldHeight, FieldSpread, FieldBloomColor,
			FieldBloomTime, FieldSun, FieldWater, FieldAttracts,
			FieldTolerates, FieldMaintenanceNotes,
		}
	case SourceNewMoon:
		return []Field{
			FieldHeight, FieldSpread, FieldBloomColor, FieldBloomTime,
			FieldSun, FieldWater, FieldAttracts, FieldTolerates,
			FieldUseNotes, FieldMaintenanceNotes,
		}
	case SourcePinelands:
		return []Field{
			FieldHeight, FieldSpread, FieldBloomColor, FieldBloomTime,
			FieldSun, FieldWater, FieldNativeHabitats, FieldAttracts,
			FieldTolerates, FieldAGCPStatus,
		}
	}
	return nil
}

// Supplies reports whether the source can supply f.
func (s Source) Supplies(f Field) bool {
	return slices.Contains(s.Fields(), f)
}

// Host returns the registrable domain the source publishes under.
func (s Source) Host() string {
	switch s {
	case SourceMBG:
		return "missouribotanicalgarden.org"
	case SourceWildflower:
		return "wildflower.org"
	case SourcePleasantRun:
		return "pleasantrunnursery.com"
	case SourceNewMoon:
		return "newmoonnursery.com"
	case SourcePinelands:
		return "pinelandsnursery.com"
	}
	return ""
}

// SourceForURL returns the source whose host serves rawURL.
// Subdomains such as www. match their parent domain.
func SourceForURL(rawURL string) (Source, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	for _, src := range Sources() {
		h := src.Host()
		if host == h || strings.HasSuffix(host, "."+h) {
			return src, true
		}
	}
	return "", false
}
