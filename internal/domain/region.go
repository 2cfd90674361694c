package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Region is the canonical name of an Indian state or union territory. It is
// the universal join key across all datasets: every table gets a Region
// column during loading, and the master merge matches rows on it.
type Region string

// Unknown is the sentinel Region for rows whose name cell is empty or
// whitespace. Such rows are kept (never dropped) so aggregate totals are
// preserved, but they will not match any geometry feature or other table.
const Unknown Region = "Unknown"

// AggregateRegion is the all-India summary row that some ISFR tables carry.
// It joins like any other region but is excluded from analysis views that
// rank or count states.
const AggregateRegion Region = "Total"

// Aliases maps title-cased variant spellings to their canonical Region.
// Keys are the form produced by title-casing, so lookup happens after that
// step. The table is data, not logic: extend it as the mapdiff tool surfaces
// new variants, without touching Canonicalize.
var Aliases = map[string]Region{
	"A & N Islands":               "Andaman & Nicobar Islands",
	"Andaman & Nicobar":           "Andaman & Nicobar Islands",
	"Andaman And Nicobar Islands": "Andaman & Nicobar Islands",
	"Jammu And Kashmir":           "Jammu & Kashmir",
	"J & K":                       "Jammu & Kashmir",
	"Dadra And Nagar Haveli":      "Dadra & Nagar Haveli",
	"Daman And Diu":               "Daman & Diu",
	"Orissa":                      "Odisha",
	"Pondicherry":                 "Puducherry",
	"Uttaranchal":                 "Uttarakhand",
	"Nct Of Delhi":                "Delhi",
}

// GeometryAliases maps canonical Regions to the spellings used by the public
// India-states GeoJSON resource (the "st_nm" feature property). The geometry
// file predates several renames and carries its own typos, so this is a
// separate pass from Aliases. Maintained via cmd/mapdiff.
var GeometryAliases = map[Region]string{
	"Arunachal Pradesh":         "Arunanchal Pradesh",
	"Andaman & Nicobar Islands": "Andaman & Nicobar Island",
	"Delhi":                     "NCT of Delhi",
	"Dadra & Nagar Haveli":      "Dadara & Nagar Havelli",
}

// Resolution classifies how a raw name mapped to its canonical Region.
// Fallthrough names are worth auditing: they may be legitimate spellings the
// alias table simply has no entry for, or variants it should learn.
type Resolution int

const (
	// ResolutionMissing means the input was empty and mapped to Unknown.
	ResolutionMissing Resolution = iota
	// ResolutionAlias means a known variant was corrected via Aliases.
	ResolutionAlias
	// ResolutionFallthrough means the title-cased name was used as-is.
	ResolutionFallthrough
)

// Canonicalize maps a raw, inconsistently cased and spaced region name to its
// canonical Region. It is pure and idempotent: canonical output fed back in
// resolves to itself.
func Canonicalize(raw string) Region {
	region, _ := Resolve(raw)
	return region
}

// Resolve is Canonicalize plus the Resolution describing how the name was
// matched. The loader uses the resolution to count unmapped names for
// alias-table maintenance.
func Resolve(raw string) (Region, Resolution) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Unknown, ResolutionMissing
	}
	// A cases.Caser is stateful, so build one per call; Resolve must stay
	// safe under concurrent request handlers.
	name = cases.Title(language.English).String(name)
	if canonical, ok := Aliases[name]; ok {
		return canonical, ResolutionAlias
	}
	return Region(name), ResolutionFallthrough
}

// GeometryName returns the spelling the geometry resource uses for a Region,
// falling back to the canonical name when no override exists.
func GeometryName(r Region) string {
	if name, ok := GeometryAliases[r]; ok {
		return name
	}
	return string(r)
}
