// Package domain models Indian forest-statistics data and the reconciliation
// rules that make four independently sourced tables joinable.
//
// # Data Sources
//
// The four source tables come from separate publishers and agree on almost
// nothing except that rows describe Indian states and union territories:
//
//	Recorded Forest Area    India State of Forest Report (ISFR), name column "State/UTs"
//	Statewise Tree Cover    ISFR, name column "State/ Uts" (note the stray space)
//	Mangrove Cover          Dataful time series since 1987, name column "state", one row per (state, year)
//	Agro India States       rainfall table, name column "States"
//
// # Naming Conventions
//
// Region names vary by casing ("KERALA"), padding (" andhra pradesh "),
// abbreviation ("A & N Islands"), and vintage ("Orissa", "Pondicherry",
// "Uttaranchal"). Canonicalization is trim → title case → alias-table lookup;
// the result is one spelling per real-world region, and the function is
// idempotent so already-canonical names pass through unchanged. Empty name
// cells map to the "Unknown" sentinel rather than failing: the row's numbers
// still count toward totals even when its region is unidentifiable.
//
// The public India-states GeoJSON used for choropleth rendering has its own
// naming quirks ("Arunanchal Pradesh", "Andaman & Nicobar Island", "NCT of
// Delhi"), handled by a second alias pass in [GeometryName] and audited by
// cmd/mapdiff.
//
// # Numeric Conventions
//
// Area figures use Indian digit grouping: "2,75,069" is 275069 sq km, with
// commas after the last three digits and then every two. Stripping all commas
// before parsing handles both Indian and Western grouping. Missing values
// appear as "", "N/A", or "-" and coerce to 0.0 by policy; see
// [CoerceNumeric] for why that is deliberate and how failures are audited.
//
// # Master Table
//
// [BuildMaster] left-joins tree cover and rainfall onto the forest table,
// whose Region set and row order define the master exactly: no region is
// dropped, none is invented, and unmatched cells are zero-filled. The
// mangrove time series never enters the master; [MangroveSnapshot] joins one
// year transiently onto a copy when a view asks for it.
package domain
