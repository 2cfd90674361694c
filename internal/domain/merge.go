package domain

import (
	"fmt"
	"sort"
)

// Column names as they appear in the source CSV headers. The cleaned tables
// keep the original headers so columns stay traceable to their source files.
const (
	ColRegion       = "State"
	ColForestTotal  = "Recorded Forest Area - Total"
	ColGeoArea      = "Geographical Area"
	ColForest2005   = "Recorded Forest Area as in SFR 2005"
	ColReserved     = "Recorded Forest Area - Reserved Forests"
	ColProtected    = "Recorded Forest Area - Protected Forests"
	ColUnclassed    = "Recorded Forest Area - Unclassed Forests"
	ColTreeCover    = "Tree Cover - Area"
	ColRainfall     = "Precipitation_mm"
	ColMangroveYear = "year"
	ColMangroveArea = "value"
)

// BuildMaster denormalizes the cleaned tables into one row per anchor Region.
//
// The forest table is the anchor: its Region set and row order define the
// master exactly. Tree cover and rainfall are left-joined onto it; a region
// present in tree or agro but missing from forest contributes nothing (the
// anchor defines the universe of reportable regions), and an anchor region
// missing from tree or agro gets 0.0, never an absent cell. Regions that
// appear more than once in a joined table reduce to their first row in
// source order (see Table.FirstMatch).
//
// The mangrove table is deliberately not merged here: it is a time series,
// and folding one year into the master would silently privilege that year.
// See MangroveSnapshot.
func BuildMaster(forest, tree, agro *Table) *Table {
	columns := make([]string, 0, len(forest.Columns))
	for _, c := range forest.Columns {
		if c == ColRegion || isForestNumeric(c) {
			columns = append(columns, c)
		}
	}
	columns = append(columns, ColTreeCover)

	joinRainfall := agro != nil && agro.HasColumn(ColRainfall)
	if joinRainfall {
		columns = append(columns, ColRainfall)
	}

	master := NewTable("master", columns)
	for i := range forest.Rows {
		anchor := forest.Rows[i]
		row := Row{
			Region: anchor.Region,
			Values: make(map[string]float64, len(anchor.Values)+2),
		}
		for k, v := range anchor.Values {
			row.Values[k] = v
		}

		if match, ok := tree.FirstMatch(anchor.Region); ok {
			row.Values[ColTreeCover] = match.Values[ColTreeCover]
		} else {
			row.Values[ColTreeCover] = 0
		}

		if joinRainfall {
			if match, ok := agro.FirstMatch(anchor.Region); ok {
				row.Values[ColRainfall] = match.Values[ColRainfall]
			} else {
				row.Values[ColRainfall] = 0
			}
		}

		master.Append(row)
	}
	return master
}

func isForestNumeric(column string) bool {
	switch column {
	case ColForestTotal, ColGeoArea, ColForest2005, ColReserved, ColProtected, ColUnclassed:
		return true
	}
	return false
}

// MangroveSnapshotColumn names the derived column for a given snapshot year.
func MangroveSnapshotColumn(year int) string {
	return fmt.Sprintf("Mangroves (%d)", year)
}

// MangroveSnapshot returns a copy of the master table extended with mangrove
// cover for one year. The join is transient: the master itself is never
// mutated, so no year is baked in as a permanent column. Regions without a
// mangrove reading for that year (most inland states) get 0.0.
func MangroveSnapshot(master, mangrove *Table, year int) *Table {
	values := make(map[Region]float64)
	for i := range mangrove.Rows {
		row := mangrove.Rows[i]
		if int(row.Values[ColMangroveYear]) != year {
			continue
		}
		if _, ok := values[row.Region]; ok {
			continue // first match in source order wins
		}
		values[row.Region] = row.Values[ColMangroveArea]
	}

	snapshot := master.Clone()
	snapshot.AppendColumn(MangroveSnapshotColumn(year), values)
	return snapshot
}

// MangroveYears returns the distinct years present in the mangrove time
// series, ascending. Used to validate snapshot requests and to pick the
// latest year for state profiles.
func MangroveYears(mangrove *Table) []int {
	seen := make(map[int]struct{})
	for i := range mangrove.Rows {
		seen[int(mangrove.Rows[i].Values[ColMangroveYear])] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
