package domain

import "sort"

// Summary holds the national headline numbers for the executive view.
type Summary struct {
	TotalForestArea    float64 `json:"total_forest_area"`
	TotalTreeCover     float64 `json:"total_tree_cover"`
	StateCount         int     `json:"state_count"`
	Baseline2005Total  float64 `json:"baseline_2005_total"`
	PctChangeSince2005 float64 `json:"pct_change_since_2005"`
}

// Summarize computes national totals from the master table. The all-India
// aggregate row, when present, is skipped so totals are not double-counted.
// The percent change is against the SFR 2005 baseline column and is zero
// when the baseline is absent or empty.
func Summarize(master *Table) Summary {
	var s Summary
	for i := range master.Rows {
		row := master.Rows[i]
		if row.Region == AggregateRegion || row.Region == Unknown {
			continue
		}
		s.TotalForestArea += row.Values[ColForestTotal]
		s.TotalTreeCover += row.Values[ColTreeCover]
		s.Baseline2005Total += row.Values[ColForest2005]
		s.StateCount++
	}
	if s.Baseline2005Total > 0 {
		s.PctChangeSince2005 = (s.TotalForestArea - s.Baseline2005Total) / s.Baseline2005Total * 100
	}
	return s
}

// Delta is one state's forest-area change against the SFR 2005 baseline.
type Delta struct {
	Region   Region  `json:"region"`
	Current  float64 `json:"current"`
	Baseline float64 `json:"baseline"`
	Delta    float64 `json:"delta"`
}

// Leaderboard ranks states by forest-area change since the 2005 baseline and
// returns the top n gainers (largest positive delta first) and top n losers
// (largest loss first). The aggregate and Unknown rows are excluded. Ties
// break on region name so the ranking is deterministic.
func Leaderboard(master *Table, n int) (gainers, losers []Delta) {
	deltas := make([]Delta, 0, master.Len())
	for i := range master.Rows {
		row := master.Rows[i]
		if row.Region == AggregateRegion || row.Region == Unknown {
			continue
		}
		current := row.Values[ColForestTotal]
		baseline := row.Values[ColForest2005]
		deltas = append(deltas, Delta{
			Region:   row.Region,
			Current:  current,
			Baseline: baseline,
			Delta:    current - baseline,
		})
	}

	sort.SliceStable(deltas, func(i, j int) bool {
		if deltas[i].Delta != deltas[j].Delta {
			return deltas[i].Delta > deltas[j].Delta
		}
		return deltas[i].Region < deltas[j].Region
	})

	if n > len(deltas) {
		n = len(deltas)
	}
	gainers = append(gainers, deltas[:n]...)

	losers = make([]Delta, 0, n)
	for i := len(deltas) - 1; i >= len(deltas)-n; i-- {
		losers = append(losers, deltas[i])
	}
	return gainers, losers
}

// StateProfile is the drill-down view for one state: its master-row numbers
// plus the most recent mangrove reading.
type StateProfile struct {
	Region       Region  `json:"region"`
	ForestArea   float64 `json:"forest_area"`
	GeoArea      float64 `json:"geographical_area"`
	TreeCover    float64 `json:"tree_cover"`
	Rainfall     float64 `json:"rainfall_mm"`
	MangroveArea float64 `json:"mangrove_area"`
	MangroveYear int     `json:"mangrove_year,omitempty"`
}

// ProfileState looks up one state by (possibly raw) name. The name goes
// through Canonicalize, so " kerala " and "KERALA" both resolve. The mangrove
// figure is the sum of that state's readings in the latest year it reports;
// states with no mangrove series report 0 with no year.
func ProfileState(master, mangrove *Table, name string) (StateProfile, bool) {
	region := Canonicalize(name)
	row, ok := master.FirstMatch(region)
	if !ok {
		return StateProfile{}, false
	}

	profile := StateProfile{
		Region:     region,
		ForestArea: row.Values[ColForestTotal],
		GeoArea:    row.Values[ColGeoArea],
		TreeCover:  row.Values[ColTreeCover],
		Rainfall:   row.Values[ColRainfall],
	}

	latest := 0
	for i := range mangrove.Rows {
		if mangrove.Rows[i].Region != region {
			continue
		}
		if y := int(mangrove.Rows[i].Values[ColMangroveYear]); y > latest {
			latest = y
		}
	}
	if latest > 0 {
		profile.MangroveYear = latest
		for i := range mangrove.Rows {
			r := mangrove.Rows[i]
			if r.Region == region && int(r.Values[ColMangroveYear]) == latest {
				profile.MangroveArea += r.Values[ColMangroveArea]
			}
		}
	}
	return profile, true
}
