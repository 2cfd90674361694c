package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	master := BuildMaster(forestFixture(), treeFixture(), agroFixture())
	s := Summarize(master)

	// The "Total" aggregate row is excluded so national totals are not
	// double-counted.
	assert.Equal(t, 3, s.StateCount)
	assert.Equal(t, 275069.0+5841+11309, s.TotalForestArea)
	assert.Equal(t, 1234.0+0+2282, s.TotalTreeCover)
	assert.Equal(t, 44637.0+5765+11268, s.Baseline2005Total)
	assert.InDelta(t, (s.TotalForestArea-s.Baseline2005Total)/s.Baseline2005Total*100, s.PctChangeSince2005, 1e-9)
}

func TestSummarize_NoBaseline(t *testing.T) {
	master := NewTable("master", []string{ColRegion, ColForestTotal})
	master.Append(Row{Region: "Goa", Values: map[string]float64{ColForestTotal: 1224}})

	s := Summarize(master)
	assert.Equal(t, 0.0, s.PctChangeSince2005)
}

func TestLeaderboard(t *testing.T) {
	master := BuildMaster(forestFixture(), treeFixture(), agroFixture())
	gainers, losers := Leaderboard(master, 2)

	// Deltas: Andhra Pradesh 275069-44637, Sikkim 5841-5765=76, Kerala 11309-11268=41.
	require.Len(t, gainers, 2)
	assert.Equal(t, Region("Andhra Pradesh"), gainers[0].Region)
	assert.Equal(t, Region("Sikkim"), gainers[1].Region)

	require.Len(t, losers, 2)
	assert.Equal(t, Region("Kerala"), losers[0].Region)
	assert.Equal(t, Region("Sikkim"), losers[1].Region)

	for _, d := range append(gainers, losers...) {
		assert.NotEqual(t, AggregateRegion, d.Region, "aggregate row must not rank")
	}
}

func TestLeaderboard_NLargerThanStates(t *testing.T) {
	master := BuildMaster(forestFixture(), treeFixture(), agroFixture())
	gainers, losers := Leaderboard(master, 50)
	assert.Len(t, gainers, 3)
	assert.Len(t, losers, 3)
}

func TestProfileState(t *testing.T) {
	master := BuildMaster(forestFixture(), treeFixture(), agroFixture())
	mangrove := mangroveFixture()

	t.Run("raw name resolves", func(t *testing.T) {
		profile, ok := ProfileState(master, mangrove, "  ANDHRA PRADESH ")
		require.True(t, ok)
		assert.Equal(t, Region("Andhra Pradesh"), profile.Region)
		assert.Equal(t, 275069.0, profile.ForestArea)
		assert.Equal(t, 1234.0, profile.TreeCover)
		assert.Equal(t, 912.0, profile.Rainfall)
		assert.Equal(t, 2023, profile.MangroveYear, "latest reported year")
		assert.Equal(t, 421.0, profile.MangroveArea)
	})

	t.Run("inland state has no mangrove reading", func(t *testing.T) {
		profile, ok := ProfileState(master, mangrove, "Sikkim")
		require.True(t, ok)
		assert.Equal(t, 0.0, profile.MangroveArea)
		assert.Zero(t, profile.MangroveYear)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, ok := ProfileState(master, mangrove, "Atlantis")
		assert.False(t, ok)
	})
}
