package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forestFixture() *Table {
	t := NewTable("forest", []string{"State/UTs", ColGeoArea, ColForestTotal, ColForest2005, ColRegion})
	add := func(region Region, geo, total, baseline float64) {
		t.Append(Row{
			Region: region,
			Values: map[string]float64{ColGeoArea: geo, ColForestTotal: total, ColForest2005: baseline},
			Labels: map[string]string{"State/UTs": string(region)},
		})
	}
	add("Andhra Pradesh", 162968, 275069, 44637)
	add("Sikkim", 7096, 5841, 5765)
	add("Kerala", 38852, 11309, 11268)
	add("Total", 3287469, 775288, 774740)
	return t
}

func treeFixture() *Table {
	t := NewTable("tree", []string{"State/ Uts", ColTreeCover, ColRegion})
	t.Append(Row{Region: "Andhra Pradesh", Values: map[string]float64{ColTreeCover: 1234}})
	t.Append(Row{Region: "Kerala", Values: map[string]float64{ColTreeCover: 2282}})
	// No Sikkim row: its master cell must become 0, not a gap.
	// Goa exists here but not in the anchor: it must not invent a master row.
	t.Append(Row{Region: "Goa", Values: map[string]float64{ColTreeCover: 232}})
	return t
}

func agroFixture() *Table {
	t := NewTable("agro", []string{"States", ColRainfall, ColRegion})
	t.Append(Row{Region: "Andhra Pradesh", Values: map[string]float64{ColRainfall: 912}})
	t.Append(Row{Region: "Sikkim", Values: map[string]float64{ColRainfall: 2739}})
	return t
}

func mangroveFixture() *Table {
	t := NewTable("mangrove", []string{"state", ColMangroveYear, ColMangroveArea, ColRegion})
	add := func(region Region, year, value float64) {
		t.Append(Row{Region: region, Values: map[string]float64{ColMangroveYear: year, ColMangroveArea: value}})
	}
	add("Andhra Pradesh", 2021, 405)
	add("Andhra Pradesh", 2023, 421)
	add("Kerala", 2023, 9)
	return t
}

func TestBuildMaster(t *testing.T) {
	master := BuildMaster(forestFixture(), treeFixture(), agroFixture())

	t.Run("row count equals anchor", func(t *testing.T) {
		assert.Equal(t, 4, master.Len())
	})

	t.Run("anchor order preserved", func(t *testing.T) {
		regions := make([]Region, 0, master.Len())
		for _, row := range master.Rows {
			regions = append(regions, row.Region)
		}
		assert.Equal(t, []Region{"Andhra Pradesh", "Sikkim", "Kerala", "Total"}, regions)
	})

	t.Run("matched join", func(t *testing.T) {
		row, ok := master.FirstMatch("Andhra Pradesh")
		require.True(t, ok)
		assert.Equal(t, 275069.0, row.Values[ColForestTotal])
		assert.Equal(t, 1234.0, row.Values[ColTreeCover])
		assert.Equal(t, 912.0, row.Values[ColRainfall])
	})

	t.Run("unmatched cells zero-filled", func(t *testing.T) {
		row, ok := master.FirstMatch("Sikkim")
		require.True(t, ok)
		tree, present := row.Values[ColTreeCover]
		assert.True(t, present, "cell must exist, not be absent")
		assert.Equal(t, 0.0, tree)
	})

	t.Run("non-anchor regions never invent rows", func(t *testing.T) {
		_, ok := master.FirstMatch("Goa")
		assert.False(t, ok)
	})

	t.Run("every numeric cell present and finite", func(t *testing.T) {
		for _, row := range master.Rows {
			for _, col := range []string{ColForestTotal, ColGeoArea, ColTreeCover, ColRainfall} {
				v, present := row.Values[col]
				assert.True(t, present, "%s missing %s", row.Region, col)
				assert.False(t, v != v, "%s has NaN %s", row.Region, col)
			}
		}
	})
}

func TestBuildMaster_DuplicateNonAnchorRows(t *testing.T) {
	tree := treeFixture()
	tree.Append(Row{Region: "Kerala", Values: map[string]float64{ColTreeCover: 9999}})

	master := BuildMaster(forestFixture(), tree, agroFixture())
	row, ok := master.FirstMatch("Kerala")
	require.True(t, ok)
	assert.Equal(t, 2282.0, row.Values[ColTreeCover], "first row in source order wins")
	assert.Equal(t, 4, master.Len(), "duplicates must not inflate the master")
}

func TestBuildMaster_NoRainfallColumn(t *testing.T) {
	agro := NewTable("agro", []string{"States", ColRegion})
	agro.Append(Row{Region: "Kerala", Labels: map[string]string{"States": "Kerala"}})

	master := BuildMaster(forestFixture(), treeFixture(), agro)
	assert.False(t, master.HasColumn(ColRainfall))
	row, _ := master.FirstMatch("Kerala")
	_, present := row.Values[ColRainfall]
	assert.False(t, present)
}

func TestMangroveSnapshot(t *testing.T) {
	master := BuildMaster(forestFixture(), treeFixture(), agroFixture())
	mangrove := mangroveFixture()

	snapshot := MangroveSnapshot(master, mangrove, 2023)

	col := MangroveSnapshotColumn(2023)
	assert.Equal(t, "Mangroves (2023)", col)
	require.True(t, snapshot.HasColumn(col))

	row, _ := snapshot.FirstMatch("Andhra Pradesh")
	assert.Equal(t, 421.0, row.Values[col])
	row, _ = snapshot.FirstMatch("Sikkim")
	assert.Equal(t, 0.0, row.Values[col], "inland state zero-filled")

	// The join is transient: the master itself gains nothing.
	assert.False(t, master.HasColumn(col))
	assert.Equal(t, master.Len(), snapshot.Len())
}

func TestMangroveYears(t *testing.T) {
	assert.Equal(t, []int{2021, 2023}, MangroveYears(mangroveFixture()))
	assert.Empty(t, MangroveYears(NewTable("mangrove", nil)))
}
