// Command genfixtures writes the four sample CSV fixtures used for local
// development and as a realistic corpus for manual testing. The fixtures
// deliberately preserve the source files' warts: Indian digit grouping,
// inconsistent name-column headers, stray whitespace, legacy state names, and
// "N/A" placeholders, so a pipeline that handles these handles the real data.
//
// Usage:
//
//	go run ./cmd/genfixtures -out-dir data
//
// The file names match config.DefaultManifest, so the standard manifest in
// config/datasets.yaml points at the generated files unchanged.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out-dir", "data", "directory to write the CSV fixtures into")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fixtures := []struct {
		file string
		rows [][]string
	}{
		{"Recorded_Forest_Area.csv", forestRows},
		{"StatewiseTreeCover.csv", treeRows},
		{"mangrove_forest_cover.csv", mangroveRows},
		{"Agro_India_States.csv", agroRows},
	}

	for _, fx := range fixtures {
		path := filepath.Join(*outDir, fx.file)
		if err := writeCSV(path, fx.rows); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d rows)\n", path, len(fx.rows)-1)
	}
	return nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

// Areas in sq km from ISFR 2021, rounded. The name column reproduces the
// published file's mixed casing and padding.
var forestRows = [][]string{
	{"State/UTs", "Geographical Area", "Recorded Forest Area - Total", "Recorded Forest Area as in SFR 2005", "Recorded Forest Area - Reserved Forests", "Recorded Forest Area - Protected Forests", "Recorded Forest Area - Unclassed Forests"},
	{" andhra pradesh ", "1,62,968", "37,258", "44,637", "31,960", "3,936", "1,362"},
	{"Arunachal Pradesh", "83,743", "51,407", "51,540", "10,546", "9,528", "31,333"},
	{"Assam", "78,438", "26,832", "27,018", "17,864", "8,968", "N/A"},
	{"Chhattisgarh", "1,35,192", "59,772", "59,772", "25,897", "24,036", "9,839"},
	{"Goa", "3,702", "1,224", "1,224", "253", "0", "971"},
	{"Gujarat", "1,96,244", "21,647", "18,999", "14,155", "2,897", "4,595"},
	{"Jammu And Kashmir", "2,22,236", "20,230", "20,230", "17,643", "2,551", "36"},
	{"Kerala", "38,852", "11,309", "11,268", "11,123", "186", "0"},
	{"Madhya Pradesh", "3,08,252", "94,689", "95,221", "61,886", "31,098", "1,705"},
	{"Maharashtra", "3,07,713", "61,579", "61,939", "49,546", "6,733", "5,300"},
	{"ORISSA", "1,55,707", "61,204", "58,136", "26,329", "15,525", "19,350"},
	{"Sikkim", "7,096", "5,841", "5,765", "5,452", "389", "0"},
	{"Tamil Nadu", "1,30,060", "22,877", "22,871", "20,293", "2,323", "261"},
	{"Uttaranchal", "53,483", "38,000", "34,662", "26,547", "9,885", "1,568"},
	{"West Bengal", "88,752", "11,879", "11,879", "7,054", "3,772", "1,053"},
	{"A & N Islands", "8,249", "7,171", "7,171", "2,929", "4,242", "0"},
	{"Pondicherry", "490", "13", "N/A", "0", "2", "11"},
	{"Total", "32,87,469", "7,75,288", "7,74,740", "4,34,853", "2,18,924", "1,21,511"},
}

// Note the header really is "State/ Uts" with a space; Sikkim is absent from
// the published tree-cover table, which exercises the zero-fill join.
var treeRows = [][]string{
	{"State/ Uts", "Tree Cover - Area"},
	{"Andhra Pradesh", "4,295"},
	{"Arunachal Pradesh", "746"},
	{"Assam", "1,564"},
	{"Chhattisgarh", "4,141"},
	{"Goa", "232"},
	{"Gujarat", "6,295"},
	{"Jammu & Kashmir", "2,867"},
	{"Kerala", "2,282"},
	{"Madhya Pradesh", "8,054"},
	{"Maharashtra", "10,806"},
	{"Odisha", "4,013"},
	{"Tamil Nadu", "4,687"},
	{"Uttarakhand", "1,001"},
	{"West Bengal", "2,006"},
	{"Andaman & Nicobar", "41"},
	{"Puducherry", "52"},
}

// Cover in sq km; only coastal states report.
var mangroveRows = [][]string{
	{"state", "year", "value"},
	{"Andhra Pradesh", "2019", "404"},
	{"Andhra Pradesh", "2021", "405"},
	{"Andhra Pradesh", "2023", "421"},
	{"Goa", "2019", "26"},
	{"Goa", "2021", "27"},
	{"Goa", "2023", "31"},
	{"Gujarat", "2019", "1,177"},
	{"Gujarat", "2021", "1,175"},
	{"Gujarat", "2023", "1,164"},
	{"Kerala", "2019", "9"},
	{"Kerala", "2021", "9"},
	{"Kerala", "2023", "9"},
	{"Maharashtra", "2019", "320"},
	{"Maharashtra", "2021", "324"},
	{"Maharashtra", "2023", "325"},
	{"Odisha", "2019", "251"},
	{"Odisha", "2021", "259"},
	{"Odisha", "2023", "267"},
	{"Tamil Nadu", "2019", "45"},
	{"Tamil Nadu", "2021", "45"},
	{"Tamil Nadu", "2023", "53"},
	{"West Bengal", "2019", "2,112"},
	{"West Bengal", "2021", "2,114"},
	{"West Bengal", "2023", "2,119"},
	{"A & N Islands", "2019", "616"},
	{"A & N Islands", "2021", "616"},
	{"A & N Islands", "2023", "613"},
}

// Annual precipitation, mm.
var agroRows = [][]string{
	{"States", "Precipitation_mm"},
	{"Andhra Pradesh", "912"},
	{"Arunachal Pradesh", "2,782"},
	{"Assam", "2,818"},
	{"Chhattisgarh", "1,338"},
	{"Goa", "3,005"},
	{"Gujarat", "803"},
	{"Jammu & Kashmir", "1,011"},
	{"Kerala", "3,055"},
	{"Madhya Pradesh", "1,178"},
	{"Maharashtra", "1,181"},
	{"Odisha", "1,489"},
	{"Sikkim", "2,739"},
	{"Tamil Nadu", "998"},
	{"Uttarakhand", "1,523"},
	{"West Bengal", "1,806"},
}
