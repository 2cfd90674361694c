// Command mapdiff diffs the master table's Region set against the geometry
// resource's region names. It is the maintenance tool for the two alias
// tables: a region listed under "data only" needs a GeometryAliases entry (or
// the geometry file genuinely lacks the polygon); one under "geometry only"
// will render as an empty polygon on the choropleth.
//
// Usage:
//
//	go run ./cmd/mapdiff \
//	  -manifest config/datasets.yaml \
//	  -geojson-url https://example.com/india_states.geojson
//
// Exits 1 when the sets differ, so it can gate CI on alias-table drift.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/forest-data-etl/internal/adapter/geojson"
	"github.com/couchcryptid/forest-data-etl/internal/config"
	"github.com/couchcryptid/forest-data-etl/internal/dataset"
	"github.com/couchcryptid/forest-data-etl/internal/domain"
	"github.com/couchcryptid/forest-data-etl/internal/observability"
	"github.com/couchcryptid/forest-data-etl/internal/pipeline"
)

func main() {
	manifestPath := flag.String("manifest", "config/datasets.yaml", "path to the dataset manifest")
	geojsonURL := flag.String("geojson-url", config.DefaultGeoJSONURL, "URL of the GeoJSON geometry resource")
	timeout := flag.Duration("timeout", 30*time.Second, "geometry fetch timeout")
	flag.Parse()

	if code := run(*manifestPath, *geojsonURL, *timeout); code != 0 {
		os.Exit(code)
	}
}

func run(manifestPath, geojsonURL string, timeout time.Duration) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	metrics := observability.NewMetricsForTesting() // no scrape endpoint in a one-shot CLI

	manifest, err := config.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	ctx := context.Background()
	loader := dataset.NewLoader(manifest, logger, metrics)
	p := pipeline.New(loader, manifest, logger, metrics, clockwork.NewRealClock())

	result, err := p.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	source := geojson.NewCachedSource(geojson.NewClient(timeout, logger), 8)
	geometryNames, err := source.RegionNames(ctx, geojsonURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	// Master regions, translated through the geometry alias pass, versus the
	// names the geometry file actually carries.
	dataNames := make(map[string]struct{})
	for _, region := range result.Master.Regions() {
		if region == domain.AggregateRegion || region == domain.Unknown {
			continue
		}
		dataNames[domain.GeometryName(region)] = struct{}{}
	}
	geoNames := make(map[string]struct{}, len(geometryNames))
	for _, name := range geometryNames {
		geoNames[name] = struct{}{}
	}

	fmt.Printf("=== Region Name Diff: master table vs geometry resource ===\n\n")
	fmt.Printf("master regions: %d (aggregate/unknown rows excluded)\n", len(dataNames))
	fmt.Printf("geometry regions: %d\n\n", len(geoNames))

	onlyData := subtract(dataNames, geoNames)
	onlyGeo := subtract(geoNames, dataNames)

	report("In data but NOT in geometry (choropleth will drop these)", onlyData)
	report("In geometry but NOT in data (polygons will render empty)", onlyGeo)

	if len(onlyData) == 0 && len(onlyGeo) == 0 {
		fmt.Println("OK: region sets match exactly")
		return 0
	}
	return 1
}

func subtract(a, b map[string]struct{}) []string {
	var out []string
	for name := range a {
		if _, ok := b[name]; !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func report(title string, names []string) {
	fmt.Printf("%s: %d\n", title, len(names))
	for _, name := range names {
		fmt.Printf("  - %s\n", name)
	}
	fmt.Println()
}
