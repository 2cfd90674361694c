// Package dataset reads the four source CSVs and turns them into fully
// cleaned domain tables. All normalization and coercion happens here, once:
// by the time a table leaves the loader, every row has a canonical Region and
// every declared numeric column holds a finite float. Consumers never re-clean.
package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/forest-data-etl/internal/config"
	"github.com/couchcryptid/forest-data-etl/internal/domain"
	"github.com/couchcryptid/forest-data-etl/internal/observability"
)

// Tables holds the four cleaned tables of one load.
type Tables struct {
	Forest   *domain.Table
	Tree     *domain.Table
	Mangrove *domain.Table
	Agro     *domain.Table
}

// ByKey returns the table for a manifest dataset key.
func (t *Tables) ByKey(key string) (*domain.Table, bool) {
	switch key {
	case config.DatasetForest:
		return t.Forest, true
	case config.DatasetTree:
		return t.Tree, true
	case config.DatasetMangrove:
		return t.Mangrove, true
	case config.DatasetAgro:
		return t.Agro, true
	}
	return nil, false
}

// Loader reads and cleans all manifest sources.
type Loader struct {
	manifest *config.Manifest
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewLoader creates a Loader over a validated manifest.
func NewLoader(manifest *config.Manifest, logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{manifest: manifest, logger: logger, metrics: metrics}
}

// LoadAll reads every manifest source, applies name canonicalization and
// numeric coercion to the declared columns, and returns the four cleaned
// tables plus a quality report.
//
// Loading is all-or-nothing: if any source is unreadable the whole load fails
// with a *LoadError naming each failing source, and no tables are returned.
// Malformed cells and unmapped names never fail a load; they degrade to the
// documented fallbacks and show up in the Quality report and metrics.
func (l *Loader) LoadAll(ctx context.Context) (*Tables, *Quality, error) {
	tables := &Tables{}
	quality := newQuality()
	var loadErr LoadError

	for _, spec := range l.manifest.Sources {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		table, err := l.loadOne(spec, quality)
		if err != nil {
			loadErr.Sources = append(loadErr.Sources, &SourceError{Key: spec.Key, Path: spec.Path, Err: err})
			continue
		}

		l.metrics.RowsLoaded.WithLabelValues(spec.Key).Set(float64(table.Len()))
		switch spec.Key {
		case config.DatasetForest:
			tables.Forest = table
		case config.DatasetTree:
			tables.Tree = table
		case config.DatasetMangrove:
			tables.Mangrove = table
		case config.DatasetAgro:
			tables.Agro = table
		}
	}

	if len(loadErr.Sources) > 0 {
		return nil, nil, &loadErr
	}

	quality.finalize()
	return tables, quality, nil
}

// loadOne reads a single CSV into a cleaned table. The canonical Region
// column is appended to the sourced columns; the raw name column is retained
// so cleaned rows stay traceable to their source.
func (l *Loader) loadOne(spec config.SourceSpec, quality *Quality) (*domain.Table, error) {
	f, err := os.Open(spec.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // sources have ragged trailing columns

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	nameIdx := -1
	for i, col := range header {
		if col == spec.NameColumn {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("name column %q not found in header", spec.NameColumn)
	}

	numeric := make(map[string]bool, len(spec.NumericColumns))
	for _, col := range spec.NumericColumns {
		numeric[col] = true
		if !contains(header, col) {
			// Mirrors the sources' habit of dropping columns between
			// editions. The column simply stays absent; the merge
			// zero-fills anything that needs it.
			l.logger.Warn("declared numeric column not in header, skipping",
				"dataset", spec.Key, "column", col)
		}
	}

	table := domain.NewTable(spec.Key, append(append([]string(nil), header...), domain.ColRegion))
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		rawName := field(record, nameIdx)
		region, resolution := domain.Resolve(rawName)
		switch resolution {
		case domain.ResolutionMissing:
			quality.recordMissingName(spec.Key)
			l.metrics.MissingNames.WithLabelValues(spec.Key).Inc()
		case domain.ResolutionFallthrough:
			quality.recordUnmappedName(spec.Key, rawName)
			l.metrics.UnmappedNames.WithLabelValues(spec.Key).Inc()
		}

		row := domain.Row{
			Region: region,
			Values: make(map[string]float64),
			Labels: make(map[string]string),
		}
		for i, col := range header {
			cell := field(record, i)
			if numeric[col] {
				v, ok := domain.CoerceNumeric(cell)
				if !ok {
					quality.recordCoercionFailure(spec.Key, col)
					l.metrics.CoercionFailures.WithLabelValues(spec.Key, col).Inc()
				}
				row.Values[col] = v
				continue
			}
			row.Labels[col] = cell
		}
		table.Append(row)
	}

	return table, nil
}

// field returns record[i], or "" when the row is shorter than the header.
func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}

func contains(cols []string, name string) bool {
	for _, c := range cols {
		if c == name {
			return true
		}
	}
	return false
}
