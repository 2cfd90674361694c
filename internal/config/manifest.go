package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dataset keys the loader recognizes. The manifest must declare exactly these
// four sources; the pipeline cannot build a master table from a partial set.
const (
	DatasetForest   = "forest"
	DatasetTree     = "tree"
	DatasetMangrove = "mangrove"
	DatasetAgro     = "agro"
)

var requiredDatasets = []string{DatasetForest, DatasetTree, DatasetMangrove, DatasetAgro}

// SourceSpec declares one dataset: where its CSV lives, which column carries
// the raw region name, and which columns must be coerced to numbers. Columns
// not listed stay categorical text.
type SourceSpec struct {
	Key            string   `yaml:"key"`
	Path           string   `yaml:"path"`
	NameColumn     string   `yaml:"name_column"`
	NumericColumns []string `yaml:"numeric_columns"`
}

// Manifest is the static, inspectable description of all four sources. It is
// data, not code: adding a numeric column to a dataset means editing YAML,
// not the loader.
type Manifest struct {
	Sources []SourceSpec `yaml:"sources"`
}

// LoadManifest reads and validates a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks that every spec is complete, keys are unique, and all four
// required datasets are declared.
func (m *Manifest) Validate() error {
	seen := make(map[string]struct{}, len(m.Sources))
	for i, s := range m.Sources {
		if s.Key == "" {
			return fmt.Errorf("source %d: key is required", i)
		}
		if s.Path == "" {
			return fmt.Errorf("source %q: path is required", s.Key)
		}
		if s.NameColumn == "" {
			return fmt.Errorf("source %q: name_column is required", s.Key)
		}
		if _, dup := seen[s.Key]; dup {
			return fmt.Errorf("duplicate source key %q", s.Key)
		}
		seen[s.Key] = struct{}{}
	}
	for _, key := range requiredDatasets {
		if _, ok := seen[key]; !ok {
			return fmt.Errorf("missing required source %q", key)
		}
	}
	return nil
}

// Source returns the SourceSpec for a dataset key.
func (m *Manifest) Source(key string) (SourceSpec, bool) {
	for _, s := range m.Sources {
		if s.Key == key {
			return s, true
		}
	}
	return SourceSpec{}, false
}

// DefaultManifest describes the standard four CSVs under dataDir with the
// column names the published files actually use. Tests and cmd/genfixtures
// share it so fixtures and expectations cannot drift apart.
func DefaultManifest(dataDir string) *Manifest {
	return &Manifest{Sources: []SourceSpec{
		{
			Key:        DatasetForest,
			Path:       filepath.Join(dataDir, "Recorded_Forest_Area.csv"),
			NameColumn: "State/UTs",
			NumericColumns: []string{
				"Geographical Area",
				"Recorded Forest Area - Total",
				"Recorded Forest Area as in SFR 2005",
				"Recorded Forest Area - Reserved Forests",
				"Recorded Forest Area - Protected Forests",
				"Recorded Forest Area - Unclassed Forests",
			},
		},
		{
			Key:            DatasetTree,
			Path:           filepath.Join(dataDir, "StatewiseTreeCover.csv"),
			NameColumn:     "State/ Uts",
			NumericColumns: []string{"Tree Cover - Area"},
		},
		{
			Key:            DatasetMangrove,
			Path:           filepath.Join(dataDir, "mangrove_forest_cover.csv"),
			NameColumn:     "state",
			NumericColumns: []string{"year", "value"},
		},
		{
			Key:            DatasetAgro,
			Path:           filepath.Join(dataDir, "Agro_India_States.csv"),
			NameColumn:     "States",
			NumericColumns: []string{"Precipitation_mm"},
		},
	}}
}
