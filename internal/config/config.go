package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// DefaultGeoJSONURL is the public India-states polygon resource keyed by the
// "st_nm" property. Overridable for mirrors or local copies.
const DefaultGeoJSONURL = "https://gist.githubusercontent.com/jbrobst/56c13bbbf9d97d187fea01ca62ea5112/raw/e388c4cae20aa53cb5090210a42ebb9b765c0a36/india_states.geojson"

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// ManifestPath points at the YAML dataset manifest; see Manifest.
	ManifestPath string

	// Geometry resource settings, used only by the geojson adapter and
	// cmd/mapdiff, never by the load pipeline itself.
	GeoJSONURL     string
	GeoJSONTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	geoTimeout, err := parseDurationEnv("GEOJSON_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		ManifestPath:    envOrDefault("DATASET_MANIFEST", "config/datasets.yaml"),
		GeoJSONURL:      envOrDefault("GEOJSON_URL", DefaultGeoJSONURL),
		GeoJSONTimeout:  geoTimeout,
	}

	if cfg.ManifestPath == "" {
		return nil, errors.New("DATASET_MANIFEST is required")
	}
	if cfg.GeoJSONURL == "" {
		return nil, errors.New("GEOJSON_URL is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}
