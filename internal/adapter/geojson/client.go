// Package geojson fetches the external polygon-geometry resource and extracts
// the region names its features are keyed by. The core pipeline never touches
// this; it exists for the choropleth contract ("Region names must match the
// geometry resource's naming convention") and is exercised by cmd/mapdiff.
package geojson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	geomjson "github.com/twpayne/go-geom/encoding/geojson"
)

// Property names that may carry the region name, tried in order. The public
// India-states file uses "st_nm"; the fallbacks cover other distributions of
// the same geometry.
var namePropertyKeys = []string{"st_nm", "state_name", "NAME_1"}

// NameSource yields the set of region names a geometry resource is keyed by.
type NameSource interface {
	RegionNames(ctx context.Context, url string) ([]string, error)
}

// Client implements NameSource over HTTP.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a geometry resource client.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// RegionNames downloads a GeoJSON FeatureCollection and returns the sorted,
// de-duplicated region names found in its feature properties.
func (c *Client) RegionNames(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch geometry resource: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geometry resource: status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read geometry resource: %w", err)
	}

	var fc geomjson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decode geometry resource: %w", err)
	}

	seen := make(map[string]struct{}, len(fc.Features))
	for _, f := range fc.Features {
		name, ok := featureName(f.Properties)
		if !ok {
			c.logger.Warn("geometry feature has no recognized name property",
				"properties", len(f.Properties))
			continue
		}
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func featureName(props map[string]any) (string, bool) {
	for _, key := range namePropertyKeys {
		if v, ok := props[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}
