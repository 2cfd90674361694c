package geojson

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feature renders one GeoJSON feature with a tiny closed polygon and the given
// properties object.
func feature(props string) string {
	return fmt.Sprintf(`{
		"type": "Feature",
		"properties": %s,
		"geometry": {"type": "Polygon", "coordinates": [[[77.0, 28.0], [78.0, 28.0], [78.0, 29.0], [77.0, 28.0]]]}
	}`, props)
}

func collection(features ...string) string {
	body := `{"type": "FeatureCollection", "features": [`
	for i, f := range features {
		if i > 0 {
			body += ","
		}
		body += f
	}
	return body + `]}`
}

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient() *Client {
	return NewClient(5*time.Second, slog.New(slog.DiscardHandler))
}

func TestRegionNames(t *testing.T) {
	srv := serve(t, http.StatusOK, collection(
		feature(`{"st_nm": "Kerala"}`),
		feature(`{"st_nm": "Arunanchal Pradesh"}`),
		feature(`{"st_nm": "Kerala"}`),
	))

	names, err := newTestClient().RegionNames(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"Arunanchal Pradesh", "Kerala"}, names, "sorted and de-duplicated")
}

func TestRegionNames_FallbackPropertyKeys(t *testing.T) {
	srv := serve(t, http.StatusOK, collection(
		feature(`{"state_name": "Goa"}`),
		feature(`{"NAME_1": "Sikkim"}`),
		feature(`{"population": 1234}`),
	))

	names, err := newTestClient().RegionNames(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, []string{"Goa", "Sikkim"}, names, "unnamed features are skipped, not fatal")
}

func TestRegionNames_Errors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := serve(t, http.StatusForbidden, "rate limited")
		_, err := newTestClient().RegionNames(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "status 403")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := serve(t, http.StatusOK, `{"type": "FeatureCollection", "features": "nope"}`)
		_, err := newTestClient().RegionNames(context.Background(), srv.URL)
		assert.ErrorContains(t, err, "decode geometry resource")
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv := serve(t, http.StatusOK, collection())
		url := srv.URL
		srv.Close()
		_, err := newTestClient().RegionNames(context.Background(), url)
		assert.ErrorContains(t, err, "fetch geometry resource")
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := serve(t, http.StatusOK, collection())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := newTestClient().RegionNames(ctx, srv.URL)
		assert.Error(t, err)
	})
}
