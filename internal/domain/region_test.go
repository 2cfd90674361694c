package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Region
	}{
		{"padded lowercase", " andhra pradesh ", "Andhra Pradesh"},
		{"all caps", "KERALA", "Kerala"},
		{"already canonical", "Madhya Pradesh", "Madhya Pradesh"},
		{"abbreviated islands", "A & N Islands", "Andaman & Nicobar Islands"},
		{"short islands variant", "Andaman & Nicobar", "Andaman & Nicobar Islands"},
		{"spelled-out ampersand", "Andaman and Nicobar Islands", "Andaman & Nicobar Islands"},
		{"jammu spelled out", "Jammu and Kashmir", "Jammu & Kashmir"},
		{"legacy odisha", "ORISSA", "Odisha"},
		{"legacy puducherry", "Pondicherry", "Puducherry"},
		{"legacy uttarakhand", "Uttaranchal", "Uttarakhand"},
		{"nct prefix", "NCT of Delhi", "Delhi"},
		{"empty", "", Unknown},
		{"whitespace only", "   ", Unknown},
		{"aggregate row", "Total", AggregateRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Canonicalize(tt.raw))
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	inputs := []string{
		" andhra pradesh ", "KERALA", "A & N Islands", "ORISSA",
		"Jammu and Kashmir", "", "Sikkim", "west bengal", "Total",
		"NCT of Delhi", "Some Unlisted Place",
	}
	for _, raw := range inputs {
		once := Canonicalize(raw)
		twice := Canonicalize(string(once))
		assert.Equal(t, once, twice, "canonical form of %q must be a fixed point", raw)
	}

	// Every alias target must itself be canonical, or the table is broken.
	for variant, canonical := range Aliases {
		assert.Equal(t, canonical, Canonicalize(string(canonical)),
			"alias target for %q is not a fixed point", variant)
	}
}

func TestResolve(t *testing.T) {
	t.Run("alias hit", func(t *testing.T) {
		region, res := Resolve("a & n islands")
		assert.Equal(t, Region("Andaman & Nicobar Islands"), region)
		assert.Equal(t, ResolutionAlias, res)
	})

	t.Run("fallthrough", func(t *testing.T) {
		region, res := Resolve("sikkim")
		assert.Equal(t, Region("Sikkim"), region)
		assert.Equal(t, ResolutionFallthrough, res)
	})

	t.Run("missing", func(t *testing.T) {
		region, res := Resolve("  ")
		assert.Equal(t, Unknown, region)
		assert.Equal(t, ResolutionMissing, res)
	})
}

func TestGeometryName(t *testing.T) {
	// The geometry file carries its own typos; the canonical name must map
	// onto them, and unmapped regions pass through untouched.
	assert.Equal(t, "Arunanchal Pradesh", GeometryName("Arunachal Pradesh"))
	assert.Equal(t, "NCT of Delhi", GeometryName("Delhi"))
	assert.Equal(t, "Andaman & Nicobar Island", GeometryName("Andaman & Nicobar Islands"))
	assert.Equal(t, "Kerala", GeometryName("Kerala"))
}
